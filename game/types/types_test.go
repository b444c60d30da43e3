package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaRemap(t *testing.T) {
	a := Arena{
		Grid:   Grid{Width: ArenaWidth, Height: ArenaHeight},
		Source: Grid{Width: SourceWidth, Height: SourceHeight},
	}

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"origin", Point{0, 0}, Point{0, 0}},
		{"centre", Point{320, 240}, Point{480, 360}},
		{"far corner", Point{640, 480}, Point{960, 720}},
		{"clamped low", Point{-50, -1}, Point{0, 0}},
		{"clamped high", Point{700, 999}, Point{960, 720}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Remap(tt.in)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestPointDist(t *testing.T) {
	assert.InDelta(t, 5.0, Point{0, 0}.Dist(Point{3, 4}), 1e-9)
	assert.Zero(t, Point{7, 7}.Dist(Point{7, 7}))
}
