// Package sensor turns raw tracker samples into a steady arena cursor.
package sensor

import (
	"context"

	"hand-snake/game/types"

	"github.com/pkg/errors"
)

// ErrCaptureFailed is returned by a PointSource when the underlying frame
// could not be read. Callers skip the tick and try again.
var ErrCaptureFailed = errors.New("capture failed")

// PointSource yields at most one point per poll, in source-image space.
// ok is false when nothing was detected. Poll must not block for long.
type PointSource interface {
	Poll(ctx context.Context) (p types.Point, ok bool, err error)
}

// Smoother is a single-pole low-pass filter over remapped samples.
type Smoother struct {
	arena  types.Arena
	cursor types.Point
}

// NewSmoother starts the cursor at start, in arena space.
func NewSmoother(arena types.Arena, start types.Point) *Smoother {
	return &Smoother{arena: arena, cursor: start}
}

// Update folds a raw source-space sample into the cursor. Without a
// sample the cursor keeps its last value.
func (s *Smoother) Update(raw types.Point, ok bool) types.Point {
	if !ok {
		return s.cursor
	}
	p := s.arena.Remap(raw)
	s.cursor = types.Point{
		X: types.SmoothKeep*s.cursor.X + types.SmoothTake*p.X,
		Y: types.SmoothKeep*s.cursor.Y + types.SmoothTake*p.Y,
	}
	return s.cursor
}

func (s *Smoother) Cursor() types.Point {
	return s.cursor
}
