package ui

import (
	"fmt"
	"image/color"

	"hand-snake/game"
	"hand-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 32
	hintSize   = 20
	lineHeight = 40
	textMargin = 10
)

var (
	background = rl.NewColor(10, 10, 30, 255)
	foodColor  = rl.NewColor(255, 80, 80, 255)
	scoreColor = rl.White
	levelColor = rl.NewColor(200, 200, 255, 255)
	hintColor  = rl.NewColor(160, 160, 160, 255)

	snakeColors = [types.PaletteSize]color.RGBA{
		rl.NewColor(0, 255, 0, 255),
		rl.NewColor(0, 180, 255, 255),
		rl.NewColor(255, 255, 0, 255),
		rl.NewColor(255, 0, 255, 255),
	}
)

type hudLine struct {
	text  string
	size  int32
	color color.RGBA
}

// Renderer draws game snapshots into the raylib window.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Draw(snap game.Snapshot) error {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(background)

	for _, seg := range snap.Segments {
		rl.DrawCircle(int32(seg.Pos.X), int32(seg.Pos.Y), types.SegmentRadius, segmentColor(seg.ColorIndex))
	}

	size := int32(snap.Food.Size)
	rl.DrawRectangle(int32(snap.Food.Pos.X), int32(snap.Food.Pos.Y), size, size, foodColor)

	y := int32(textMargin)
	for _, line := range hudLines(snap) {
		rl.DrawText(line.text, textMargin, y, line.size, line.color)
		y += lineHeight
	}
	return nil
}

func segmentColor(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return snakeColors[i%len(snakeColors)]
}

func hudLines(snap game.Snapshot) []hudLine {
	lines := []hudLine{
		{fmt.Sprintf("Score: %d", snap.Score), fontSize, scoreColor},
		{fmt.Sprintf("Level: %d", snap.Level), fontSize, levelColor},
		{fmt.Sprintf("Best: %d", snap.HighScore), hintSize, hintColor},
	}
	if !snap.Tracking {
		lines = append(lines, hudLine{"No hand detected", hintSize, hintColor})
	}
	return lines
}
