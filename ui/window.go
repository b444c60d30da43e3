// Package ui hosts the raylib window, renderer and sound output.
package ui

import (
	"hand-snake/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window owns the raylib window and reports quit requests. All methods
// must be called from the main goroutine.
type Window struct{}

func OpenWindow(cfg config.Window) *Window {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	return &Window{}
}

// ShouldQuit is true once the window was closed or Esc/Q was pressed.
func (w *Window) ShouldQuit() bool {
	return rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ)
}

// Pump processes pending window events without drawing a frame.
func (w *Window) Pump() {
	rl.PollInputEvents()
}

func (w *Window) Close() {
	rl.CloseWindow()
}
