package manager

import (
	"hand-snake/game/types"
)

// StateManager tracks score related state for one session. Nothing is
// written to disk; the history dies with the process.
type StateManager struct {
	score         int
	highScore     int
	scoreHistory  []int
	paletteOffset int
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0),
	}
}

// AddPoint records one eaten food.
func (sm *StateManager) AddPoint() {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	sm.paletteOffset = (sm.paletteOffset + 1) % types.PaletteSize
}

// EndRun files the current score into the history and zeroes it.
// The palette offset is left alone.
func (sm *StateManager) EndRun() {
	sm.scoreHistory = append(sm.scoreHistory, sm.score)
	sm.score = 0
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	out := make([]int, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}

// ColorIndex returns the palette slot of the i-th segment, oldest first.
func (sm *StateManager) ColorIndex(i int) int {
	return (sm.paletteOffset + i/types.SegmentsPerTone) % types.PaletteSize
}
