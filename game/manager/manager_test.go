package manager

import (
	"testing"
	"time"

	"hand-snake/game/entity"
	"hand-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"pgregory.net/rapid"
)

var arenaGrid = types.Grid{Width: types.ArenaWidth, Height: types.ArenaHeight}

func TestLevelAndSpeed(t *testing.T) {
	tests := []struct {
		score, level, speed int
	}{
		{0, 1, 30},
		{1, 1, 30},
		{4, 1, 32},
		{5, 2, 32},
		{9, 2, 34},
		{10, 3, 35},
		{60, 13, 60},
		{100, 21, 60},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, Level(tt.score), "level(%d)", tt.score)
		assert.Equal(t, tt.speed, Speed(tt.score), "speed(%d)", tt.score)
	}
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, time.Second/30, TickInterval(0))
	assert.Equal(t, time.Second/60, TickInterval(500))
}

func TestSelfCollisionGraceWindow(t *testing.T) {
	cm := NewCollisionManager(arenaGrid)
	s := entity.NewSnake(types.Point{})
	s.TargetLength = 100
	// Ten stacked segments: the whole trail is inside the excluded window.
	for i := 0; i < 9; i++ {
		s.Advance(types.Point{})
	}
	require.Equal(t, types.SelfExclusion, s.Len())
	assert.False(t, cm.IsSelfCollision(s))

	s.Advance(types.Point{})
	assert.True(t, cm.IsSelfCollision(s))
}

func TestSelfCollisionOutsideWindow(t *testing.T) {
	cm := NewCollisionManager(arenaGrid)
	s := entity.NewSnake(types.Point{X: 300, Y: 300})
	s.TargetLength = 40
	for i := 1; i < 15; i++ {
		s.Advance(types.Point{X: 300 + 20*float64(i), Y: 300})
	}
	assert.False(t, cm.IsSelfCollision(s))

	s.Advance(types.Point{X: 305, Y: 303})
	assert.True(t, cm.IsSelfCollision(s))
}

func TestFoodCollisionThreshold(t *testing.T) {
	cm := NewCollisionManager(arenaGrid)
	food := types.Food{Pos: types.Point{X: 200, Y: 200}, Size: types.FoodSize}
	assert.True(t, cm.IsFoodCollision(types.Point{X: 200, Y: 224.9}, food))
	assert.False(t, cm.IsFoodCollision(types.Point{X: 200, Y: 225}, food))
}

func TestFoodAlwaysInsideMargin(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		cm := NewCollisionManager(arenaGrid)
		fm := NewFoodManager(arenaGrid, rand.New(rand.NewSource(seed)), cm)
		for i := 0; i < 50; i++ {
			f := fm.GenerateFood()
			if !cm.ValidateSpawnPosition(f.Pos) {
				t.Fatalf("food %v outside margin", f.Pos)
			}
			if f.Size != types.FoodSize {
				t.Fatalf("food size %v", f.Size)
			}
		}
	})
}

func TestGenerateFoodRetriesRejectedSpawns(t *testing.T) {
	// A tighter collision grid rejects most of the food grid's positions.
	cm := NewCollisionManager(types.Grid{Width: 300, Height: 300})
	fm := NewFoodManager(arenaGrid, rand.New(rand.NewSource(11)), cm)
	for i := 0; i < 200; i++ {
		f := fm.GenerateFood()
		require.True(t, cm.ValidateSpawnPosition(f.Pos), "spawn %v", f.Pos)
	}
}

func TestTryConsumeRespawns(t *testing.T) {
	cm := NewCollisionManager(arenaGrid)
	fm := NewFoodManager(arenaGrid, rand.New(rand.NewSource(7)), cm)
	first := fm.GetFood()

	far := types.Point{X: first.Pos.X + 100, Y: first.Pos.Y}
	assert.False(t, fm.TryConsume(far))
	assert.Equal(t, first, fm.GetFood())

	assert.True(t, fm.TryConsume(first.Pos))
	assert.True(t, cm.ValidateSpawnPosition(fm.GetFood().Pos))
}

func TestFoodManagerTinyArena(t *testing.T) {
	g := types.Grid{Width: 80, Height: 60}
	fm := NewFoodManager(g, rand.New(rand.NewSource(1)), NewCollisionManager(g))
	assert.Equal(t, types.Point{X: 40, Y: 30}, fm.GetFood().Pos)
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < 3; i++ {
		sm.AddPoint()
	}
	assert.Equal(t, 3, sm.Score())
	assert.Equal(t, 3, sm.GetHighScore())
	assert.Equal(t, 3, sm.ColorIndex(0))
	assert.Equal(t, 0, sm.ColorIndex(10))
	assert.Equal(t, 1, sm.ColorIndex(25))

	sm.EndRun()
	sm.AddPoint()
	assert.Equal(t, 1, sm.Score())
	assert.Equal(t, 3, sm.GetHighScore())
	assert.Equal(t, []int{3}, sm.GetScoreHistory())
	assert.Equal(t, 0, sm.ColorIndex(0), "palette keeps cycling across runs")
}
