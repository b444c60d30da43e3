package manager

import (
	"hand-snake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager keeps exactly one food item in the arena.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	food         types.Food
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	fm := &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
	fm.food = fm.GenerateFood()
	return fm
}

// GenerateFood picks a position uniformly from the arena minus the margin,
// both ends inclusive. Arenas too small for the margin get the centre.
func (fm *FoodManager) GenerateFood() types.Food {
	for {
		food := types.Food{
			Pos: types.Point{
				X: float64(fm.randomIn(fm.grid.Width)),
				Y: float64(fm.randomIn(fm.grid.Height)),
			},
			Size: types.FoodSize,
		}

		if fm.tooSmall() || fm.collisionMgr.ValidateSpawnPosition(food.Pos) {
			return food
		}
	}
}

func (fm *FoodManager) tooSmall() bool {
	return fm.grid.Width < 2*types.FoodMargin || fm.grid.Height < 2*types.FoodMargin
}

func (fm *FoodManager) randomIn(extent int) int {
	span := extent - 2*types.FoodMargin
	if span < 0 {
		return extent / 2
	}
	return types.FoodMargin + fm.rng.Intn(span+1)
}

// TryConsume respawns the food and returns true when pos is within pickup range.
func (fm *FoodManager) TryConsume(pos types.Point) bool {
	if !fm.collisionMgr.IsFoodCollision(pos, fm.food) {
		return false
	}
	fm.food = fm.GenerateFood()
	return true
}

func (fm *FoodManager) GetFood() types.Food {
	return fm.food
}
