package manager

import (
	"hand-snake/game/entity"
	"hand-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision reports whether the cursor is close enough to eat the food.
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Food) bool {
	return pos.Dist(food.Pos) < types.PickupRadius
}

// IsSelfCollision checks the head against every segment except the most
// recent SelfExclusion ones. Trails that short never collide.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	n := len(snake.Body) - types.SelfExclusion
	if n <= 0 {
		return false
	}

	head := snake.GetHead()
	for _, part := range snake.Body[:n] {
		if head.Dist(part) < types.SelfHitRadius {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a food position keeps its margin from every wall
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point) bool {
	return !cm.isWallCollision(pos, types.FoodMargin)
}

// isWallCollision checks if a position lies within margin of a wall
func (cm *CollisionManager) isWallCollision(pos types.Point, margin float64) bool {
	return pos.X < margin || pos.X > float64(cm.grid.Width)-margin ||
		pos.Y < margin || pos.Y > float64(cm.grid.Height)-margin
}
