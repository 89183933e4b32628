package manager

import (
	"wormy/game/entity"
	"wormy/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
	WallCollision
)

// Message is the text shown to the player when the collision ends the game.
func (c CollisionType) Message() string {
	switch c {
	case SelfCollision:
		return "You ate yourself!"
	case WallCollision:
		return "You fell off!"
	default:
		return ""
	}
}

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case WallCollision:
		return "wall"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision checks the worm's head against its own body first, then the walls.
// The first collision found wins.
func (cm *CollisionManager) CheckCollision(worm *entity.Worm) CollisionType {
	if cm.IsSelfCollision(worm) {
		return SelfCollision
	}
	if cm.IsWallCollision(worm.Head()) {
		return WallCollision
	}
	return NoCollision
}

// IsSelfCollision reports whether the head shares a cell with any body segment.
func (cm *CollisionManager) IsSelfCollision(worm *entity.Worm) bool {
	head := worm.Head()
	for _, part := range worm.BodyPositions() {
		if head == part {
			return true
		}
	}
	return false
}

// IsWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with the apple
func (cm *CollisionManager) IsFoodCollision(pos types.Point, apple *entity.Apple) bool {
	return pos == apple.Position
}
