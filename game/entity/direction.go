package entity

import "wormy/game/types"

// Direction is one of the four cardinal headings
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// ToPoint converts a Direction into a one-cell movement vector.
func (d Direction) ToPoint() types.Point {
	switch d {
	case Up:
		return types.Point{X: 0, Y: -1}
	case Down:
		return types.Point{X: 0, Y: 1}
	case Left:
		return types.Point{X: -1, Y: 0}
	case Right:
		return types.Point{X: 1, Y: 0}
	default:
		return types.Point{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
