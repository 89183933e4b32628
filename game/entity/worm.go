package entity

import "wormy/game/types"

var WormColor = types.Color{R: 0, G: 255, B: 0}

// Worm is the player. Body[0] is the head.
type Worm struct {
	Body         []types.Point
	Direction    Direction
	GrowthTarget int
}

// NewWorm lays out length segments in a straight line behind head.
func NewWorm(head types.Point, length int, dir Direction) *Worm {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().ToPoint()
	body := make([]types.Point, length)
	body[0] = head
	for i := 1; i < length; i++ {
		body[i] = body[i-1].Add(back)
	}
	return &Worm{
		Body:         body,
		Direction:    dir,
		GrowthTarget: length,
	}
}

// NewWormWithBody builds a worm from explicit segments, head first.
func NewWormWithBody(body []types.Point, dir Direction, growthTarget int) *Worm {
	segments := make([]types.Point, len(body))
	copy(segments, body)
	return &Worm{
		Body:         segments,
		Direction:    dir,
		GrowthTarget: growthTarget,
	}
}

// SetDirection changes heading unless dir would reverse the worm onto itself.
// It reports whether the heading was accepted.
func (w *Worm) SetDirection(dir Direction) bool {
	if dir.ToPoint() == (types.Point{}) || dir == w.Direction.Opposite() {
		return false
	}
	w.Direction = dir
	return true
}

// Advance moves the head one cell and drops the tail unless growing.
func (w *Worm) Advance() {
	newHead := w.Head().Add(w.Direction.ToPoint())
	w.Body = append(w.Body, types.Point{})
	copy(w.Body[1:], w.Body)
	w.Body[0] = newHead
	if len(w.Body) > w.GrowthTarget {
		w.Body = w.Body[:w.GrowthTarget]
	}
}

func (w *Worm) Grow(amount int) {
	w.GrowthTarget += amount
}

func (w *Worm) Head() types.Point {
	return w.Body[0]
}

// BodyPositions returns every segment except the head.
func (w *Worm) BodyPositions() []types.Point {
	return w.Body[1:]
}

func (w *Worm) Len() int {
	return len(w.Body)
}

func (w *Worm) Render() []types.Cell {
	cells := make([]types.Cell, len(w.Body))
	for i, p := range w.Body {
		cells[i] = types.Cell{Pos: p, Color: WormColor}
	}
	return cells
}
