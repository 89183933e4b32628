package game

import "wormy/game/types"

// Key is an input event the game reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeySpace
)

// Align selects which edge of a Text is anchored at X.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Text is a line of text drawn at pixel coordinates.
type Text struct {
	S     string
	X, Y  int
	Color types.Color
	Align Align
}

// Frame is everything drawn in one tick, in draw order.
type Frame struct {
	Cells []types.Cell
	Texts []Text
}

// Presenter owns the window, input queue and tick pacing.
type Presenter interface {
	// PollEvents drains every key event since the previous call without blocking.
	PollEvents() []Key
	// Present clears the surface, draws frame and shows it.
	Present(frame Frame)
	// WaitForNextTick blocks until the next tick is due.
	WaitForNextTick()
}
