package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"wormy/game"
	"wormy/game/clock"
	"wormy/game/types"
)

const fontSize = 20

// Renderer draws frames into the raylib window and feeds it keyboard input.
// The window must be open before any method is called.
type Renderer struct {
	grid  types.Grid
	clock *clock.Clock
}

func NewRenderer(grid types.Grid, clk *clock.Clock) *Renderer {
	// ESC is handled by the game, not by raylib closing the window.
	rl.SetExitKey(0)
	return &Renderer{
		grid:  grid,
		clock: clk,
	}
}

// PollEvents drains raylib's key queue. Closing the window counts as ESC.
func (r *Renderer) PollEvents() []game.Key {
	var events []game.Key
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if key := mapKey(k); key != game.KeyNone {
			events = append(events, key)
		}
	}
	if rl.WindowShouldClose() {
		events = append(events, game.KeyEscape)
	}
	return events
}

func (r *Renderer) Present(frame game.Frame) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for _, c := range frame.Cells {
		px, py, w, h := r.grid.ToPixelRect(c.Pos.X, c.Pos.Y)
		rl.DrawRectangle(int32(px), int32(py), int32(w), int32(h), toColor(c.Color))
	}

	for _, t := range frame.Texts {
		x := int32(t.X)
		if t.Align == game.AlignRight {
			x -= rl.MeasureText(t.S, fontSize)
		}
		rl.DrawText(t.S, x, int32(t.Y), fontSize, toColor(t.Color))
	}

	rl.EndDrawing()
}

func (r *Renderer) WaitForNextTick() {
	r.clock.Wait()
}

func mapKey(k int32) game.Key {
	switch k {
	case rl.KeyUp:
		return game.KeyUp
	case rl.KeyDown:
		return game.KeyDown
	case rl.KeyLeft:
		return game.KeyLeft
	case rl.KeyRight:
		return game.KeyRight
	case rl.KeyEscape:
		return game.KeyEscape
	case rl.KeySpace:
		return game.KeySpace
	default:
		return game.KeyNone
	}
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
