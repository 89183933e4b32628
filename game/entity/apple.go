package entity

import "wormy/game/types"

var AppleColor = types.Color{R: 255, G: 0, B: 0}

// Rand is the source of apple positions.
type Rand interface {
	Intn(n int) int
}

// AppleConfig controls the apple's point value and how fast it decays.
type AppleConfig struct {
	DefaultPointValue int
	DecayNumerator    int
	DecayDenominator  int
}

// Apple is worth fewer points the longer it goes uneaten.
type Apple struct {
	Position   types.Point
	PointValue int

	cfg  AppleConfig
	grid types.Grid
	rng  Rand
}

// NewApple places an apple at a random cell with the default point value.
func NewApple(grid types.Grid, rng Rand, cfg AppleConfig) *Apple {
	a := &Apple{
		PointValue: cfg.DefaultPointValue,
		cfg:        cfg,
		grid:       grid,
		rng:        rng,
	}
	a.RandomizePosition()
	return a
}

// RandomizePosition moves the apple to a uniformly random cell.
// Cells occupied by the worm are not excluded.
func (a *Apple) RandomizePosition() {
	a.Position = types.Point{
		X: a.rng.Intn(a.grid.Width),
		Y: a.rng.Intn(a.grid.Height),
	}
}

// Decay scales the point value down, truncating toward zero.
func (a *Apple) Decay() {
	a.PointValue = a.PointValue * a.cfg.DecayNumerator / a.cfg.DecayDenominator
}

// Collect returns the current point value, then resets and repositions the apple.
func (a *Apple) Collect() int {
	points := a.PointValue
	a.PointValue = a.cfg.DefaultPointValue
	a.RandomizePosition()
	return points
}

func (a *Apple) Render() types.Cell {
	return types.Cell{Pos: a.Position, Color: AppleColor}
}
