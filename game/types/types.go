package types

import (
	"errors"
	"fmt"
)

// ErrUnevenCellSize is returned when the playfield cannot be tiled by whole cells.
var ErrUnevenCellSize = errors.New("uneven box size")

type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid maps a pixel playfield to a fixed-size cell grid
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid derives the grid dimensions from the playfield size in pixels.
func NewGrid(pixelWidth, pixelHeight, cellSize int) (Grid, error) {
	if cellSize <= 0 {
		return Grid{}, fmt.Errorf("cell size must be positive, got %d", cellSize)
	}
	if pixelWidth <= 0 || pixelHeight <= 0 {
		return Grid{}, fmt.Errorf("playfield must be positive, got %dx%d", pixelWidth, pixelHeight)
	}
	if pixelWidth%cellSize != 0 || pixelHeight%cellSize != 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d by %d", ErrUnevenCellSize, pixelWidth, pixelHeight, cellSize)
	}
	return Grid{
		Width:    pixelWidth / cellSize,
		Height:   pixelHeight / cellSize,
		CellSize: cellSize,
	}, nil
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// ToPixelRect returns the pixel rectangle covered by cell (x, y).
func (g Grid) ToPixelRect(x, y int) (px, py, w, h int) {
	return x * g.CellSize, y * g.CellSize, g.CellSize, g.CellSize
}

// PixelWidth returns the playfield width in pixels.
func (g Grid) PixelWidth() int {
	return g.Width * g.CellSize
}

// PixelHeight returns the playfield height in pixels.
func (g Grid) PixelHeight() int {
	return g.Height * g.CellSize
}

type Color struct {
	R, G, B uint8
}

// Cell is a filled grid cell in a single color.
type Cell struct {
	Pos   Point
	Color Color
}
