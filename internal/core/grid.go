package core

import "math/rand"

// Grid describes the board: its pixel dimensions and the cell size.
// Entity positions are cell-aligned pixel coordinates inside
// [0, Width) x [0, Height).
type Grid struct {
	Width    int // Board width in pixels
	Height   int // Board height in pixels
	CellSize int // Cell edge in pixels
}

// NewGrid creates a grid for a board of the given pixel size.
func NewGrid(width, height, cellSize int) Grid {
	return Grid{Width: width, Height: height, CellSize: cellSize}
}

// Cols returns the number of cells along the x axis.
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cells along the y axis.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cells returns the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Cols() * g.Rows()
}

// Move steps p by n cells in direction d, wrapping at every edge.
func (g Grid) Move(p Point, d Direction, n int) Point {
	v := d.Vector()
	return Point{
		X: mod(p.X+v.X*g.CellSize*n, g.Width),
		Y: mod(p.Y+v.Y*g.CellSize*n, g.Height),
	}
}

// RandomCell returns a uniformly random cell-aligned position.
func (g Grid) RandomCell(rng *rand.Rand) Point {
	return Point{
		X: rng.Intn(g.Cols()) * g.CellSize,
		Y: rng.Intn(g.Rows()) * g.CellSize,
	}
}

// CellAt returns the position of the cell at the given column and row.
func (g Grid) CellAt(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// ColRow converts a position to its column and row.
func (g Grid) ColRow(p Point) (col, row int) {
	return p.X / g.CellSize, p.Y / g.CellSize
}

// Contains reports whether p is a cell-aligned position on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height &&
		p.X%g.CellSize == 0 && p.Y%g.CellSize == 0
}

// Center returns the cell containing the board's pixel center.
func (g Grid) Center() Point {
	return Point{
		X: (g.Width / 2) / g.CellSize * g.CellSize,
		Y: (g.Height / 2) / g.CellSize * g.CellSize,
	}
}

// OffBoard is the sentinel position for entities that are not on the board.
func (g Grid) OffBoard() Point {
	return Point{X: -g.CellSize, Y: -g.CellSize}
}
