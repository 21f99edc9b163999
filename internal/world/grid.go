package world

import (
	"errors"
	"fmt"
)

const (
	// Default grid dimensions
	DefaultWidth  = 60
	DefaultHeight = 25

	// MinSize is the smallest width or height that leaves room for a snake
	// inside the wall ring.
	MinSize = 5
)

// ErrOutOfBounds is returned when a position lies outside the grid.
var ErrOutOfBounds = errors.New("position out of bounds")

// Grid is the playing field: a fixed wall ring around an interior that is
// re-marked every tick.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

// NewGrid creates a grid with an empty interior and a one-cell wall border.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if g.isBorder(x, y) {
				g.cells[y*width+x] = CellWall
			}
		}
	}
	return g
}

// InBounds returns true if p lies within [0,Width)x[0,Height).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Clamp forces p onto the nearest in-bounds position.
func (g *Grid) Clamp(p Position) Position {
	p.X = clamp(p.X, 0, g.Width-1)
	p.Y = clamp(p.Y, 0, g.Height-1)
	return p
}

// CellAt returns the classification of the cell at p.
func (g *Grid) CellAt(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return CellEmpty, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, p.X, p.Y, g.Width, g.Height)
	}
	return g.cells[p.Y*g.Width+p.X], nil
}

// Mark sets the cell at p. Walls are fixed at creation, so marking a wall
// or an out-of-bounds position has no effect.
func (g *Grid) Mark(p Position, c Cell) {
	if !g.InBounds(p) || g.isBorder(p.X, p.Y) {
		return
	}
	g.cells[p.Y*g.Width+p.X] = c
}

// FreeCells returns every empty interior position in row-major order.
func (g *Grid) FreeCells() []Position {
	free := make([]Position, 0, len(g.cells))
	for i, c := range g.cells {
		if c == CellEmpty {
			free = append(free, Position{X: i % g.Width, Y: i / g.Width})
		}
	}
	return free
}

// Count returns how many cells hold the given classification.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Rows returns a copy of the cells as rows, indexed [y][x].
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.Height)
	for y := range rows {
		rows[y] = make([]Cell, g.Width)
		copy(rows[y], g.cells[y*g.Width:(y+1)*g.Width])
	}
	return rows
}

// isBorder returns true if (x, y) is on the outer wall ring.
func (g *Grid) isBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
