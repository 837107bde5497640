package interpreter

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid  = errors.New("grid has no codels")
	ErrRaggedGrid = errors.New("grid rows have different lengths")
)

// Coord is a codel position; X grows rightwards and Y downwards.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is an immutable rectangle of codel colours.
type Grid struct {
	cols, rows int
	cells      []Color
}

// NewGrid builds a grid from rows of colours. Every row must have the same
// non-zero length. The rows are copied.
func NewGrid(rows [][]Color) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	g := &Grid{cols: cols, rows: len(rows), cells: make([]Color, 0, cols*len(rows))}
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d codels, want %d: %w", y, len(row), cols, ErrRaggedGrid)
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// Size returns the number of columns and rows.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

// At returns the colour at c. c must be in bounds.
func (g *Grid) At(c Coord) Color {
	return g.cells[c.Y*g.cols+c.X]
}

// IsOpen reports whether c is inside the grid and not black.
func (g *Grid) IsOpen(c Coord) bool {
	return g.InBounds(c) && g.At(c) != Black
}
