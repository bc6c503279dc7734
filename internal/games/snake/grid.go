package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Point is a grid coordinate.
type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// NextLocation returns the coordinate one step from (row, col) toward d on a
// toroidal rows x cols grid. Left/Right move along columns, Up/Down along rows,
// and both axes wrap at the edges.
func NextLocation(rows, cols, row, col int, d Direction) (int, int) {
	switch d {
	case DirLeft:
		col--
	case DirRight:
		col++
	case DirUp:
		row--
	case DirDown:
		row++
	}
	return core.Wrap(row, rows), core.Wrap(col, cols)
}

// Grid is a fixed-size toroidal board of cells stored row-major.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates an all-empty grid. Panics if a dimension is below 1.
func NewGrid(rows, cols int) *Grid {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("snake: invalid grid size %dx%d", rows, cols))
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) index(p Point) int {
	return core.Wrap(p.Row, g.rows)*g.cols + core.Wrap(p.Col, g.cols)
}

// At returns the cell at p. Coordinates wrap.
func (g *Grid) At(p Point) Cell {
	return g.cells[g.index(p)]
}

// Set stores c at p. Coordinates wrap.
func (g *Grid) Set(p Point, c Cell) {
	g.cells[g.index(p)] = c
}

// Next returns the neighbour of p in direction d.
func (g *Grid) Next(p Point, d Direction) Point {
	row, col := NextLocation(g.rows, g.cols, p.Row, p.Col, d)
	return Point{Row: row, Col: col}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Count returns how many cells have the given kind.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c.kind == k {
			n++
		}
	}
	return n
}

// Find returns the positions of all cells with the given kind in row-major order.
func (g *Grid) Find(k Kind) []Point {
	var out []Point
	for i, c := range g.cells {
		if c.kind == k {
			out = append(out, Point{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
