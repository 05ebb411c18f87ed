package model

import (
	"fmt"
	"strings"
)

// Grid is a rectangular maze of cell codes. It is read-only once built:
// searches and replay only ever query it.
type Grid struct {
	cells [][]int
	rows  int
	cols  int
}

// NewGrid wraps a cell-code matrix. The matrix must be non-empty and
// rectangular.
func NewGrid(cells [][]int) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("model: empty grid")
	}
	cols := len(cells[0])
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("model: ragged grid, row %d has %d cells, want %d", r, len(row), cols)
		}
	}
	return &Grid{cells: cells, rows: len(cells), cols: cols}, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// At returns the cell code. Caller must ensure the cell is in bounds.
func (g *Grid) At(c Cell) int {
	return g.cells[c.Row][c.Col]
}

// InBounds reports whether the cell lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Walkable reports whether the cell is in bounds and not a wall.
func (g *Grid) Walkable(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] != CellWall
}

// Goal scans row-major for the first cell carrying the goal code. With
// several goal cells the lexicographically smallest (row, col) wins because
// of the scan order. No caching; callers wanting repeated lookups keep the
// result themselves.
func (g *Grid) Goal() (Cell, bool) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == CellGoal {
				return Cell{Row: r, Col: c}, true
			}
		}
	}
	return Cell{}, false
}

// Codes returns a copy of the cell-code matrix, for handing the level to a
// viewer without sharing the backing arrays.
func (g *Grid) Codes() [][]int {
	out := make([][]int, g.rows)
	for r := range g.cells {
		out[r] = append([]int(nil), g.cells[r]...)
	}
	return out
}

// String renders the grid as text, one rune per cell.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		for _, code := range row {
			switch code {
			case CellWall:
				b.WriteByte('#')
			case CellGoal:
				b.WriteByte('X')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
