package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsBadInput(t *testing.T) {
	_, err := NewGrid(nil)
	assert.Error(t, err)

	_, err = NewGrid([][]int{})
	assert.Error(t, err)

	_, err = NewGrid([][]int{
		{0, 0, 0},
		{0, 0},
	})
	assert.Error(t, err)
}

func TestGridQueries(t *testing.T) {
	g, err := NewGrid([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 0, 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())

	assert.True(t, g.InBounds(Cell{Row: 0, Col: 0}))
	assert.False(t, g.InBounds(Cell{Row: -1, Col: 0}))
	assert.False(t, g.InBounds(Cell{Row: 0, Col: 3}))

	assert.True(t, g.Walkable(Cell{Row: 1, Col: 1}))
	assert.True(t, g.Walkable(Cell{Row: 2, Col: 2}), "goal cell is walkable")
	assert.False(t, g.Walkable(Cell{Row: 0, Col: 0}), "wall")
	assert.False(t, g.Walkable(Cell{Row: 3, Col: 3}), "out of bounds is never walkable")
}

func TestGoalScan(t *testing.T) {
	cells := make([][]int, 4)
	for r := range cells {
		cells[r] = make([]int, 7)
	}
	cells[2][5] = CellGoal
	g, err := NewGrid(cells)
	require.NoError(t, err)

	goal, found := g.Goal()
	require.True(t, found)
	assert.Equal(t, Cell{Row: 2, Col: 5}, goal)
}

func TestGoalScanRowMajorTieBreak(t *testing.T) {
	g, err := NewGrid([][]int{
		{0, 0, 0},
		{0, 3, 3},
		{3, 0, 0},
	})
	require.NoError(t, err)

	goal, found := g.Goal()
	require.True(t, found)
	assert.Equal(t, Cell{Row: 1, Col: 1}, goal, "first goal in row-major order wins")
}

func TestGoalMissing(t *testing.T) {
	g, err := NewGrid([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)

	_, found := g.Goal()
	assert.False(t, found)
}

func TestCellPixelRoundTrip(t *testing.T) {
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			cell := Cell{Row: r, Col: c}
			assert.Equal(t, cell, cell.Pixel().Cell())
		}
	}

	p := Cell{Row: 2, Col: 3}.Pixel()
	assert.Equal(t, Pixel{X: 3 * TileSize, Y: 2 * TileSize}, p)
}

func TestCodesCopies(t *testing.T) {
	g, err := NewGrid([][]int{{0, 1}, {3, 0}})
	require.NoError(t, err)

	codes := g.Codes()
	codes[0][0] = CellWall
	assert.True(t, g.Walkable(Cell{Row: 0, Col: 0}), "mutating the copy must not touch the grid")
}

func TestAgentDerivedCell(t *testing.T) {
	a := NewAgent(Cell{Row: 1, Col: 1})
	assert.Equal(t, Pixel{X: TileSize, Y: TileSize}, a.Pixel())
	assert.Equal(t, Cell{Row: 1, Col: 1}, a.Cell())

	a.MoveTo(Pixel{X: 3 * TileSize, Y: 2 * TileSize})
	assert.Equal(t, Cell{Row: 2, Col: 3}, a.Cell())
}
