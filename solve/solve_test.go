package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazeway/model"
)

func mustGrid(t *testing.T, rows []string) *model.Grid {
	t.Helper()
	cells := make([][]int, len(rows))
	for r, row := range rows {
		cells[r] = make([]int, len(row))
		for c, char := range row {
			cells[r][c] = int(char - '0')
		}
	}
	g, err := model.NewGrid(cells)
	require.NoError(t, err)
	return g
}

func allSolvers() map[Strategy]Solver {
	return map[Strategy]Solver{
		ALG_DFS:      &DFS{},
		ALG_BFS:      &BFS{},
		ALG_DIJKSTRA: &Dijkstra{},
		ALG_ASTAR:    &AStar{},
	}
}

// requireValidPath checks every consecutive pair is adjacent and walkable,
// and that the path runs from next to start through the goal.
func requireValidPath(t *testing.T, g *model.Grid, start, goal model.Cell, path Path) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, goal, path[len(path)-1], "path must end at the goal")

	prev := start
	for i, cell := range path {
		assert.True(t, g.Walkable(cell), "cell %d of path not walkable: %v", i, cell)
		assert.Equal(t, 1, Manhattan(prev, cell), "cells %v -> %v not adjacent", prev, cell)
		prev = cell
	}
}

func TestOpenFieldDetour(t *testing.T) {
	// 5x5, open except a wall at (2,2); start (0,0), goal (4,4).
	g := mustGrid(t, []string{
		"00000",
		"00000",
		"00100",
		"00000",
		"00003",
	})
	start := model.Cell{Row: 0, Col: 0}
	goal := model.Cell{Row: 4, Col: 4}

	for tag, s := range allSolvers() {
		path, found := s.Solve(g, start, goal)
		require.True(t, found, tag.Name())
		requireValidPath(t, g, start, goal, path)
		assert.NotContains(t, path, model.Cell{Row: 2, Col: 2}, tag.Name())
		if tag == ALG_DFS {
			assert.True(t, len(path) >= 8, "DFS path may be longer, never shorter than optimal")
		} else {
			assert.Equal(t, 8, len(path), "%s must find the 8-step optimum", tag.Name())
		}
	}
}

func TestShortestPathsAgreeOnLength(t *testing.T) {
	g := mustGrid(t, []string{
		"1111111",
		"1000001",
		"1011101",
		"1010001",
		"1010113",
		"1000001",
		"1111111",
	})
	start := model.Cell{Row: 1, Col: 1}
	goal, found := g.Goal()
	require.True(t, found)

	bfsPath, ok := (&BFS{}).Solve(g, start, goal)
	require.True(t, ok)
	dijPath, ok := (&Dijkstra{}).Solve(g, start, goal)
	require.True(t, ok)
	aPath, ok := (&AStar{}).Solve(g, start, goal)
	require.True(t, ok)

	assert.Equal(t, len(bfsPath), len(dijPath))
	assert.Equal(t, len(bfsPath), len(aPath))
	requireValidPath(t, g, start, goal, bfsPath)
	requireValidPath(t, g, start, goal, dijPath)
	requireValidPath(t, g, start, goal, aPath)

	dfsPath, ok := (&DFS{}).Solve(g, start, goal)
	require.True(t, ok)
	requireValidPath(t, g, start, goal, dfsPath)
	assert.True(t, len(dfsPath) >= len(bfsPath))
}

func TestStartEqualsGoal(t *testing.T) {
	g := mustGrid(t, []string{"000", "030", "000"})
	at := model.Cell{Row: 1, Col: 1}

	for tag, s := range allSolvers() {
		path, found := s.Solve(g, at, at)
		assert.True(t, found, tag.Name())
		assert.Len(t, path, 0, "%s: no movement needed", tag.Name())
	}
}

func TestWalledInGoal(t *testing.T) {
	g := mustGrid(t, []string{
		"00000",
		"01110",
		"01310",
		"01110",
		"00000",
	})
	start := model.Cell{Row: 0, Col: 0}
	goal := model.Cell{Row: 2, Col: 2}

	for tag, s := range allSolvers() {
		path, found := s.Solve(g, start, goal)
		assert.False(t, found, tag.Name())
		assert.Nil(t, path, tag.Name())
	}
}

func TestStartOnWall(t *testing.T) {
	g := mustGrid(t, []string{"10", "03"})

	for tag, s := range allSolvers() {
		_, found := s.Solve(g, model.Cell{Row: 0, Col: 0}, model.Cell{Row: 1, Col: 1})
		assert.False(t, found, tag.Name())
	}
}

func TestGoalOutOfBounds(t *testing.T) {
	g := mustGrid(t, []string{"00", "00"})

	for tag, s := range allSolvers() {
		_, found := s.Solve(g, model.Cell{Row: 0, Col: 0}, model.Cell{Row: 5, Col: 5})
		assert.False(t, found, tag.Name())
	}
}

func TestDijkstraWeightHook(t *testing.T) {
	g := mustGrid(t, []string{
		"000",
		"000",
		"003",
	})
	expensive := model.Cell{Row: 1, Col: 1}
	s := &Dijkstra{Weight: func(c model.Cell) int {
		if c == expensive {
			return 100
		}
		return 1
	}}

	path, found := s.Solve(g, model.Cell{Row: 0, Col: 0}, model.Cell{Row: 2, Col: 2})
	require.True(t, found)
	assert.Len(t, path, 4)
	assert.NotContains(t, path, expensive, "center costs 100, the detour is cheaper")
}

func TestAStarFindGoal(t *testing.T) {
	g := mustGrid(t, []string{"000", "003"})
	s := &AStar{}

	goal, found := s.FindGoal(g)
	require.True(t, found)
	assert.Equal(t, model.Cell{Row: 1, Col: 2}, goal)

	_, found = s.FindGoal(mustGrid(t, []string{"00", "00"}))
	assert.False(t, found)
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, Manhattan(model.Cell{Row: 2, Col: 2}, model.Cell{Row: 2, Col: 2}))
	assert.Equal(t, 7, Manhattan(model.Cell{Row: 0, Col: 0}, model.Cell{Row: 3, Col: 4}))
	assert.Equal(t, 7, Manhattan(model.Cell{Row: 3, Col: 4}, model.Cell{Row: 0, Col: 0}))
}

func TestStrategyNames(t *testing.T) {
	assert.Equal(t, "DFS", ALG_DFS.Name())
	assert.Equal(t, "BFS", ALG_BFS.Name())
	assert.Equal(t, "DIJKSTRA", ALG_DIJKSTRA.Name())
	assert.Equal(t, "ASTAR", ALG_ASTAR.Name())
	assert.Equal(t, "N/A(9)", Strategy(9).Name())
}

func TestNewFactory(t *testing.T) {
	for _, tag := range []Strategy{ALG_DFS, ALG_BFS, ALG_DIJKSTRA, ALG_ASTAR} {
		assert.NotNil(t, New(tag), tag.Name())
	}
	assert.Nil(t, New(Strategy(0)))
}
