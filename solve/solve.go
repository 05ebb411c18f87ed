package solve

import (
	"fmt"

	"github.com/zucenko/mazeway/model"
)

// Path is the ordered cells from one step after the start through the goal
// inclusive. len(path) is the step count; start == goal gives an empty path.
type Path []model.Cell

// Solver computes a path across a grid. The second return is false when no
// path exists; callers treat that as a normal outcome, not an error.
type Solver interface {
	Solve(g *model.Grid, start, goal model.Cell) (Path, bool)
}

// Strategy tags the interchangeable search algorithms.
type Strategy int

const (
	ALG_DFS Strategy = iota + 1
	ALG_BFS
	ALG_DIJKSTRA
	ALG_ASTAR
)

func (s Strategy) Name() string {
	switch s {
	case ALG_DFS:
		return "DFS"
	case ALG_BFS:
		return "BFS"
	case ALG_DIJKSTRA:
		return "DIJKSTRA"
	case ALG_ASTAR:
		return "ASTAR"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// New returns a fresh solver for the strategy, nil for an unknown tag.
func New(s Strategy) Solver {
	switch s {
	case ALG_DFS:
		return &DFS{}
	case ALG_BFS:
		return &BFS{}
	case ALG_DIJKSTRA:
		return &Dijkstra{}
	case ALG_ASTAR:
		return &AStar{}
	default:
		return nil
	}
}

// Neighbor priority order: up, down, left, right. 4-directional only.
var directions = [4]model.Cell{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

func next(c, d model.Cell) model.Cell {
	return model.Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan is the L1 distance between two cells. It never overestimates
// the remaining cost on a 4-directional unit grid.
func Manhattan(a, b model.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// reconstruct walks the parent map from goal back to start (exclusive) and
// reverses in place.
func reconstruct(parent map[model.Cell]model.Cell, start, goal model.Cell) Path {
	path := Path{}
	for at := goal; at != start; at = parent[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
