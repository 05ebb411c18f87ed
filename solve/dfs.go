package solve

import "github.com/zucenko/mazeway/model"

// DFS explores neighbors in the fixed priority order and backtracks on dead
// ends. The returned path is some valid path, not necessarily the shortest.
type DFS struct{}

func (s *DFS) Solve(g *model.Grid, start, goal model.Cell) (Path, bool) {
	if !g.Walkable(start) || !g.Walkable(goal) {
		return nil, false
	}
	if start == goal {
		return Path{}, true
	}
	visited := map[model.Cell]bool{start: true}
	return s.descend(g, start, goal, visited)
}

// descend returns the path from `from` (exclusive) to the goal (inclusive).
// The visited set guarantees termination on cyclic grids.
func (s *DFS) descend(g *model.Grid, from, goal model.Cell, visited map[model.Cell]bool) (Path, bool) {
	for _, d := range directions {
		n := next(from, d)
		if visited[n] || !g.Walkable(n) {
			continue
		}
		visited[n] = true
		if n == goal {
			return Path{n}, true
		}
		if rest, ok := s.descend(g, n, goal, visited); ok {
			return append(Path{n}, rest...), true
		}
	}
	return nil, false
}
