package solve

import "github.com/zucenko/mazeway/model"

// BFS expands the frontier in discovery order, so the returned path has the
// minimum number of steps.
type BFS struct{}

func (s *BFS) Solve(g *model.Grid, start, goal model.Cell) (Path, bool) {
	if !g.Walkable(start) || !g.Walkable(goal) {
		return nil, false
	}
	if start == goal {
		return Path{}, true
	}

	queue := []model.Cell{start}
	visited := map[model.Cell]bool{start: true}
	parent := make(map[model.Cell]model.Cell)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range directions {
			n := next(cur, d)
			if visited[n] || !g.Walkable(n) {
				continue
			}
			visited[n] = true
			parent[n] = cur
			if n == goal {
				return reconstruct(parent, start, goal), true
			}
			queue = append(queue, n)
		}
	}
	return nil, false
}
