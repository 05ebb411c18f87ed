package solve

import (
	"container/heap"

	"github.com/zucenko/mazeway/model"
)

// Dijkstra orders the frontier by accumulated cost. On the uniform grid it
// matches BFS; the Weight hook is the seam for per-cell costs later.
type Dijkstra struct {
	// Weight returns the cost of entering a cell. Nil means uniform 1.
	Weight func(model.Cell) int
}

func (s *Dijkstra) Solve(g *model.Grid, start, goal model.Cell) (Path, bool) {
	if !g.Walkable(start) || !g.Walkable(goal) {
		return nil, false
	}
	if start == goal {
		return Path{}, true
	}

	weight := s.Weight
	if weight == nil {
		weight = func(model.Cell) int { return 1 }
	}

	dist := map[model.Cell]int{start: 0}
	parent := make(map[model.Cell]model.Cell)
	visited := make(map[model.Cell]bool)

	pq := &cellPQ{}
	heap.Init(pq)
	heap.Push(pq, &cellItem{cell: start, dist: 0})

	for pq.Len() > 0 {
		u := heap.Pop(pq).(*cellItem)
		if visited[u.cell] {
			continue
		}
		visited[u.cell] = true
		if u.cell == goal {
			return reconstruct(parent, start, goal), true
		}

		for _, d := range directions {
			n := next(u.cell, d)
			if visited[n] || !g.Walkable(n) {
				continue
			}
			nd := dist[u.cell] + weight(n)
			if old, seen := dist[n]; !seen || nd < old {
				dist[n] = nd
				parent[n] = u.cell
				heap.Push(pq, &cellItem{cell: n, dist: nd})
			}
		}
	}
	return nil, false
}

// cellItem for the Dijkstra PQ
type cellItem struct {
	cell model.Cell
	dist int
}

// cellPQ implements heap.Interface
type cellPQ []*cellItem

func (pq cellPQ) Len() int           { return len(pq) }
func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) {
	*pq = append(*pq, x.(*cellItem))
}
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
