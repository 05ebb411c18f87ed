package solve

import (
	"container/heap"

	"github.com/zucenko/mazeway/model"
)

// AStar orders the frontier by cost so far plus the heuristic estimate to
// the goal. With an admissible heuristic the result is shortest.
type AStar struct {
	// Heuristic estimates the remaining cost between two cells. Nil means
	// Manhattan distance.
	Heuristic func(a, b model.Cell) int
}

// FindGoal locates the goal marker on the grid. Exposed here because A*
// invocations couple heuristic selection with goal lookup.
func (s *AStar) FindGoal(g *model.Grid) (model.Cell, bool) {
	return g.Goal()
}

func (s *AStar) Solve(g *model.Grid, start, goal model.Cell) (Path, bool) {
	if !g.Walkable(start) || !g.Walkable(goal) {
		return nil, false
	}
	if start == goal {
		return Path{}, true
	}

	h := s.Heuristic
	if h == nil {
		h = Manhattan
	}

	open := priorityQueue{}
	heap.Init(&open)
	startItem := &pqItem{cell: start, gScore: 0, fCost: h(start, goal)}
	heap.Push(&open, startItem)

	inOpen := map[model.Cell]*pqItem{start: startItem}
	gScore := map[model.Cell]int{start: 0}
	cameFrom := make(map[model.Cell]model.Cell)
	closed := make(map[model.Cell]bool)

	for open.Len() > 0 {
		cur := heap.Pop(&open).(*pqItem)
		delete(inOpen, cur.cell)
		if closed[cur.cell] {
			continue
		}
		closed[cur.cell] = true

		if cur.cell == goal {
			return reconstruct(cameFrom, start, goal), true
		}

		for _, d := range directions {
			n := next(cur.cell, d)
			if closed[n] || !g.Walkable(n) {
				continue
			}
			tentative := gScore[cur.cell] + 1
			if old, seen := gScore[n]; seen && tentative >= old {
				continue
			}
			gScore[n] = tentative
			cameFrom[n] = cur.cell
			f := tentative + h(n, goal)
			if item, ok := inOpen[n]; ok {
				item.gScore = tentative
				item.fCost = f
				heap.Fix(&open, item.index)
			} else {
				item := &pqItem{cell: n, gScore: tentative, fCost: f}
				heap.Push(&open, item)
				inOpen[n] = item
			}
		}
	}
	return nil, false
}

type pqItem struct {
	cell   model.Cell
	gScore int
	fCost  int
	index  int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].fCost < pq[j].fCost }
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x interface{}) {
	it := x.(*pqItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
