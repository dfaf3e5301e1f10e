package ai

import (
	"container/heap"

	"github.com/darshanrk18/ai-snake/game/types"
)

// findPath runs A* from start to goal over the board and returns the
// shortest path, start exclusive, goal inclusive. A nil return means the
// goal is unreachable; that is an expected outcome, not an error.
//
// Edge cost is 1 and the heuristic is Manhattan distance, which is
// admissible and consistent on a 4-connected grid, so the returned path
// is optimal. Ties on f-score are broken by lower g-score and then by
// insertion order, keeping the search fully deterministic.
//
// The goal cell is always enterable even when the board marks it
// occupied, so callers can target the snake's own tail.
func findPath(b *board, start, goal types.Point) []types.Point {
	if !b.inBounds(start) || !b.inBounds(goal) {
		return nil
	}
	if start == goal {
		return []types.Point{}
	}

	gScore := map[types.Point]int{start: 0}
	parent := map[types.Point]types.Point{}

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &node{pos: start, g: 0, f: types.ManhattanDistance(start, goal)})

	closed := make(map[types.Point]bool)
	seq := 0

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		if closed[cur.pos] {
			continue
		}
		closed[cur.pos] = true

		if cur.pos == goal {
			return reconstruct(parent, start, goal)
		}

		for _, d := range types.Directions {
			next := cur.pos.Add(d.ToPoint())
			if !b.inBounds(next) {
				continue
			}
			if next != goal && b.isObstacle(next) {
				continue
			}
			tentative := cur.g + 1
			if best, ok := gScore[next]; ok && tentative >= best {
				continue
			}
			gScore[next] = tentative
			parent[next] = cur.pos
			seq++
			heap.Push(open, &node{
				pos: next,
				g:   tentative,
				f:   tentative + types.ManhattanDistance(next, goal),
				seq: seq,
			})
		}
	}
	return nil
}

// reconstruct walks the parent pointers back from goal to start and
// returns the path in forward order, excluding start.
func reconstruct(parent map[types.Point]types.Point, start, goal types.Point) []types.Point {
	var rev []types.Point
	for cur := goal; cur != start; cur = parent[cur] {
		rev = append(rev, cur)
	}
	path := make([]types.Point, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}

type node struct {
	pos types.Point
	g   int
	f   int
	seq int
}

// nodeHeap is the A* frontier, ordered by f-score, then g-score, then
// insertion order.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	if h[i].g != h[j].g {
		return h[i].g < h[j].g
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(*node))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]
	return n
}
