package ai

import "github.com/darshanrk18/ai-snake/game/types"

// TailBehavior selects how eagerly a safety check assumes the tail
// vacates its cells.
type TailBehavior int

const (
	// TailStrict frees only the current tail cell during the check.
	TailStrict TailBehavior = iota
	// TailLenient frees several trailing segments and accepts a large
	// enough reachable region even when the tail itself is cut off.
	TailLenient
)

// simulateBody applies a path to a snake body and returns the resulting
// body, head first. The tail advances on every step except the one that
// lands the head on the food cell, where the snake grows instead. The
// input body is not modified.
func simulateBody(body, path []types.Point, food types.Point, hasFood bool) []types.Point {
	sim := make([]types.Point, len(body), len(body)+len(path)+1)
	copy(sim, body)
	for _, cell := range path {
		sim = append(sim, types.Point{})
		copy(sim[1:], sim)
		sim[0] = cell
		if !hasFood || cell != food {
			sim = sim[:len(sim)-1]
		}
	}
	return sim
}

// reachable flood-fills from start over free cells and returns the set
// of visited cells. The start cell itself may be occupied (it is the
// simulated head); it is not included in the result.
func reachable(b *board, start types.Point) map[types.Point]bool {
	visited := make(map[types.Point]bool)
	queue := make([]types.Point, 0, 16)
	queue = b.neighbors(queue, start)
	for _, p := range queue {
		visited[p] = true
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range types.Directions {
			next := cur.Add(d.ToPoint())
			if next == start || visited[next] || b.isObstacle(next) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return visited
}

// isSafeAfter simulates following path from state s and reports whether
// the post-path position still has a viable escape. The strict check
// demands that the simulated head can reach the simulated tail, which
// guarantees survival: the snake can then follow its own tail
// indefinitely. The lenient check frees extra trailing segments and also
// accepts a reachable free region at least as large as the snake,
// trading certainty for progress.
//
// The check is conservative: it may reject genuinely safe moves, which
// only demotes the engine to a lower tier. It must never accept a move
// that traps the snake.
func isSafeAfter(s State, path []types.Point, behavior TailBehavior, cfg Config) bool {
	sim := simulateBody(s.Body, path, s.Food, s.HasFood)
	simHead := sim[0]
	simTail := sim[len(sim)-1]

	slack := 1
	if behavior == TailLenient {
		slack = cfg.LenientTailSlack
	}
	b := newBoard(s.Grid, sim, slack)
	region := reachable(b, simHead)

	if region[simTail] {
		return true
	}
	if behavior == TailLenient {
		return len(region) >= len(sim)-cfg.LenientSpaceMargin
	}
	return false
}
