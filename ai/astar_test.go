package ai

import (
	"reflect"
	"testing"

	"github.com/darshanrk18/ai-snake/game/types"
)

// bfsDistance is the brute-force reference: breadth-first shortest path
// length from start to goal, or -1 when unreachable. The goal cell is
// enterable even when occupied, mirroring findPath.
func bfsDistance(b *board, start, goal types.Point) int {
	if start == goal {
		return 0
	}
	dist := map[types.Point]int{start: 0}
	queue := []types.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range types.Directions {
			next := cur.Add(d.ToPoint())
			if _, ok := dist[next]; ok {
				continue
			}
			if !b.inBounds(next) {
				continue
			}
			if next != goal && b.isObstacle(next) {
				continue
			}
			dist[next] = dist[cur] + 1
			if next == goal {
				return dist[next]
			}
			queue = append(queue, next)
		}
	}
	return -1
}

func checkPathValid(t *testing.T, b *board, start, goal types.Point, path []types.Point) {
	t.Helper()
	seen := map[types.Point]bool{}
	prev := start
	for i, cell := range path {
		if types.Delta(prev, cell) == types.None {
			t.Fatalf("path step %d: %v not adjacent to %v", i, cell, prev)
		}
		if seen[cell] {
			t.Fatalf("path step %d: cell %v repeated", i, cell)
		}
		if cell != goal && b.isObstacle(cell) {
			t.Fatalf("path step %d: cell %v is an obstacle", i, cell)
		}
		seen[cell] = true
		prev = cell
	}
	if len(path) > 0 && path[len(path)-1] != goal {
		t.Fatalf("path ends at %v, want goal %v", path[len(path)-1], goal)
	}
}

func TestFindPathMatchesBFSOnAllPairs(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 6}
	boards := []struct {
		name      string
		obstacles []types.Point
	}{
		{"empty", nil},
		{"wall with gap", []types.Point{
			{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 4}, {X: 3, Y: 5},
		}},
		{"split board", []types.Point{
			{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4}, {X: 3, Y: 5},
		}},
		{"scattered", []types.Point{
			{X: 1, Y: 1}, {X: 2, Y: 3}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 0, Y: 3},
		}},
	}

	for _, tc := range boards {
		t.Run(tc.name, func(t *testing.T) {
			b := &board{grid: grid, occupied: map[types.Point]bool{}}
			for _, p := range tc.obstacles {
				b.block(p)
			}
			for sx := 0; sx < grid.Width; sx++ {
				for sy := 0; sy < grid.Height; sy++ {
					start := types.Point{X: sx, Y: sy}
					if b.isObstacle(start) {
						continue
					}
					for gx := 0; gx < grid.Width; gx++ {
						for gy := 0; gy < grid.Height; gy++ {
							goal := types.Point{X: gx, Y: gy}
							if b.isObstacle(goal) {
								continue
							}
							want := bfsDistance(b, start, goal)
							path := findPath(b, start, goal)
							if want < 0 {
								if path != nil {
									t.Fatalf("findPath(%v, %v) = %v, want unreachable", start, goal, path)
								}
								continue
							}
							if path == nil {
								t.Fatalf("findPath(%v, %v) = nil, want length %d", start, goal, want)
							}
							if len(path) != want {
								t.Fatalf("findPath(%v, %v) length = %d, want %d", start, goal, len(path), want)
							}
							checkPathValid(t, b, start, goal, path)
						}
					}
				}
			}
		})
	}
}

func TestFindPathUnreachableReturnsNil(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	b := &board{grid: grid, occupied: map[types.Point]bool{}}
	// Box in the start cell completely.
	for _, p := range []types.Point{{X: 1, Y: 0}, {X: 0, Y: 1}} {
		b.block(p)
	}
	if path := findPath(b, types.Point{X: 0, Y: 0}, types.Point{X: 3, Y: 3}); path != nil {
		t.Fatalf("expected nil path, got %v", path)
	}
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	b := &board{grid: grid, occupied: map[types.Point]bool{}}
	p := types.Point{X: 1, Y: 1}
	path := findPath(b, p, p)
	if path == nil || len(path) != 0 {
		t.Fatalf("findPath(p, p) = %v, want empty path", path)
	}
}

func TestFindPathOutOfBoundsEndpoints(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	b := &board{grid: grid, occupied: map[types.Point]bool{}}
	if path := findPath(b, types.Point{X: -1, Y: 0}, types.Point{X: 2, Y: 2}); path != nil {
		t.Fatalf("expected nil for out-of-bounds start, got %v", path)
	}
	if path := findPath(b, types.Point{X: 0, Y: 0}, types.Point{X: 3, Y: 3}); path != nil {
		t.Fatalf("expected nil for out-of-bounds goal, got %v", path)
	}
}

func TestFindPathDeterministic(t *testing.T) {
	grid := types.Grid{Width: 8, Height: 8}
	obstacles := []types.Point{
		{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}, {X: 5, Y: 5}, {X: 6, Y: 1},
	}
	start := types.Point{X: 0, Y: 0}
	goal := types.Point{X: 7, Y: 7}

	var first []types.Point
	for i := 0; i < 5; i++ {
		b := &board{grid: grid, occupied: map[types.Point]bool{}}
		for _, p := range obstacles {
			b.block(p)
		}
		path := findPath(b, start, goal)
		if i == 0 {
			first = path
			continue
		}
		if !reflect.DeepEqual(first, path) {
			t.Fatalf("run %d produced a different path:\nfirst: %v\n  now: %v", i, first, path)
		}
	}
}

func TestFindPathEntersOccupiedGoal(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	b := &board{grid: grid, occupied: map[types.Point]bool{}}
	goal := types.Point{X: 2, Y: 0}
	b.block(goal)
	path := findPath(b, types.Point{X: 0, Y: 0}, goal)
	if len(path) != 2 {
		t.Fatalf("expected 2-step path into occupied goal, got %v", path)
	}
}
