package ai

import "github.com/darshanrk18/ai-snake/game/types"

// board is the occupancy view of the grid that the search and safety
// code runs against. It is built fresh for every query and never shared
// across ticks.
type board struct {
	grid     types.Grid
	occupied map[types.Point]bool
}

// newBoard builds an occupancy board from a snake body. The last
// tailSlack body cells are left free: during planning the tail vacates
// its cell on every non-growing step, so treating it (or, for lenient
// checks, a few trailing segments) as free space is sound.
func newBoard(grid types.Grid, body []types.Point, tailSlack int) *board {
	if tailSlack < 0 {
		tailSlack = 0
	}
	if tailSlack > len(body) {
		tailSlack = len(body)
	}
	occ := make(map[types.Point]bool, len(body))
	for _, p := range body[:len(body)-tailSlack] {
		occ[p] = true
	}
	return &board{grid: grid, occupied: occ}
}

// inBounds reports whether the cell lies on the grid.
func (b *board) inBounds(p types.Point) bool {
	return b.grid.Contains(p)
}

// isObstacle reports whether the cell is blocked. Out-of-bounds cells
// count as obstacles so callers can treat walls and body uniformly.
func (b *board) isObstacle(p types.Point) bool {
	return !b.grid.Contains(p) || b.occupied[p]
}

// block marks an extra cell as occupied.
func (b *board) block(p types.Point) {
	b.occupied[p] = true
}

// neighbors appends the free in-bounds 4-neighbors of p to dst, in the
// fixed direction priority order, and returns the extended slice.
func (b *board) neighbors(dst []types.Point, p types.Point) []types.Point {
	for _, d := range types.Directions {
		n := p.Add(d.ToPoint())
		if !b.isObstacle(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// openNeighborCount returns how many free in-bounds cells surround p.
func (b *board) openNeighborCount(p types.Point) int {
	count := 0
	for _, d := range types.Directions {
		if !b.isObstacle(p.Add(d.ToPoint())) {
			count++
		}
	}
	return count
}
