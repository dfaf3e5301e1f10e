// Package ai implements the autonomous decision engine that drives the
// snake: A* pathfinding toward food, forward-simulated safety checks,
// loop detection, and a tiered fallback policy that always emits exactly
// one move per tick.
package ai

import (
	"errors"
	"fmt"

	"github.com/darshanrk18/ai-snake/game/types"
)

// ErrInvalidState is returned by Decide when the snapshot passed in
// violates a board invariant. It signals a bug in the caller's state
// maintenance, not a recoverable game situation.
var ErrInvalidState = errors.New("ai: invalid board state")

// ErrUnavoidableLoss is returned when not even the last-resort tier can
// produce a legal move. The caller should treat the game as lost.
var ErrUnavoidableLoss = errors.New("ai: no legal move available")

// State is a read-only snapshot of the board handed to the engine each
// tick. The engine never mutates it and keeps no reference to it after
// Decide returns.
type State struct {
	Grid types.Grid
	// Body holds the snake cells, head first, tail last.
	Body []types.Point
	Food types.Point
	// HasFood is false only on a won board, where no free cell remains.
	HasFood bool
	// JustAte tells the engine that the previous move consumed food, so
	// loop history can be reset.
	JustAte bool
}

// Head returns the snake's head cell.
func (s State) Head() types.Point {
	return s.Body[0]
}

// Tail returns the snake's tail cell.
func (s State) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

// validate checks the invariants the engine relies on: non-empty body,
// all cells in bounds, no overlapping body cells, food outside the body.
func (s State) validate() error {
	if len(s.Body) == 0 {
		return fmt.Errorf("%w: empty snake body", ErrInvalidState)
	}
	seen := make(map[types.Point]bool, len(s.Body))
	for i, p := range s.Body {
		if !s.Grid.Contains(p) {
			return fmt.Errorf("%w: body cell %d at %v out of bounds", ErrInvalidState, i, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: duplicate body cell at %v", ErrInvalidState, p)
		}
		seen[p] = true
	}
	if s.HasFood {
		if !s.Grid.Contains(s.Food) {
			return fmt.Errorf("%w: food at %v out of bounds", ErrInvalidState, s.Food)
		}
		if seen[s.Food] {
			return fmt.Errorf("%w: food at %v inside snake body", ErrInvalidState, s.Food)
		}
	}
	return nil
}

// Tier identifies the policy level that produced a decision, ordered
// from strictest-safe to last-resort.
type Tier int

const (
	TierStrictSafeFood Tier = iota
	TierTailChase
	TierLenientSafeFood
	TierYolo
	TierFallback
)

func (t Tier) String() string {
	switch t {
	case TierStrictSafeFood:
		return "strict-safe-food"
	case TierTailChase:
		return "tail-chase"
	case TierLenientSafeFood:
		return "lenient-safe-food"
	case TierYolo:
		return "yolo"
	case TierFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Decision is the engine's output for one tick: the move to apply, the
// tier that produced it, and the planned path for visualization. Path is
// nil when the tier has no plan beyond the immediate move.
type Decision struct {
	Move types.Direction
	Tier Tier
	Path []types.Point
}
