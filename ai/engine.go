package ai

import "github.com/darshanrk18/ai-snake/game/types"

// Config holds the engine's numeric tunables. The engine treats them as
// opaque inputs; validation of their source is the caller's concern.
type Config struct {
	// LoopWindow is the number of recent head positions the loop
	// detector remembers.
	LoopWindow int
	// LoopRepeats is how many times the head may revisit a cell within
	// the window before the engine escalates past the strict tiers.
	LoopRepeats int
	// LenientTailSlack is the number of trailing body segments the
	// lenient safety check assumes have vacated.
	LenientTailSlack int
	// LenientSpaceMargin is subtracted from the body length in the
	// lenient free-space test. The threshold is an empirical heuristic,
	// not a proven bound.
	LenientSpaceMargin int
}

// DefaultConfig returns the tunables the engine ships with.
func DefaultConfig() Config {
	return Config{
		LoopWindow:         24,
		LoopRepeats:        1,
		LenientTailSlack:   3,
		LenientSpaceMargin: 2,
	}
}

// Engine is the per-game decision engine. It holds no board state
// between ticks; the loop-detector window is its only memory.
type Engine struct {
	cfg  Config
	loop *loopDetector
}

// New creates an engine with the given tunables. Zero or negative values
// fall back to the defaults.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.LoopWindow <= 0 {
		cfg.LoopWindow = def.LoopWindow
	}
	if cfg.LoopRepeats <= 0 {
		cfg.LoopRepeats = def.LoopRepeats
	}
	if cfg.LenientTailSlack <= 0 {
		cfg.LenientTailSlack = def.LenientTailSlack
	}
	if cfg.LenientSpaceMargin < 0 {
		cfg.LenientSpaceMargin = def.LenientSpaceMargin
	}
	return &Engine{cfg: cfg, loop: newLoopDetector(cfg.LoopWindow, cfg.LoopRepeats)}
}

// Reset clears the engine's loop history. Call it when a new game
// starts.
func (e *Engine) Reset() {
	e.loop.reset()
}

// strategy is one tier of the policy ladder: a pure function that either
// produces a decision for the given state or declines.
type strategy struct {
	tier Tier
	try  func(State) (Decision, bool)
}

// Decide chooses the snake's next move for the given snapshot. The
// tiers are recomputed fresh every tick and tried in fixed order; the
// first one that produces a move wins. When the loop detector signals
// that the snake is orbiting, the strict tiers are skipped for this tick
// and the lenient food search runs first.
//
// Decide returns ErrInvalidState when the snapshot breaks a board
// invariant and ErrUnavoidableLoss when no legal move exists at all.
// It is fully deterministic: identical inputs yield identical decisions.
func (e *Engine) Decide(s State) (Decision, error) {
	if err := s.validate(); err != nil {
		return Decision{}, err
	}
	if s.JustAte {
		e.loop.reset()
	}
	escalated := e.loop.recordAndCheck(s.Head())

	var ladder []strategy
	if escalated {
		ladder = []strategy{
			{TierLenientSafeFood, e.lenientSafeFood},
			{TierTailChase, e.tailChase},
			{TierYolo, e.yolo},
			{TierFallback, e.fallback},
		}
	} else {
		ladder = []strategy{
			{TierStrictSafeFood, e.strictSafeFood},
			{TierTailChase, e.tailChase},
			{TierLenientSafeFood, e.lenientSafeFood},
			{TierYolo, e.yolo},
			{TierFallback, e.fallback},
		}
	}

	for _, st := range ladder {
		if d, ok := st.try(s); ok {
			d.Tier = st.tier
			return d, nil
		}
	}
	return Decision{}, ErrUnavoidableLoss
}

// strictSafeFood looks for the shortest food plan that leaves the snake
// provably alive after eating.
func (e *Engine) strictSafeFood(s State) (Decision, bool) {
	return e.safeFood(s, TailStrict)
}

// lenientSafeFood repeats the food search with the relaxed safety check,
// accepting plans the strict tier would reject.
func (e *Engine) lenientSafeFood(s State) (Decision, bool) {
	return e.safeFood(s, TailLenient)
}

// safeFood examines all four first moves, plans a route to food from the
// position one step ahead, and keeps the shortest plan that passes the
// safety check. Trying every first move matters: the direct A* route is
// sometimes unsafe while a one-step detour is not.
func (e *Engine) safeFood(s State, behavior TailBehavior) (Decision, bool) {
	if !s.HasFood {
		return Decision{}, false
	}
	head := s.Head()
	current := newBoard(s.Grid, s.Body, 1)

	var best Decision
	bestLen := -1
	for _, d := range types.Directions {
		first := head.Add(d.ToPoint())
		if len(s.Body) > 1 && first == s.Body[1] {
			continue
		}
		if current.isObstacle(first) {
			continue
		}

		simBody := simulateBody(s.Body, []types.Point{first}, s.Food, s.HasFood)
		after := findPath(newBoard(s.Grid, simBody, 1), simBody[0], s.Food)
		if after == nil {
			continue
		}

		plan := make([]types.Point, 0, len(after)+1)
		plan = append(plan, first)
		plan = append(plan, after...)
		if !isSafeAfter(s, plan, behavior, e.cfg) {
			continue
		}
		if bestLen < 0 || len(plan) < bestLen {
			bestLen = len(plan)
			best = Decision{Move: d, Path: plan}
		}
	}
	return best, bestLen >= 0
}

// tailChase routes toward the snake's own tail to buy time when no safe
// food plan exists. The tail cell is a valid goal because it vacates as
// the snake advances.
func (e *Engine) tailChase(s State) (Decision, bool) {
	if len(s.Body) < 2 {
		return Decision{}, false
	}
	path := findPath(newBoard(s.Grid, s.Body, 0), s.Head(), s.Tail())
	if len(path) == 0 {
		return Decision{}, false
	}
	// A length-2 snake's tail is also its neck; the direct one-step
	// route would be an illegal reversal.
	if path[0] == s.Body[1] {
		return Decision{}, false
	}
	return Decision{Move: types.Delta(s.Head(), path[0]), Path: path}, true
}

// yolo takes the direct food route without safety verification. It only
// runs once tail-chasing has already failed, so there is no safer
// alternative left; the gamble is the point.
func (e *Engine) yolo(s State) (Decision, bool) {
	if !s.HasFood {
		return Decision{}, false
	}
	path := findPath(newBoard(s.Grid, s.Body, 1), s.Head(), s.Food)
	if len(path) == 0 {
		return Decision{}, false
	}
	move := types.Delta(s.Head(), path[0])
	if len(s.Body) > 1 && path[0] == s.Body[1] {
		return Decision{}, false
	}
	return Decision{Move: move, Path: path}, true
}

// fallback emits any legal move as a last resort, preferring the one
// whose destination has the most open neighbors. Ties go to the fixed
// direction priority order.
func (e *Engine) fallback(s State) (Decision, bool) {
	head := s.Head()
	b := newBoard(s.Grid, s.Body, 1)

	bestCount := -1
	var best Decision
	for _, d := range types.Directions {
		next := head.Add(d.ToPoint())
		if len(s.Body) > 1 && next == s.Body[1] {
			continue
		}
		if b.isObstacle(next) {
			continue
		}
		if count := b.openNeighborCount(next); count > bestCount {
			bestCount = count
			best = Decision{Move: d}
		}
	}
	return best, bestCount >= 0
}
