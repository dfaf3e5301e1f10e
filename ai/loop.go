package ai

import "github.com/darshanrk18/ai-snake/game/types"

// loopDetector keeps a bounded window of recent head positions and
// signals when the snake is orbiting without making progress. History
// survives escalation so the engine keeps observing, but is cleared when
// food is eaten or the game resets.
type loopDetector struct {
	window  int
	repeats int
	history []types.Point
}

func newLoopDetector(window, repeats int) *loopDetector {
	return &loopDetector{
		window:  window,
		repeats: repeats,
		history: make([]types.Point, 0, window),
	}
}

// recordAndCheck pushes the current head position into the window and
// reports whether the engine should escalate: true when the head has
// already been seen at least `repeats` times within the window.
func (l *loopDetector) recordAndCheck(head types.Point) bool {
	seen := 0
	for _, p := range l.history {
		if p == head {
			seen++
		}
	}
	l.history = append(l.history, head)
	if len(l.history) > l.window {
		l.history = l.history[1:]
	}
	return seen >= l.repeats
}

// reset clears the window. Called when food is consumed or the game
// restarts.
func (l *loopDetector) reset() {
	l.history = l.history[:0]
}
