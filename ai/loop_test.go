package ai

import (
	"testing"

	"github.com/darshanrk18/ai-snake/game/types"
)

func TestLoopDetectorEscalatesOnCycle(t *testing.T) {
	l := newLoopDetector(24, 1)
	cycle := []types.Point{
		{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3},
	}

	// First lap visits fresh cells only.
	for i, p := range cycle {
		if l.recordAndCheck(p) {
			t.Fatalf("escalated on first visit of cell %d", i)
		}
	}
	// Second lap revisits and must escalate on its first step, well
	// within one window length.
	if !l.recordAndCheck(cycle[0]) {
		t.Fatal("expected escalation when the cycle repeats")
	}
}

func TestLoopDetectorIgnoresMonotonicProgress(t *testing.T) {
	l := newLoopDetector(8, 1)
	for x := 0; x < 50; x++ {
		head := types.Point{X: x, Y: 0}
		if l.recordAndCheck(head) {
			t.Fatalf("escalated at step %d despite monotonic progress", x)
		}
	}
}

func TestLoopDetectorWindowEviction(t *testing.T) {
	l := newLoopDetector(4, 1)
	for x := 0; x < 5; x++ {
		l.recordAndCheck(types.Point{X: x, Y: 0})
	}
	// (0,0) was evicted, so revisiting it is not a repeat.
	if l.recordAndCheck(types.Point{X: 0, Y: 0}) {
		t.Fatal("escalated on a position outside the window")
	}
}

func TestLoopDetectorReset(t *testing.T) {
	l := newLoopDetector(8, 1)
	head := types.Point{X: 1, Y: 1}
	l.recordAndCheck(head)
	l.reset()
	if l.recordAndCheck(head) {
		t.Fatal("escalated after reset cleared the history")
	}
}

func TestLoopDetectorRepeatThreshold(t *testing.T) {
	l := newLoopDetector(16, 2)
	head := types.Point{X: 0, Y: 0}
	if l.recordAndCheck(head) {
		t.Fatal("first visit escalated")
	}
	if l.recordAndCheck(head) {
		t.Fatal("second visit escalated below threshold 2")
	}
	if !l.recordAndCheck(head) {
		t.Fatal("third visit should escalate at threshold 2")
	}
}
