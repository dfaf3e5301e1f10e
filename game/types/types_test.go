package types

import "testing"

func TestDirectionToPointRoundTrip(t *testing.T) {
	for _, d := range Directions {
		if got := Delta(Point{X: 3, Y: 3}, Point{X: 3, Y: 3}.Add(d.ToPoint())); got != d {
			t.Errorf("Delta after %v move = %v", d, got)
		}
	}
	if got := Delta(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}); got != None {
		t.Errorf("Delta between non-adjacent cells = %v, want None", got)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
		None:  None,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 4, Height: 3}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{X: 0, Y: 0}, true},
		{Point{X: 3, Y: 2}, true},
		{Point{X: 4, Y: 0}, false},
		{Point{X: 0, Y: 3}, false},
		{Point{X: -1, Y: 1}, false},
	}
	for _, tc := range tests {
		if got := g.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestManhattanDistance(t *testing.T) {
	if got := ManhattanDistance(Point{X: 1, Y: 2}, Point{X: 4, Y: 0}); got != 5 {
		t.Errorf("ManhattanDistance = %d, want 5", got)
	}
}
