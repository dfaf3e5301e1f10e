package types

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Add returns the point translated by the given delta.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions.
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether the point lies inside the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Direction represents a cardinal movement direction.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Directions lists the four cardinal directions in the fixed priority
// order used wherever a tie must be broken deterministically.
var Directions = [4]Direction{Up, Right, Down, Left}

// ToPoint converts a Direction into a unit displacement vector.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Delta returns the direction that moves from a to b, or None when the
// two points are not 4-adjacent.
func Delta(a, b Point) Direction {
	for _, d := range Directions {
		if a.Add(d.ToPoint()) == b {
			return d
		}
	}
	return None
}

// ManhattanDistance returns |dx| + |dy| between two points.
func ManhattanDistance(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
