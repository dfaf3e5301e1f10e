// Package game holds the authoritative board state and the step
// mechanics that advance it. The AI engine never touches this package;
// it receives a read-only snapshot each tick and hands back a move.
package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/darshanrk18/ai-snake/game/types"
)

// CollisionType represents the kind of collision that ended a game.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Game is the state of a single snake game session.
type Game struct {
	UUID string
	Grid types.Grid

	// Body holds the snake cells, head first, tail last.
	Body      []types.Point
	Direction types.Direction

	Food    types.Point
	HasFood bool

	Score    int
	Steps    int
	GameOver bool
	Win      bool
	// JustAte is true for exactly one tick after food is consumed.
	JustAte bool

	LastCollision CollisionType
	StartTime     time.Time

	rng *rand.Rand
}

// NewGame creates a game on a width x height grid. A non-zero seed
// makes food placement, and therefore the whole session, reproducible.
func NewGame(width, height int, seed uint64) *Game {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := &Game{
		UUID: uuid.New().String(),
		Grid: types.Grid{Width: width, Height: height},
		rng:  rand.New(rand.NewSource(seed)),
	}
	g.Reset()
	return g
}

// Reset starts a fresh game: a three-segment snake centered on the
// board facing right, new food, zeroed score.
func (g *Game) Reset() {
	mid := types.Point{X: g.Grid.Width / 2, Y: g.Grid.Height / 2}
	length := 3
	if mid.X+1 < length {
		length = mid.X + 1
	}
	g.Body = g.Body[:0]
	for i := 0; i < length; i++ {
		g.Body = append(g.Body, types.Point{X: mid.X - i, Y: mid.Y})
	}
	g.Direction = types.Right
	g.Score = 0
	g.Steps = 0
	g.GameOver = false
	g.Win = false
	g.JustAte = false
	g.LastCollision = NoCollision
	g.StartTime = time.Now()
	g.spawnFood()
}

// Head returns the snake's head cell.
func (g *Game) Head() types.Point {
	return g.Body[0]
}

// Tail returns the snake's tail cell.
func (g *Game) Tail() types.Point {
	return g.Body[len(g.Body)-1]
}

// onBody reports whether the cell is occupied by any snake segment.
func (g *Game) onBody(p types.Point) bool {
	for _, c := range g.Body {
		if c == p {
			return true
		}
	}
	return false
}

// spawnFood places food on a uniformly chosen free cell. When no free
// cell remains the board is full and the game is won.
func (g *Game) spawnFood() {
	free := make([]types.Point, 0, g.Grid.Width*g.Grid.Height-len(g.Body))
	for y := 0; y < g.Grid.Height; y++ {
		for x := 0; x < g.Grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !g.onBody(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.HasFood = false
		g.GameOver = true
		g.Win = true
		return
	}
	g.Food = free[g.rng.Intn(len(free))]
	g.HasFood = true
}

// Step advances the game by one tick in the given direction. A request
// to reverse straight into the neck is ignored and the snake keeps its
// current heading. Moving onto the tail cell is legal unless the snake
// is eating this tick, because the tail vacates on a non-growing step.
func (g *Game) Step(dir types.Direction) {
	if g.GameOver {
		return
	}
	if dir == types.None {
		dir = g.Direction
	}
	if len(g.Body) > 1 && g.Head().Add(dir.ToPoint()) == g.Body[1] {
		dir = g.Direction
	}

	newHead := g.Head().Add(dir.ToPoint())
	g.Direction = dir
	g.Steps++
	g.JustAte = false

	willEat := g.HasFood && newHead == g.Food
	steppingOnTail := newHead == g.Tail()

	if !g.Grid.Contains(newHead) {
		g.GameOver = true
		g.LastCollision = WallCollision
		return
	}
	if g.onBody(newHead) && !(steppingOnTail && !willEat) {
		g.GameOver = true
		g.LastCollision = SelfCollision
		return
	}

	g.Body = append(g.Body, types.Point{})
	copy(g.Body[1:], g.Body)
	g.Body[0] = newHead

	if willEat {
		g.Score++
		g.JustAte = true
		g.spawnFood()
	} else {
		g.Body = g.Body[:len(g.Body)-1]
	}
}

// ElapsedTime returns the session duration in seconds.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}
