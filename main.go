package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/darshanrk18/ai-snake/ai"
	"github.com/darshanrk18/ai-snake/game"
	"github.com/darshanrk18/ai-snake/game/stats"
	"github.com/darshanrk18/ai-snake/game/types"
	"github.com/darshanrk18/ai-snake/ui"
)

func main() {
	speed := flag.Int("speed", 80, "Game speed in milliseconds per tick (lower = faster)")
	width := flag.Int("width", 30, "Grid width in cells")
	height := flag.Int("height", 20, "Grid height in cells")
	auto := flag.Bool("auto", true, "Start with the AI driving")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = random)")
	flag.Parse()

	g := game.NewGame(*width, *height, *seed)
	engine := ai.New(ai.DefaultConfig())
	history := stats.NewGameStats()

	rl.InitWindow(1280, 800, "Snake AI")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()
	updateInterval := time.Duration(*speed) * time.Millisecond

	driving := *auto
	paused := false
	showPath := true
	recorded := false
	manualDir := g.Direction
	var lastDecision ai.Decision

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
			break
		}
		if rl.IsKeyPressed(rl.KeyA) {
			driving = !driving
			manualDir = g.Direction
		}
		if rl.IsKeyPressed(rl.KeyP) {
			showPath = !showPath
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyR) {
			recordIfOver(history, g, &recorded)
			g.Reset()
			engine.Reset()
			manualDir = g.Direction
			lastDecision = ai.Decision{}
			recorded = false
		}

		switch {
		case rl.IsKeyPressed(rl.KeyUp):
			manualDir = types.Up
		case rl.IsKeyPressed(rl.KeyRight):
			manualDir = types.Right
		case rl.IsKeyPressed(rl.KeyDown):
			manualDir = types.Down
		case rl.IsKeyPressed(rl.KeyLeft):
			manualDir = types.Left
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		if !paused && !g.GameOver && time.Since(lastUpdate) >= updateInterval {
			if driving {
				d, err := engine.Decide(snapshot(g))
				switch {
				case err == nil:
					lastDecision = d
					g.Step(d.Move)
				case errors.Is(err, ai.ErrUnavoidableLoss):
					// Every move loses; take the current heading and let
					// the game end.
					lastDecision = ai.Decision{}
					g.Step(g.Direction)
				default:
					fmt.Fprintf(os.Stderr, "engine: %v\n", err)
					g.Step(g.Direction)
				}
			} else {
				g.Step(manualDir)
				manualDir = g.Direction
			}
			lastUpdate = time.Now()
		}

		if g.GameOver {
			recordIfOver(history, g, &recorded)
		}

		hud := ui.HUD{
			Auto:   driving,
			Paused: paused,
			Stats:  history,
		}
		if driving && lastDecision.Move != types.None {
			hud.Tier = lastDecision.Tier.String()
			if showPath {
				hud.Path = lastDecision.Path
			}
		}
		renderer.Draw(g, hud)
	}

	recordIfOver(history, g, &recorded)
	if err := history.SaveToFile(); err != nil {
		fmt.Fprintf(os.Stderr, "stats: %v\n", err)
	}
	if err := history.SaveSession(g.UUID); err != nil {
		fmt.Fprintf(os.Stderr, "stats: %v\n", err)
	}
}

// snapshot copies the mutable game state into the read-only view the
// engine works on.
func snapshot(g *game.Game) ai.State {
	body := make([]types.Point, len(g.Body))
	copy(body, g.Body)
	return ai.State{
		Grid:    g.Grid,
		Body:    body,
		Food:    g.Food,
		HasFood: g.HasFood,
		JustAte: g.JustAte,
	}
}

// recordIfOver adds a finished game to the history exactly once.
func recordIfOver(history *stats.GameStats, g *game.Game, recorded *bool) {
	if !g.GameOver || *recorded {
		return
	}
	outcome := g.LastCollision.String()
	if g.Win {
		outcome = "win"
	}
	history.AddGame(stats.Record{
		SessionID: g.UUID,
		StartTime: g.StartTime,
		EndTime:   time.Now(),
		Score:     g.Score,
		Steps:     g.Steps,
		Outcome:   outcome,
	})
	*recorded = true
}
