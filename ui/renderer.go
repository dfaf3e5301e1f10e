package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/darshanrk18/ai-snake/game"
	"github.com/darshanrk18/ai-snake/game/stats"
	"github.com/darshanrk18/ai-snake/game/types"
)

const (
	borderPadding = 10 // Padding around game area
)

// HUD carries the per-tick overlay data the renderer cannot read from
// the game itself: the engine's chosen plan and the control flags.
type HUD struct {
	Tier   string
	Path   []types.Point
	Auto   bool
	Paused bool
	Stats  *stats.GameStats
}

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a fixed share of the window width.
	r.statsPanel = r.screenWidth / 5

	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) Draw(g *game.Game, hud HUD) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/40, r.statsPanel/10)
	lineHeight := fontSize + fontSize/3

	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)

	cellW := availableWidth / int32(g.Grid.Width)
	cellH := availableHeight / int32(g.Grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(g.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(g.Grid.Height)

	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	// Grid background
	rl.DrawRectangle(
		r.offsetX-1,
		r.offsetY-1,
		r.totalGridWidth+2,
		r.totalGridHeight+2,
		rl.DarkGray)

	// Grid lines
	for x := 0; x < g.Grid.Width; x++ {
		for y := 0; y < g.Grid.Height; y++ {
			rl.DrawRectangleLines(
				r.offsetX+int32(x)*r.cellSize,
				r.offsetY+int32(y)*r.cellSize,
				r.cellSize, r.cellSize, rl.Gray)
		}
	}

	// Planned path, under the snake so the body stays readable.
	for _, p := range hud.Path {
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize,
			r.offsetY+int32(p.Y)*r.cellSize,
			r.cellSize, r.cellSize,
			rl.Color{R: 0, G: 120, B: 200, A: 90})
	}

	r.drawSnake(g)

	if g.HasFood {
		rl.DrawRectangle(
			r.offsetX+int32(g.Food.X)*r.cellSize,
			r.offsetY+int32(g.Food.Y)*r.cellSize,
			r.cellSize, r.cellSize, rl.Red)
	}

	r.drawStatsPanel(g, hud, fontSize, lineHeight)
	r.drawBanners(g, fontSize)

	rl.EndDrawing()
}

func (r *Renderer) drawSnake(g *game.Game) {
	for i, p := range g.Body {
		color := rl.Green
		if i == 0 { // Head
			color = rl.Color{R: 120, G: 255, B: 120, A: 255}
		}
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize,
			r.offsetY+int32(p.Y)*r.cellSize,
			r.cellSize, r.cellSize, color)
	}

	// Direction indicator on the head.
	head := g.Head()
	headX := r.offsetX + int32(head.X)*r.cellSize
	headY := r.offsetY + int32(head.Y)*r.cellSize
	halfCell := r.cellSize / 2
	switch g.Direction {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel(g *game.Game, hud HUD, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	mode := "Manual"
	if hud.Auto {
		mode = "Auto"
	}
	if hud.Paused {
		mode += " (paused)"
	}
	rl.DrawText(mode, statsX, statsY, fontSize, rl.Yellow)
	statsY += lineHeight * 2

	rl.DrawText(fmt.Sprintf("Score: %d", g.Score), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Length: %d", len(g.Body)), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Steps: %d", g.Steps), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight

	duration := time.Duration(g.ElapsedTime() * float64(time.Second))
	minutes := int(duration.Minutes())
	seconds := int(duration.Seconds()) % 60
	rl.DrawText(fmt.Sprintf("Time: %02d:%02d", minutes, seconds), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight * 2

	if hud.Auto && hud.Tier != "" {
		rl.DrawText("Strategy:", statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
		rl.DrawText(hud.Tier, statsX+10, statsY, fontSize, rl.SkyBlue)
		statsY += lineHeight * 2
	}

	if hud.Stats != nil {
		rl.DrawText("All-Time:", statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
		rl.DrawText(fmt.Sprintf("High: %d", hud.Stats.HighScore()), statsX+10, statsY, fontSize, rl.White)
		statsY += lineHeight
		rl.DrawText(fmt.Sprintf("Games: %d", hud.Stats.GamesPlayed()), statsX+10, statsY, fontSize, rl.White)
		statsY += lineHeight
		rl.DrawText(fmt.Sprintf("Avg: %.2f", hud.Stats.AverageScore()), statsX+10, statsY, fontSize, rl.White)
		statsY += lineHeight * 2
	}

	rl.DrawText("A: toggle auto", statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText("P: toggle path", statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText("Space: pause", statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText("R: restart", statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText("Q: quit", statsX, statsY, fontSize, rl.LightGray)
}

func (r *Renderer) drawBanners(g *game.Game, fontSize int32) {
	if !g.GameOver {
		return
	}

	bannerFont := fontSize * 2
	var text string
	if g.Win {
		text = "You Win! Press R to restart"
	} else {
		text = fmt.Sprintf("Game Over (%s)! Press R to restart", g.LastCollision)
	}
	textWidth := rl.MeasureText(text, bannerFont)
	rl.DrawText(text,
		r.offsetX+(r.totalGridWidth-textWidth)/2,
		r.offsetY+r.totalGridHeight/2,
		bannerFont, rl.Yellow)
}
