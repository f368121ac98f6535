package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/golden-snake/internal/core"
)

// RestartHint is shown under the game-over message.
const RestartHint = "Press R to restart"

// Frame is everything the renderer needs for one tick. It is a copy and
// stays valid after the game moves on.
type Frame struct {
	Tick uint64
	Grid core.Grid

	Snake     []core.Point // Head first
	Direction core.Direction
	Apple     core.Point

	Golden              core.Point
	GoldenState         GoldenState
	GoldenVisible       bool
	GoldenRemaining     int // Whole seconds left before expiry
	ShowGoldenRemaining bool

	Score   int
	Elapsed int // Whole seconds

	GameOver     bool
	Victory      bool
	Message      []string // Empty while playing
	MessageColor core.Color

	Sprites []Sprite // In draw order
}

// Frame captures the current state for the renderer.
func (g *Game) Frame() Frame {
	now := g.clock.Now()

	f := Frame{
		Tick:          g.tick,
		Grid:          g.grid,
		Snake:         g.snake.Body(),
		Direction:     g.snake.Direction(),
		Apple:         g.apple.Pos,
		Golden:        g.golden.Position(),
		GoldenState:   g.golden.State(now),
		GoldenVisible: g.golden.Visible(now),
		Score:         g.snake.Score(),
		Elapsed:       g.snake.Elapsed(now),
		GameOver:      g.snake.GameOver(),
		Victory:       g.snake.Victory(),
	}

	if left, ok := g.golden.Remaining(now); ok {
		f.GoldenRemaining = int(left / time.Second)
		f.ShowGoldenRemaining = true
	}

	if f.GameOver {
		headline := "Game over, try again!"
		f.MessageColor = ColorApple
		if f.Victory {
			headline = "Congratulations! You passed the game!"
			f.MessageColor = ColorSnake
		}
		f.Message = []string{
			headline,
			fmt.Sprintf("Apples: %d", f.Score),
			fmt.Sprintf("Time: %d seconds", f.Elapsed),
		}
	}

	f.Sprites = append(f.Sprites, g.snake.Sprites()...)
	f.Sprites = append(f.Sprites, g.apple.Sprite())
	if f.GoldenVisible {
		f.Sprites = append(f.Sprites, g.golden.Sprite())
	}

	return f
}

// HUD returns the status line: apples, time and the golden apple countdown.
func (f Frame) HUD() string {
	hud := fmt.Sprintf("Apples: %d  Time: %ds", f.Score, f.Elapsed)
	if f.ShowGoldenRemaining {
		hud += fmt.Sprintf("  Golden: %ds", f.GoldenRemaining)
	}
	return hud
}
