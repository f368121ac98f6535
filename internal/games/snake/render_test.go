package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/golden-snake/internal/core"
)

func TestBoardSize(t *testing.T) {
	w, h := BoardSize(testGrid)
	if w != 66 || h != 27 {
		t.Errorf("BoardSize() = %dx%d, expected 66x27", w, h)
	}
}

func TestHUD(t *testing.T) {
	tests := []struct {
		name string
		f    Frame
		want string
	}{
		{"plain", Frame{Score: 7, Elapsed: 42}, "Apples: 7  Time: 42s"},
		{"golden", Frame{Score: 1, Elapsed: 3, GoldenRemaining: 4, ShowGoldenRemaining: true}, "Apples: 1  Time: 3s  Golden: 4s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.HUD(); got != tt.want {
				t.Errorf("HUD() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestRenderBoard(t *testing.T) {
	g, _ := newTestGame(t, nil)
	place(g, core.DirRight, pt(0, 0), pt(620, 0))
	g.apple.Pos = pt(40, 20)

	scr := core.NewScreen(80, 32)
	g.Render(scr)

	originX := (80 - 66) / 2
	if !strings.HasPrefix(scr.Row(0)[originX:], "Apples: 0  Time: 0s") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if c := scr.GetCell(originX, 1); c.Rune != '┌' || c.Color != ColorBorder {
		t.Errorf("border corner = %+v", c)
	}

	head := scr.GetCell(originX+1, 2)
	if head.Rune != '▓' || head.Color != ColorSnake {
		t.Errorf("head cell = %+v, expected green '▓'", head)
	}
	tail := scr.GetCell(originX+1+31*cellColumns, 2)
	if tail.Rune != '█' {
		t.Errorf("tail cell = %+v, expected '█'", tail)
	}
	apple := scr.GetCell(originX+1+2*cellColumns, 3)
	if apple.Rune != '(' || apple.Color != ColorApple {
		t.Errorf("apple cell = %+v, expected red '('", apple)
	}
}

func TestRenderGolden(t *testing.T) {
	g, clock := newTestGame(t, nil)
	place(g, core.DirRight, pt(0, 0))
	g.apple.Pos = pt(0, 460)
	spawnGoldenAt(t, g, clock, pt(100, 100))

	scr := core.NewScreen(80, 32)
	originX := (80 - 66) / 2
	cellX, cellY := originX+1+5*cellColumns, 2+5

	g.Render(scr)
	if c := scr.GetCell(cellX, cellY); c.Rune != '<' || c.Color != ColorGolden {
		t.Errorf("golden cell = %+v, expected gold '<'", c)
	}
	if !strings.Contains(scr.Row(0), "Golden: 6s") {
		t.Errorf("HUD should show the countdown, got %q", scr.Row(0))
	}

	clock.Advance(2 * time.Second)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "Golden: 4s") {
		t.Errorf("HUD = %q, expected 4s left", scr.Row(0))
	}

	g.golden.blinkState = true
	clock.Advance(3 * time.Second)
	g.Render(scr)
	if c := scr.GetCell(cellX, cellY); c.Rune == '<' {
		t.Error("golden apple should be hidden during the blink off phase")
	}

	g.golden.Consume()
	g.Render(scr)
	if strings.Contains(scr.Row(0), "Golden") {
		t.Errorf("HUD should drop the countdown once the apple is gone, got %q", scr.Row(0))
	}
}

func TestRenderGameOver(t *testing.T) {
	tests := []struct {
		name     string
		victory  bool
		headline string
		color    core.Color
	}{
		{"loss", false, "Game over, try again!", ColorApple},
		{"victory", true, "Congratulations! You passed the game!", ColorSnake},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, clock := newTestGame(t, nil)
			place(g, core.DirRight, pt(0, 0))
			g.snake.score = 5
			clock.Advance(12 * time.Second)
			g.snake.Finish(clock.Now(), tt.victory)

			scr := core.NewScreen(80, 32)
			g.Render(scr)
			out := scr.String()

			for _, want := range []string{tt.headline, "Apples: 5", "Time: 12 seconds", RestartHint} {
				if !strings.Contains(out, want) {
					t.Errorf("screen should contain %q:\n%s", want, out)
				}
			}

			for y := 0; y < scr.Height(); y++ {
				row := scr.Row(y)
				x := strings.Index(row, tt.headline)
				if x < 0 {
					continue
				}
				x = len([]rune(row[:x]))
				if c := scr.GetCell(x, y); c.Color != tt.color {
					t.Errorf("headline color = %v, expected %v", c.Color, tt.color)
				}
				return
			}
			t.Error("headline row not found")
		})
	}
}

func TestRenderWindowTooSmall(t *testing.T) {
	g, _ := newTestGame(t, nil)
	scr := core.NewScreen(40, 12)
	g.Render(scr)

	out := scr.String()
	if !strings.Contains(out, "Window too small") || !strings.Contains(out, "66x27") {
		t.Errorf("expected resize hint:\n%s", out)
	}
}
