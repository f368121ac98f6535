package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/golden-snake/internal/core"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets  []core.RuntimeConfig
	inputs  [][]core.Action
	resized [2]int
	result  core.StepResult
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone().Actions)
	return g.result
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake", core.ColorGreen)
}

func (g *fakeGame) State() core.GameState {
	return g.result.State
}

func (g *fakeGame) Resize(w, h int) {
	g.resized = [2]int{w, h}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelInit(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 32, Seed: 9}, Options{TickRate: 20})

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	if len(g.resets) != 1 {
		t.Fatalf("Init should reset the game once, got %d", len(g.resets))
	}
	if got := g.resets[0]; got.Seed != 9 || got.ScreenH != 31 {
		t.Errorf("Reset config = %+v, expected seed 9 and height 31", got)
	}
}

func TestModelTimeSeed(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 32}, Options{})
	m.Init()
	if g.resets[0].Seed == 0 {
		t.Error("a zero seed should be replaced by a time based one")
	}
}

func TestModelQueuesKeysUntilTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 32, Seed: 1}, Options{TickRate: 20})
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if len(g.inputs) != 0 {
		t.Fatal("keys must not step the game")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.inputs) != 1 {
		t.Fatalf("expected one step, got %d", len(g.inputs))
	}
	got := g.inputs[0]
	if len(got) != 2 || got[0] != core.ActionUp || got[1] != core.ActionLeft {
		t.Errorf("step input = %v, expected [up left]", got)
	}

	update(t, m, TickMsg{})
	if len(g.inputs[1]) != 0 {
		t.Errorf("input should be cleared after a tick, got %v", g.inputs[1])
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 32, Seed: 1}, Options{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 32, Seed: 1}, Options{})
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
	if g.resized != [2]int{100, 39} {
		t.Errorf("game resized to %v, expected [100 39]", g.resized)
	}
	if len(g.resets) != 1 {
		t.Error("resize must not reset the session")
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 160, ScreenH: 5, Seed: 1}, Options{})

	out := m.View()
	if !strings.Contains(out, "fake") {
		t.Error("View should contain the game render")
	}
	if !strings.Contains(out, "restart") || !strings.Contains(out, "quit") {
		t.Errorf("View should contain the key help:\n%s", out)
	}
}

func TestModelLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	g := &fakeGame{result: core.StepResult{
		State:  core.GameState{Score: 3, GameOver: true},
		Events: []core.Event{core.EventGoldenEaten, core.EventGameOver},
	}}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 32, Seed: 1}, Options{Logger: logger})

	m, _ = update(t, m, TickMsg{})
	out := buf.String()
	for _, want := range []string{"golden_eaten", "round finished", "game_over"} {
		if !strings.Contains(out, want) {
			t.Errorf("log should contain %q:\n%s", want, out)
		}
	}
	if !m.State().GameOver {
		t.Error("model should track the last state")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xy", core.ColorGold)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xy"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q: %q", want, out)
		}
	}
}
