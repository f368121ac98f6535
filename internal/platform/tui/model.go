package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/golden-snake/internal/core"
	"github.com/vovakirdan/golden-snake/internal/registry"
)

// helpHeight is the number of lines reserved below the game for key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options tunes the Bubble Tea model.
type Options struct {
	TickRate int         // Simulation ticks per second
	Logger   *log.Logger // Receives game events; nil discards them
}

// Model is the Bubble Tea model that drives a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	tickRate  int
	input     core.InputFrame
	state     core.GameState
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a model for the given game. The screen height excludes
// the help footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 20
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		tickRate:  opts.TickRate,
		input:     core.NewInputFrame(),
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      h,
		logger:    logger,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.tickRate)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the mapped action until the next tick. Several keys
// between two ticks are applied in arrival order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.input) {
		m.logger.Info("quit", "score", m.state.Score)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the screen buffer. The running session is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	}
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick steps the simulation with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.state = result.State
	m.logEvents(result)

	m.input.Clear()

	return m, tickCmd(m.tickRate)
}

func (m Model) logEvents(r core.StepResult) {
	for _, ev := range r.Events {
		switch ev {
		case core.EventGameOver, core.EventVictory:
			m.logger.Info("round finished", "event", ev, "score", r.State.Score)
		case core.EventRestart:
			m.logger.Info("round restarted")
		default:
			m.logger.Debug("game event", "event", ev, "score", r.State.Score)
		}
	}
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for the game and blocks until it quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
