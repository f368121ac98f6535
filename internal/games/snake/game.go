// Package snake implements the classic snake: a snake on a wrap-around grid
// that grows by eating apples, with a timed golden apple worth more.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/golden-snake/internal/config"
	"github.com/vovakirdan/golden-snake/internal/core"
	"github.com/vovakirdan/golden-snake/internal/registry"
)

// GameID is the registry identifier of the snake game.
const GameID = "snake"

// Game ties the snake, the apples and the golden apple spawn policy into a
// fixed-tick session. It is the only component that makes timing decisions
// across entities.
type Game struct {
	cfg   config.SnakeConfig
	grid  core.Grid
	clock core.Clock
	rng   *rand.Rand
	tick  uint64

	snake  *Snake
	apple  Apple
	golden *GoldenApple

	// Golden apple spawn cooldown. Survives restarts.
	lastGoldenSpawn time.Time
	goldenAttempted bool

	screenW int
	screenH int
}

// Option configures a Game.
type Option func(*Game)

// WithClock injects the time source used for every timer.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithConfig overrides the constants table.
func WithConfig(cfg config.SnakeConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// New creates a snake game. Reset must be called before Step.
func New(opts ...Option) *Game {
	// Load falls back to the built-in constants on error; the command
	// layer reports that failure before passing its config with WithConfig.
	cfg, _ := config.Load()
	g := &Game{
		cfg:   cfg,
		clock: core.SystemClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.grid = core.NewGrid(g.cfg.Board.Width, g.cfg.Board.Height, g.cfg.Board.CellSize)
	return g
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Config returns the constants the game runs with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Grid returns the board geometry.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Reset starts a fresh session: new snake, new apple, dormant golden apple
// and a cleared spawn cooldown.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	now := g.clock.Now()
	g.snake = NewSnake(g.grid.Center(), g.rng, now)
	g.golden = NewGoldenApple(g.grid, g.cfg.Golden)
	g.lastGoldenSpawn = time.Time{}
	g.goldenAttempted = false
	g.relocateApple()
}

// Resize records a new terminal size. The session is not affected.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the session by one tick: input, golden apple spawn and
// update, snake movement, then eating and terminal checks.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	now := g.clock.Now()
	var events []core.Event

	for _, a := range input.Actions {
		if a == core.ActionRestart {
			if g.restart(now) {
				events = append(events, core.EventRestart)
			}
			continue
		}
		if d, ok := a.Direction(); ok {
			g.snake.RequestDirection(d)
		}
	}

	if g.shouldSpawnGolden(now) {
		taken := occupied(g.snake.body, []core.Point{g.apple.Pos})
		if err := g.golden.Spawn(g.rng, taken, g.cfg.Apple.MaxSamples, now); err != nil {
			events = append(events, core.EventGoldenSkipped)
		} else {
			events = append(events, core.EventGoldenSpawned)
		}
		g.lastGoldenSpawn = now
		g.goldenAttempted = true
	}

	if g.golden.Update(now) {
		events = append(events, core.EventGoldenExpired)
	}

	if !g.snake.GameOver() {
		events = g.advance(now, events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// restart resets the snake if the game is over. The apples and the golden
// apple cooldown carry over into the new round. An apple parked off the
// board after a victory, or sitting on the new snake, is placed again.
func (g *Game) restart(now time.Time) bool {
	if !g.snake.GameOver() {
		return false
	}
	g.snake.Reset(g.grid.Center(), g.rng, now)
	if !g.grid.Contains(g.apple.Pos) || occupied(g.snake.body).has(g.apple.Pos) {
		g.relocateApple()
	}
	return true
}

// shouldSpawnGolden applies the spawn policy. The random draw is only taken
// once every other condition holds.
func (g *Game) shouldSpawnGolden(now time.Time) bool {
	if g.snake.GameOver() || g.golden.Active() {
		return false
	}
	if g.goldenAttempted && now.Sub(g.lastGoldenSpawn) <= g.cfg.Golden.SpawnCooldown {
		return false
	}
	return g.rng.Float64() < g.cfg.Golden.SpawnChance
}

// advance moves the snake and resolves what the new head touches.
func (g *Game) advance(now time.Time, events []core.Event) []core.Event {
	g.snake.Tick(g.grid)
	head := g.snake.Head()

	if head == g.apple.Pos {
		g.snake.Feed(g.cfg.Apple.Growth, g.cfg.Apple.Points)
		g.relocateApple()
		events = append(events, core.EventAppleEaten)
	}

	if g.golden.Active() && head == g.golden.Position() {
		g.snake.Feed(g.cfg.Golden.Growth, g.cfg.Golden.Points)
		g.golden.Consume()
		events = append(events, core.EventGoldenEaten)
	}

	// Filling the board wins even if the head also lands on the body in the
	// same tick. Finish keeps the first outcome.
	if g.snake.Len() == g.grid.Cells() {
		g.snake.Finish(now, true)
		events = append(events, core.EventVictory)
	} else if g.snake.HitsItself() {
		g.snake.Finish(now, false)
		events = append(events, core.EventGameOver)
	}

	return events
}

// relocateApple moves the apple off the snake. Running out of cells is only
// legitimate when the snake covers the whole board.
func (g *Game) relocateApple() {
	err := g.apple.Relocate(g.rng, g.grid, occupied(g.snake.body), g.cfg.Apple.MaxSamples)
	if err != nil && g.snake.Len() < g.grid.Cells() {
		panic(fmt.Sprintf("snake: apple placement failed with %d of %d cells taken: %v",
			g.snake.Len(), g.grid.Cells(), err))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snake.Score(),
		GameOver: g.snake.GameOver(),
		Victory:  g.snake.Victory(),
	}
}

// Elapsed returns whole seconds played in the current round.
func (g *Game) Elapsed() int {
	return g.snake.Elapsed(g.clock.Now())
}
