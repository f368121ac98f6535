package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/golden-snake/internal/config"
	"github.com/vovakirdan/golden-snake/internal/core"
)

// GoldenState is the phase of the golden apple.
type GoldenState int

const (
	GoldenDormant  GoldenState = iota // Off the board
	GoldenVisible                     // Active, steady
	GoldenBlinking                    // Active, about to expire
)

func (s GoldenState) String() string {
	switch s {
	case GoldenDormant:
		return "dormant"
	case GoldenVisible:
		return "visible"
	case GoldenBlinking:
		return "blinking"
	default:
		return "unknown"
	}
}

// GoldenApple is the timed bonus item. It exists for the whole session but
// is only on the board while active. The blink toggles every BlinkEvery
// updates, so its rhythm follows the tick rate rather than the clock.
type GoldenApple struct {
	cfg  config.GoldenConfig
	grid core.Grid

	pos        core.Point
	active     bool
	spawnTime  time.Time
	blinkState bool // true = hidden half of the blink cycle
	blinkTimer int
}

// NewGoldenApple creates a dormant golden apple.
func NewGoldenApple(grid core.Grid, cfg config.GoldenConfig) *GoldenApple {
	return &GoldenApple{
		cfg:  cfg,
		grid: grid,
		pos:  grid.OffBoard(),
	}
}

// Spawn activates the apple on a free cell and starts its timer.
// The apple stays dormant if no cell is free.
func (g *GoldenApple) Spawn(rng *rand.Rand, taken occupancy, maxSamples int, now time.Time) error {
	p, err := placeApple(rng, g.grid, taken, maxSamples)
	if err != nil {
		return err
	}
	g.pos = p
	g.spawnTime = now
	g.active = true
	g.blinkState = false
	g.blinkTimer = 0
	return nil
}

// Update advances the blink counter and expires the apple once its time is up.
// Returns true on the update that expired it.
func (g *GoldenApple) Update(now time.Time) bool {
	if !g.active {
		return false
	}

	elapsed := now.Sub(g.spawnTime)
	if elapsed > g.cfg.BlinkAfter {
		g.blinkTimer++
		if g.blinkTimer >= g.cfg.BlinkEvery {
			g.blinkState = !g.blinkState
			g.blinkTimer = 0
		}
	}

	if elapsed > g.cfg.ExpireAfter {
		g.deactivate()
		return true
	}
	return false
}

// Consume deactivates the apple immediately, bypassing the timer.
func (g *GoldenApple) Consume() {
	g.deactivate()
}

func (g *GoldenApple) deactivate() {
	g.active = false
	g.pos = g.grid.OffBoard()
}

// Active reports whether the apple is on the board.
func (g *GoldenApple) Active() bool {
	return g.active
}

// Position returns the apple's cell, or the off-board sentinel while dormant.
func (g *GoldenApple) Position() core.Point {
	return g.pos
}

// State returns the phase of the apple at now.
func (g *GoldenApple) State(now time.Time) GoldenState {
	switch {
	case !g.active:
		return GoldenDormant
	case now.Sub(g.spawnTime) > g.cfg.BlinkAfter:
		return GoldenBlinking
	default:
		return GoldenVisible
	}
}

// Visible reports whether the apple should be drawn at now. An active apple
// is hidden during the off half of its blink cycle.
func (g *GoldenApple) Visible(now time.Time) bool {
	if !g.active {
		return false
	}
	return !(g.blinkState && now.Sub(g.spawnTime) > g.cfg.BlinkAfter)
}

// Remaining returns the time left before expiry. ok is false while dormant
// or once the time has run out.
func (g *GoldenApple) Remaining(now time.Time) (left time.Duration, ok bool) {
	if !g.active {
		return 0, false
	}
	left = g.cfg.ExpireAfter - now.Sub(g.spawnTime)
	if left <= 0 {
		return 0, false
	}
	return left, true
}

// Sprite returns the drawable view of the apple.
func (g *GoldenApple) Sprite() Sprite {
	return newSprite(SpriteGolden, ColorGolden, g.pos)
}
