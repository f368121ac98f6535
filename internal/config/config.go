// Package config holds the constants table for the snake game. The table is
// stored as embedded YAML and is not user-overridable.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all constants for the snake game.
type SnakeConfig struct {
	Board    BoardConfig  `yaml:"board"`
	TickRate int          `yaml:"tick_rate"` // Simulation ticks per second
	Apple    AppleConfig  `yaml:"apple"`
	Golden   GoldenConfig `yaml:"golden"`
}

// BoardConfig defines the board in pixels.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// AppleConfig defines the regular apple.
type AppleConfig struct {
	Growth     int `yaml:"growth"`
	Points     int `yaml:"points"`
	MaxSamples int `yaml:"max_samples"`
}

// GoldenConfig defines the bonus apple timings and spawn policy.
type GoldenConfig struct {
	Growth        int           `yaml:"growth"`
	Points        int           `yaml:"points"`
	BlinkAfter    time.Duration `yaml:"blink_after"`
	ExpireAfter   time.Duration `yaml:"expire_after"`
	BlinkEvery    int           `yaml:"blink_every"` // Updates per visibility toggle
	SpawnCooldown time.Duration `yaml:"spawn_cooldown"`
	SpawnChance   float64       `yaml:"spawn_chance"` // Per-tick probability once the cooldown passed
}

// TickInterval returns the duration of one simulation tick.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Validate reports every inconsistency in the table.
func (c SnakeConfig) Validate() error {
	var errs []error

	b := c.Board
	if b.Width <= 0 || b.Height <= 0 || b.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("board dimensions must be positive, got %dx%d cell %d", b.Width, b.Height, b.CellSize))
	} else if b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0 {
		errs = append(errs, fmt.Errorf("board %dx%d is not a multiple of cell size %d", b.Width, b.Height, b.CellSize))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Apple.Growth < 0 || c.Golden.Growth < 0 {
		errs = append(errs, errors.New("growth must not be negative"))
	}
	if c.Apple.MaxSamples < 0 {
		errs = append(errs, fmt.Errorf("apple.max_samples must not be negative, got %d", c.Apple.MaxSamples))
	}

	g := c.Golden
	if g.BlinkAfter <= 0 || g.ExpireAfter <= g.BlinkAfter {
		errs = append(errs, fmt.Errorf("golden timings need 0 < blink_after < expire_after, got %v/%v", g.BlinkAfter, g.ExpireAfter))
	}
	if g.BlinkEvery <= 0 {
		errs = append(errs, fmt.Errorf("golden.blink_every must be positive, got %d", g.BlinkEvery))
	}
	if g.SpawnCooldown < 0 {
		errs = append(errs, fmt.Errorf("golden.spawn_cooldown must not be negative, got %v", g.SpawnCooldown))
	}
	if g.SpawnChance < 0 || g.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("golden.spawn_chance must be in [0, 1], got %v", g.SpawnChance))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
