package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hard-coded constants. It mirrors defaults/snake.yaml
// and is used when the embedded document cannot be parsed.
func Default() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    640,
			Height:   480,
			CellSize: 20,
		},
		TickRate: 20,
		Apple: AppleConfig{
			Growth:     1,
			Points:     1,
			MaxSamples: 256,
		},
		Golden: GoldenConfig{
			Growth:        3,
			Points:        3,
			BlinkAfter:    4 * time.Second,
			ExpireAfter:   6 * time.Second,
			BlinkEvery:    5,
			SpawnCooldown: 15 * time.Second,
			SpawnChance:   0.1,
		},
	}
}
