package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means time based in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 32,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (loss or victory)
	Victory  bool // Whether the game ended by filling the board
}

// Event names something notable that happened during a tick.
type Event string

const (
	EventAppleEaten    Event = "apple_eaten"
	EventGoldenSpawned Event = "golden_spawned"
	EventGoldenSkipped Event = "golden_skipped"
	EventGoldenEaten   Event = "golden_eaten"
	EventGoldenExpired Event = "golden_expired"
	EventGameOver      Event = "game_over"
	EventVictory       Event = "victory"
	EventRestart       Event = "restart"
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
