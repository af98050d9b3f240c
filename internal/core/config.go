package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarises the game for the platform layer.
type GameState struct {
	Score    int    // Current score
	Phase    string // Session state name (Idle, Playing, Ending, Ended)
	GameOver bool   // Whether the session has ended
	Quit     bool   // Whether the player asked to leave
}

// StepResult is returned by Game.Step() after each host tick.
type StepResult struct {
	State GameState
}
