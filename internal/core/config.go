package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// TimeStep carries the host clock readings for one simulation tick.
type TimeStep struct {
	// Delta is the seconds elapsed since the previous tick.
	Delta float64
	// Elapsed is the seconds elapsed since process start. Drives the
	// idle-bob waveform so it stays continuous across restarts.
	Elapsed float64
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Idle     bool // Whether the game is waiting for the round to be armed
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// ScoreChanged is true when the score pipeline consumed at least one
	// update this tick; the platform uses it to refresh score displays.
	ScoreChanged bool
}
