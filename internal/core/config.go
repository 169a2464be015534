package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	MatrixW int   // Board width in cells
	MatrixH int   // Board height in cells
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 25,
		MatrixW: 7,
		MatrixH: 7,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Score of the most recent chain
	Best   int  // Best chain score this session
	Paused bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each input event.
type StepResult struct {
	State GameState
	// Walked is true when the step resolved a chain.
	Walked bool
}
