package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns the runtime settings used when the terminal size is
// unknown: an 80x24 screen ticking at 60 per second. A zero Seed asks the
// host for a time-based seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the session has ended
	Paused   bool   // Whether the game is paused
	Reason   string // Why the session ended, empty while playing
}

// StepResult is returned by Game.Step() after each platform tick.
type StepResult struct {
	State GameState
	Moved bool // Whether the simulation advanced on this tick
}
