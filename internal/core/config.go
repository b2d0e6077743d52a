package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the player is currently dead
	Victory  bool // Whether the run has been won
	Paused   bool // Whether the game is paused
	Running  bool // False once the game asked the host to exit
}

// Finished reports whether the run has reached a final result worth recording.
func (s GameState) Finished() bool {
	return s.Victory
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	NewRun bool // A fresh run started this tick; hosts reset per-run bookkeeping
}

// FlagStore persists small per-profile boolean flags.
// Implementations must be safe to call from the game loop; a failed read
// is reported as an error and callers decide the fallback.
type FlagStore interface {
	Flag(profile, name string) (bool, error)
	SetFlag(profile, name string, value bool) error
}
