package core

import "time"

// RuntimeConfig contains configuration passed to games by the host.
// The CLI builds it once from --fps and --seed.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the host picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}

// TickInterval returns the frame period. A non-positive TickRate falls
// back to the default rate.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// WithResolvedSeed returns a copy whose zero seed is replaced by one taken
// from now, so the seed actually used can be reported and replayed.
func (c RuntimeConfig) WithResolvedSeed(now time.Time) RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the host.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
}

// StepResult is returned after each frame.
type StepResult struct {
	State GameState
	Ticks int // Simulation ticks advanced this frame (0 or 1)
}

// ScoreObserver receives score updates from a running game.
type ScoreObserver interface {
	// ScoreChanged is called whenever the score changes, including the
	// reset to zero at the start of every run.
	ScoreChanged(score int)
	// GameOver is called once when a run ends.
	GameOver(finalScore int)
}
