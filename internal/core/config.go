package core

import "time"

// RuntimeConfig contains configuration passed to scenes on entry.
// Scenes use this to adapt to screen size and for deterministic simulation.
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

// TickDuration returns the simulated time covered by one Step.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// SceneState represents the state a scene reports to the platform.
type SceneState struct {
	Elapsed  time.Duration // Time spent in the scene
	GameOver bool          // Whether the pet's run has ended
	Blocked  bool          // Whether interaction is currently rejected
}

// StepResult is returned by Scene.Step() after each simulation tick.
type StepResult struct {
	State SceneState
}
