package core

import "time"

// RuntimeConfig contains platform settings handed to a game session.
// The simulation and the renderer run on separate clocks, so both rates live here.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	FPS          int           // Render frames per second
	TickInterval time.Duration // Simulation step interval
	Seed         int64         // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		FPS:          30,
		TickInterval: 150 * time.Millisecond,
		Seed:         0,
	}
}
