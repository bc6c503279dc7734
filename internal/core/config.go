package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	Rows     int           // Grid height in cells
	Cols     int           // Grid width in cells
	Interval time.Duration // Initial tick interval
	Seed     int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Rows:     10,
		Cols:     10,
		Interval: time.Second,
		Seed:     0, // 0 means use current time
	}
}
