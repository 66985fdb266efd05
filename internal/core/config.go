package core

// RuntimeConfig contains the per-session settings a front end starts with.
type RuntimeConfig struct {
	ScreenW   int    // Screen width in characters
	ScreenH   int    // Screen height in characters
	Seed      int64  // RNG seed for tile spawning, 0 = time based
	ShareLink string // Link appended to the game-over share text
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}
