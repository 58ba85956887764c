package core

// RuntimeConfig contains host parameters passed to a session at start.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is the summary a host needs to drive its loop and HUD.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Lines cleared this game
	Playing  bool // A game is in progress
	GameOver bool // The last game has ended
}
