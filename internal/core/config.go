package core

import "time"

// RuntimeConfig contains settings passed to the game screen at startup.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	Seed       int64         // Dice seed; 0 means use current time
	BotDelay   time.Duration // Pause before a bot rolls
	StepDelay  time.Duration // Delay between token steps
	DiceFrames int           // Number of dice animation frames
	DiceFrame  time.Duration // Delay between dice frames
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Seed:       0,
		BotDelay:   time.Second,
		StepDelay:  120 * time.Millisecond,
		DiceFrames: 8,
		DiceFrame:  60 * time.Millisecond,
	}
}
