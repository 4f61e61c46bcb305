package model

import "time"

// TimerConfig contains runtime settings for the timer state machine.
type TimerConfig struct {
	FocusDuration      time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration

	// LongBreakInterval is how many completed focus sessions make one cycle;
	// every LongBreakInterval-th completion leads into a long break.
	LongBreakInterval int

	SoundEnabled bool
	SoundVolume  int
}
