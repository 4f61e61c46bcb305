package preferences

import (
	"time"

	"pomotray/internal/core/model"
)

// Clamp ranges for numeric settings. Values outside a range are never
// persisted; they are pulled to the nearest bound on save.
const (
	MinFocusMinutes = 1
	MaxFocusMinutes = 120

	MinShortBreakMinutes = 1
	MaxShortBreakMinutes = 60

	MinLongBreakMinutes = 1
	MaxLongBreakMinutes = 120

	MinLongBreakInterval = 2
	MaxLongBreakInterval = 12

	MinSoundVolume = 0
	MaxSoundVolume = 100
)

// Settings defines editable user preferences.
type Settings struct {
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
	LongBreakInterval int
	SoundEnabled      bool
	SoundVolume       int
	LaunchAtLogin     bool
}

// DefaultSettings returns default settings for Pomotray.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:      25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakInterval: 4,
		SoundEnabled:      true,
		SoundVolume:       70,
		LaunchAtLogin:     false,
	}
}

// Clamped returns a copy with every numeric field pulled into its range.
func (settings Settings) Clamped() Settings {
	settings.FocusMinutes = clampInt(settings.FocusMinutes, MinFocusMinutes, MaxFocusMinutes)
	settings.ShortBreakMinutes = clampInt(settings.ShortBreakMinutes, MinShortBreakMinutes, MaxShortBreakMinutes)
	settings.LongBreakMinutes = clampInt(settings.LongBreakMinutes, MinLongBreakMinutes, MaxLongBreakMinutes)
	settings.LongBreakInterval = clampInt(settings.LongBreakInterval, MinLongBreakInterval, MaxLongBreakInterval)
	settings.SoundVolume = clampInt(settings.SoundVolume, MinSoundVolume, MaxSoundVolume)
	return settings
}

// TimerConfig converts settings to TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		FocusDuration:      time.Duration(settings.FocusMinutes) * time.Minute,
		ShortBreakDuration: time.Duration(settings.ShortBreakMinutes) * time.Minute,
		LongBreakDuration:  time.Duration(settings.LongBreakMinutes) * time.Minute,
		LongBreakInterval:  settings.LongBreakInterval,
		SoundEnabled:       settings.SoundEnabled,
		SoundVolume:        settings.SoundVolume,
	}
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
