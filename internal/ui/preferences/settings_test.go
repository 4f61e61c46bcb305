package preferences

import (
	"testing"
	"time"
)

func TestClampedPullsEveryFieldIntoRange(t *testing.T) {
	tests := []struct {
		name     string
		input    Settings
		expected Settings
	}{
		{
			name: "all below minimums",
			input: Settings{
				FocusMinutes:      0,
				ShortBreakMinutes: -5,
				LongBreakMinutes:  0,
				LongBreakInterval: 0,
				SoundVolume:       -1,
			},
			expected: Settings{
				FocusMinutes:      MinFocusMinutes,
				ShortBreakMinutes: MinShortBreakMinutes,
				LongBreakMinutes:  MinLongBreakMinutes,
				LongBreakInterval: MinLongBreakInterval,
				SoundVolume:       MinSoundVolume,
			},
		},
		{
			name: "all above maximums",
			input: Settings{
				FocusMinutes:      1000,
				ShortBreakMinutes: 1000,
				LongBreakMinutes:  1000,
				LongBreakInterval: 1000,
				SoundVolume:       1000,
			},
			expected: Settings{
				FocusMinutes:      MaxFocusMinutes,
				ShortBreakMinutes: MaxShortBreakMinutes,
				LongBreakMinutes:  MaxLongBreakMinutes,
				LongBreakInterval: MaxLongBreakInterval,
				SoundVolume:       MaxSoundVolume,
			},
		},
		{
			name:     "valid values untouched",
			input:    DefaultSettings(),
			expected: DefaultSettings(),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.input.Clamped(); got != test.expected {
				t.Fatalf("Clamped() = %+v, want %+v", got, test.expected)
			}
		})
	}
}

func TestClampedIsIdempotent(t *testing.T) {
	settings := Settings{FocusMinutes: 500, LongBreakInterval: 1}.Clamped()
	if settings.Clamped() != settings {
		t.Fatal("clamping already-clamped settings changed values")
	}
}

func TestLongBreakIntervalNeverBelowTwo(t *testing.T) {
	for _, interval := range []int{-3, 0, 1} {
		settings := Settings{LongBreakInterval: interval}.Clamped()
		if settings.LongBreakInterval < 2 {
			t.Fatalf("interval %d clamped to %d, want >= 2", interval, settings.LongBreakInterval)
		}
	}
}

func TestTimerConfigConversion(t *testing.T) {
	settings := DefaultSettings()
	config := settings.TimerConfig()

	if config.FocusDuration != 25*time.Minute {
		t.Errorf("focus duration = %v, want 25m", config.FocusDuration)
	}
	if config.ShortBreakDuration != 5*time.Minute {
		t.Errorf("short break duration = %v, want 5m", config.ShortBreakDuration)
	}
	if config.LongBreakDuration != 15*time.Minute {
		t.Errorf("long break duration = %v, want 15m", config.LongBreakDuration)
	}
	if config.LongBreakInterval != 4 {
		t.Errorf("long break interval = %d, want 4", config.LongBreakInterval)
	}
	if !config.SoundEnabled || config.SoundVolume != 70 {
		t.Errorf("sound settings = %v/%d, want true/70", config.SoundEnabled, config.SoundVolume)
	}
}
