package timer

import (
	"time"

	"pomotray/internal/core/model"
)

// Mode represents the current timer interval kind.
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// EventType defines the type of machine event.
type EventType string

const (
	// EventModeChange fires when the machine is (re)armed for a mode:
	// SetMode, Reset and config updates.
	EventModeChange EventType = "mode_change"
	// EventRunState fires when the countdown starts or pauses.
	EventRunState EventType = "run_state"
	// EventTick fires once per elapsed second while running.
	EventTick EventType = "tick"
	// EventCompleted fires when an interval reaches zero or is skipped.
	// The mode switch itself follows later, after the switch delay.
	EventCompleted EventType = "completed"
)

// Event represents a machine update for observers.
type Event struct {
	Type      EventType
	Mode      Mode
	Remaining time.Duration
	Total     time.Duration
	Running   bool

	// CompletedFocus is the number of credited focus sessions since start.
	CompletedFocus int

	// Session is set on EventCompleted when a focus session was credited.
	Session *model.Session
	// NextMode is set on EventCompleted.
	NextMode Mode
	// Skipped is set on EventCompleted when the interval was skipped.
	Skipped bool

	At time.Time
}
