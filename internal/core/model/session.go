package model

import "time"

// SessionTypeFocus is the only session type recorded today. Break intervals
// are never written to history.
const SessionTypeFocus = "focus"

// DateLayout is the calendar-day key used for day bucketing and pruning.
const DateLayout = "2006-01-02"

// Session is an immutable record of one completed focus interval.
type Session struct {
	Date            string    `json:"date"`
	Hour            int       `json:"hour"`
	DurationMinutes int       `json:"durationMinutes"`
	Type            string    `json:"type"`
	Timestamp       time.Time `json:"timestamp"`
}

// NewFocusSession captures a focus session completed at the given instant.
func NewFocusSession(completedAt time.Time, durationMinutes int) Session {
	return Session{
		Date:            completedAt.Format(DateLayout),
		Hour:            completedAt.Hour(),
		DurationMinutes: durationMinutes,
		Type:            SessionTypeFocus,
		Timestamp:       completedAt,
	}
}
