package stats

import (
	"fmt"
	"time"

	"pomotray/internal/core/model"
)

// DaySummary totals the focus activity of a single calendar day.
type DaySummary struct {
	Date      string
	Label     string
	Pomodoros int
	Minutes   int
}

// Period aggregates a window of calendar days ending today.
type Period struct {
	TotalPomodoros int
	TotalMinutes   int
	// Days is dense: one entry per day in range, oldest first, zero-activity
	// days included so chart axes stay aligned.
	Days []DaySummary
	// HourlyMinutes is the focus minute total per local hour of day across
	// the whole window.
	HourlyMinutes [24]int
}

// TodaySummary returns the count and minute total of sessions completed on
// now's calendar day.
func TodaySummary(sessions []model.Session, now time.Time) (pomodoros, minutes int) {
	today := now.Format(model.DateLayout)
	for _, session := range sessions {
		if session.Type != model.SessionTypeFocus || session.Date != today {
			continue
		}
		pomodoros++
		minutes += session.DurationMinutes
	}
	return pomodoros, minutes
}

// CurrentStreak counts consecutive calendar days with at least one session,
// walking backward from today. A day without sessions ends the walk, except
// that an empty today is skipped rather than counted or broken.
func CurrentStreak(sessions []model.Session, now time.Time) int {
	days := make(map[string]bool, len(sessions))
	for _, session := range sessions {
		if session.Type == model.SessionTypeFocus {
			days[session.Date] = true
		}
	}

	streak := 0
	day := now
	if !days[day.Format(model.DateLayout)] {
		day = day.AddDate(0, 0, -1)
	}
	for days[day.Format(model.DateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// PeriodStats aggregates the window of `days` calendar days ending today.
func PeriodStats(sessions []model.Session, now time.Time, days int) Period {
	if days < 1 {
		days = 1
	}

	period := Period{Days: make([]DaySummary, 0, days)}
	byDate := make(map[string]int, days)
	for offset := days - 1; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		byDate[day.Format(model.DateLayout)] = len(period.Days)
		period.Days = append(period.Days, DaySummary{
			Date:  day.Format(model.DateLayout),
			Label: fmt.Sprintf("%d/%d", int(day.Month()), day.Day()),
		})
	}

	for _, session := range sessions {
		if session.Type != model.SessionTypeFocus {
			continue
		}
		index, inRange := byDate[session.Date]
		if !inRange {
			continue
		}
		period.Days[index].Pomodoros++
		period.Days[index].Minutes += session.DurationMinutes
		period.TotalPomodoros++
		period.TotalMinutes += session.DurationMinutes
		if session.Hour >= 0 && session.Hour < 24 {
			period.HourlyMinutes[session.Hour] += session.DurationMinutes
		}
	}
	return period
}

// FormatMinutesAsHours renders minute totals for display: below one hour as
// "45m", otherwise as one-decimal hours like "1.5h".
func FormatMinutesAsHours(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%.1fh", float64(minutes)/60)
}
