package stats

import (
	"testing"
	"time"

	"pomotray/internal/core/model"
)

var testNow = time.Date(2026, 1, 28, 16, 45, 0, 0, time.Local)

func focusSession(daysAgo, hour, minutes int) model.Session {
	completed := testNow.AddDate(0, 0, -daysAgo)
	return model.Session{
		Date:            completed.Format(model.DateLayout),
		Hour:            hour,
		DurationMinutes: minutes,
		Type:            model.SessionTypeFocus,
		Timestamp:       completed,
	}
}

func TestTodaySummary(t *testing.T) {
	sessions := []model.Session{
		focusSession(0, 9, 25),
		focusSession(0, 14, 25),
		focusSession(1, 10, 25),
	}

	pomodoros, minutes := TodaySummary(sessions, testNow)
	if pomodoros != 2 || minutes != 50 {
		t.Fatalf("today = %d sessions / %d minutes, want 2 / 50", pomodoros, minutes)
	}
}

func TestTodaySummaryEmpty(t *testing.T) {
	pomodoros, minutes := TodaySummary(nil, testNow)
	if pomodoros != 0 || minutes != 0 {
		t.Fatalf("empty store today = %d / %d, want 0 / 0", pomodoros, minutes)
	}
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name     string
		daysAgo  []int
		expected int
	}{
		{"today and yesterday", []int{0, 1}, 2},
		{"gap two days ago", []int{0, 1, 3}, 2},
		{"empty today is skipped not broken", []int{1}, 1},
		{"empty today then three days back", []int{1, 2, 3}, 3},
		{"yesterday missing breaks streak", []int{0, 2, 3}, 1},
		{"no sessions at all", nil, 0},
		{"only old sessions", []int{5, 6}, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var sessions []model.Session
			for _, daysAgo := range test.daysAgo {
				sessions = append(sessions, focusSession(daysAgo, 10, 25))
			}
			if streak := CurrentStreak(sessions, testNow); streak != test.expected {
				t.Fatalf("streak = %d, want %d", streak, test.expected)
			}
		})
	}
}

func TestPeriodStatsSingleSessionToday(t *testing.T) {
	sessions := []model.Session{focusSession(0, 14, 30)}
	period := PeriodStats(sessions, testNow, 7)

	if len(period.Days) != 7 {
		t.Fatalf("daily series has %d entries, want 7", len(period.Days))
	}
	today := period.Days[6]
	if today.Minutes != 30 || today.Pomodoros != 1 {
		t.Errorf("today entry = %d minutes / %d pomodoros, want 30 / 1", today.Minutes, today.Pomodoros)
	}
	for index, day := range period.Days[:6] {
		if day.Minutes != 0 || day.Pomodoros != 0 {
			t.Errorf("day %d not zero: %+v", index, day)
		}
	}
	for hour, minutes := range period.HourlyMinutes {
		want := 0
		if hour == 14 {
			want = 30
		}
		if minutes != want {
			t.Errorf("hourly[%d] = %d, want %d", hour, minutes, want)
		}
	}
	if period.TotalMinutes != 30 || period.TotalPomodoros != 1 {
		t.Errorf("totals = %d minutes / %d pomodoros, want 30 / 1", period.TotalMinutes, period.TotalPomodoros)
	}
}

func TestPeriodStatsDenseOrderedDays(t *testing.T) {
	period := PeriodStats(nil, testNow, 30)
	if len(period.Days) != 30 {
		t.Fatalf("daily series has %d entries, want 30", len(period.Days))
	}
	if period.Days[0].Date >= period.Days[29].Date {
		t.Errorf("days not ordered oldest first: %s .. %s", period.Days[0].Date, period.Days[29].Date)
	}
	if period.Days[29].Date != testNow.Format(model.DateLayout) {
		t.Errorf("last day = %s, want today", period.Days[29].Date)
	}
	if period.Days[29].Label != "1/28" {
		t.Errorf("today label = %q, want 1/28", period.Days[29].Label)
	}
}

func TestPeriodStatsIgnoresOutOfRangeSessions(t *testing.T) {
	sessions := []model.Session{
		focusSession(10, 9, 25),
		focusSession(2, 9, 25),
	}
	period := PeriodStats(sessions, testNow, 7)
	if period.TotalPomodoros != 1 || period.TotalMinutes != 25 {
		t.Fatalf("totals = %d / %d, want 1 / 25", period.TotalPomodoros, period.TotalMinutes)
	}
}

func TestFormatMinutesAsHours(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "0m"},
		{45, "45m"},
		{59, "59m"},
		{60, "1.0h"},
		{90, "1.5h"},
		{126, "2.1h"},
	}

	for _, test := range tests {
		if got := FormatMinutesAsHours(test.minutes); got != test.expected {
			t.Errorf("FormatMinutesAsHours(%d) = %q, want %q", test.minutes, got, test.expected)
		}
	}
}
