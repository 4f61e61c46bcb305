package statsview

import (
	"fmt"
	"image/color"
	"strconv"

	"pomotray/internal/core/stats"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Summary is the full set of derived values the statistics window renders.
type Summary struct {
	TodayPomodoros int
	TodayMinutes   int
	StreakDays     int
	Period         stats.Period
}

// Provider computes a fresh Summary for a window of the given day count.
type Provider func(days int) Summary

const (
	rangeWeek  = "7 days"
	rangeMonth = "30 days"
)

var (
	dailyBarColor  = color.NRGBA{R: 214, G: 57, B: 42, A: 255}
	hourlyBarColor = color.NRGBA{R: 66, G: 135, B: 245, A: 255}
)

// Window is the statistics view: today summary, streak and period charts.
type Window struct {
	window      fyne.Window
	provider    Provider
	days        int
	todayLabel  *widget.Label
	streakLabel *widget.Label
	totalLabel  *widget.Label
	daily       *barChart
	hourly      *barChart
}

// New creates the statistics window.
func New(app fyne.App, provider Provider) *Window {
	window := app.NewWindow("Pomotray Statistics")

	win := &Window{
		window:      window,
		provider:    provider,
		days:        7,
		todayLabel:  widget.NewLabel(""),
		streakLabel: widget.NewLabel(""),
		totalLabel:  widget.NewLabel(""),
		daily:       newBarChart(dailyBarColor),
		hourly:      newBarChart(hourlyBarColor),
	}

	rangeSelect := widget.NewRadioGroup([]string{rangeWeek, rangeMonth}, func(selected string) {
		if selected == rangeMonth {
			win.days = 30
		} else {
			win.days = 7
		}
		win.Refresh()
	})
	rangeSelect.Horizontal = true
	rangeSelect.SetSelected(rangeWeek)

	content := container.NewVBox(
		win.todayLabel,
		win.streakLabel,
		rangeSelect,
		win.totalLabel,
		widget.NewLabelWithStyle("Minutes per day", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		win.daily.container,
		widget.NewLabelWithStyle("Minutes per hour of day", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		win.hourly.container,
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(460, 480))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return win
}

// Show refreshes the data and displays the window.
func (win *Window) Show() {
	win.Refresh()
	win.window.Show()
	win.window.RequestFocus()
}

// Refresh recomputes the summary and re-renders. Safe from any goroutine.
func (win *Window) Refresh() {
	if win.provider == nil {
		return
	}
	days := win.days
	summary := win.provider(days)

	fyne.Do(func() {
		win.todayLabel.SetText(fmt.Sprintf("Today: %d pomodoros · %s",
			summary.TodayPomodoros, stats.FormatMinutesAsHours(summary.TodayMinutes)))
		win.streakLabel.SetText(fmt.Sprintf("Current streak: %d days", summary.StreakDays))
		win.totalLabel.SetText(fmt.Sprintf("Last %d days: %d pomodoros · %s",
			days, summary.Period.TotalPomodoros, stats.FormatMinutesAsHours(summary.Period.TotalMinutes)))

		win.daily.SetData(dailyMinutes(summary.Period), dailyLabels(summary.Period, days))
		win.hourly.SetData(summary.Period.HourlyMinutes[:], hourLabels())
	})
}

func dailyMinutes(period stats.Period) []int {
	values := make([]int, len(period.Days))
	for index, day := range period.Days {
		values[index] = day.Minutes
	}
	return values
}

// dailyLabels thins the axis for the month view so labels stay readable.
func dailyLabels(period stats.Period, days int) []string {
	labelEvery := 1
	if days > 7 {
		labelEvery = 5
	}
	labels := make([]string, len(period.Days))
	last := len(period.Days) - 1
	for index, day := range period.Days {
		if index%labelEvery == 0 || index == last {
			labels[index] = day.Label
		}
	}
	return labels
}

func hourLabels() []string {
	labels := make([]string, 24)
	for hour := 0; hour < 24; hour += 6 {
		labels[hour] = strconv.Itoa(hour)
	}
	return labels
}
