package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	focusMin   *widget.Entry
	shortMin   *widget.Entry
	longMin    *widget.Entry
	interval   *widget.Entry
	soundCheck *widget.Check
	volume     *widget.Slider
	loginCheck *widget.Check
}

// New creates a preferences window. Saved values are clamped by the caller's
// settings store; the window itself only rejects non-numeric input.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomotray Settings")

	focusMin := widget.NewEntry()
	shortMin := widget.NewEntry()
	longMin := widget.NewEntry()
	interval := widget.NewEntry()

	soundCheck := widget.NewCheck("Play sound on completion", nil)

	volume := widget.NewSlider(MinSoundVolume, MaxSoundVolume)
	volume.Step = 1

	loginCheck := widget.NewCheck("Launch at login", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus"), focusMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), shortMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), longMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break every"), interval, widget.NewLabel("sessions")),
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		soundCheck,
		widget.NewLabel("Volume"),
		volume,
		loginCheck,
	)

	saveButton := widget.NewButton("Save", nil)
	defaultsButton := widget.NewButton("Defaults", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, defaultsButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 420))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		focusMin:   focusMin,
		shortMin:   shortMin,
		longMin:    longMin,
		interval:   interval,
		soundCheck: soundCheck,
		volume:     volume,
		loginCheck: loginCheck,
	}
	prefs.applySettings(settings)

	saveButton.OnTapped = prefs.handleSave
	defaultsButton.OnTapped = func() {
		prefs.applySettings(DefaultSettings())
	}
	cancelButton.OnTapped = func() {
		prefs.applySettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

func (prefs *Window) applySettings(settings Settings) {
	prefs.focusMin.SetText(fmt.Sprintf("%d", settings.FocusMinutes))
	prefs.shortMin.SetText(fmt.Sprintf("%d", settings.ShortBreakMinutes))
	prefs.longMin.SetText(fmt.Sprintf("%d", settings.LongBreakMinutes))
	prefs.interval.SetText(fmt.Sprintf("%d", settings.LongBreakInterval))
	prefs.soundCheck.SetChecked(settings.SoundEnabled)
	prefs.volume.Value = float64(settings.SoundVolume)
	prefs.volume.Refresh()
	prefs.loginCheck.SetChecked(settings.LaunchAtLogin)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.focusMin.Text); ok {
		settings.FocusMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.shortMin.Text); ok {
		settings.ShortBreakMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.longMin.Text); ok {
		settings.LongBreakMinutes = minutes
	}
	if sessions, ok := parsePositiveInt(prefs.interval.Text); ok {
		settings.LongBreakInterval = sessions
	}
	settings.SoundEnabled = prefs.soundCheck.Checked
	settings.SoundVolume = int(prefs.volume.Value)
	settings.LaunchAtLogin = prefs.loginCheck.Checked

	settings = settings.Clamped()
	prefs.settings = settings
	prefs.applySettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
