package timerwin

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines timer window action handlers.
type Callbacks struct {
	OnToggle func()
	OnSkip   func()
	OnReset  func()
}

// View carries everything the timer window renders.
type View struct {
	ModeTitle string
	Remaining time.Duration
	Total     time.Duration
	Running   bool
	// CyclePosition is the number of focus sessions completed in the
	// current long-break cycle; CycleLength is the cycle size.
	CyclePosition int
	CycleLength   int
}

var (
	focusDotColor = color.NRGBA{R: 214, G: 57, B: 42, A: 255}
	emptyDotColor = color.NRGBA{R: 120, G: 120, B: 120, A: 90}
	timeColor     = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	noteColor     = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
)

// Window is the main countdown view.
type Window struct {
	window       fyne.Window
	modeLabel    *canvas.Text
	timeLabel    *canvas.Text
	noteLabel    *canvas.Text
	progress     *widget.ProgressBar
	toggleButton *widget.Button
	dots         *fyne.Container
	cycleLength  int
}

// New creates the timer window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Pomotray")

	modeLabel := canvas.NewText("Focus", timeColor)
	modeLabel.Alignment = fyne.TextAlignCenter
	modeLabel.TextStyle = fyne.TextStyle{Bold: true}
	modeLabel.TextSize = 20

	timeLabel := canvas.NewText("25:00", timeColor)
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Bold: true}
	timeLabel.TextSize = 52

	noteLabel := canvas.NewText("", noteColor)
	noteLabel.Alignment = fyne.TextAlignCenter
	noteLabel.TextSize = 14

	progress := widget.NewProgressBar()
	progress.Min = 0
	progress.Max = 1
	progress.TextFormatter = func() string { return "" }

	toggleButton := widget.NewButton("Start", func() {
		if callbacks.OnToggle != nil {
			callbacks.OnToggle()
		}
	})
	skipButton := widget.NewButton("Skip", func() {
		if callbacks.OnSkip != nil {
			callbacks.OnSkip()
		}
	})
	resetButton := widget.NewButton("Reset", func() {
		if callbacks.OnReset != nil {
			callbacks.OnReset()
		}
	})

	dots := container.NewGridWrap(fyne.NewSize(14, 14))

	content := container.NewVBox(
		modeLabel,
		timeLabel,
		progress,
		container.NewCenter(dots),
		noteLabel,
		container.NewGridWithColumns(3, toggleButton, skipButton, resetButton),
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(320, 280))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return &Window{
		window:       window,
		modeLabel:    modeLabel,
		timeLabel:    timeLabel,
		noteLabel:    noteLabel,
		progress:     progress,
		toggleButton: toggleButton,
		dots:         dots,
	}
}

// Show displays the timer window.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

// Update re-renders the full view. Safe to call from event goroutines.
func (win *Window) Update(view View) {
	fyne.Do(func() {
		win.modeLabel.Text = view.ModeTitle
		win.modeLabel.Refresh()
		win.noteLabel.Text = ""
		win.noteLabel.Refresh()
		win.applyCountdown(view.Remaining, view.Total)
		win.applyRunning(view.Running)
		win.applyCycle(view.CyclePosition, view.CycleLength)
	})
}

// SetCountdown updates only the clock and progress fraction.
func (win *Window) SetCountdown(remaining, total time.Duration) {
	fyne.Do(func() {
		win.applyCountdown(remaining, total)
	})
}

// SetRunning flips the start/pause button label.
func (win *Window) SetRunning(running bool) {
	fyne.Do(func() {
		win.applyRunning(running)
	})
}

// SetNote shows the completion cue line. It is cleared by the next Update.
func (win *Window) SetNote(note string) {
	fyne.Do(func() {
		win.noteLabel.Text = note
		win.noteLabel.Refresh()
	})
}

func (win *Window) applyCountdown(remaining, total time.Duration) {
	win.timeLabel.Text = formatClock(remaining)
	win.timeLabel.Refresh()
	if total > 0 {
		win.progress.SetValue(float64(remaining) / float64(total))
	} else {
		win.progress.SetValue(0)
	}
}

func (win *Window) applyRunning(running bool) {
	if running {
		win.toggleButton.SetText("Pause")
	} else {
		win.toggleButton.SetText("Start")
	}
}

func (win *Window) applyCycle(position, length int) {
	if length < 1 {
		length = 1
	}
	if position < 0 {
		position = 0
	}
	if position > length {
		position = length
	}
	if win.cycleLength != length || len(win.dots.Objects) != length {
		win.dots.Objects = nil
		for i := 0; i < length; i++ {
			win.dots.Add(canvas.NewCircle(emptyDotColor))
		}
		win.cycleLength = length
	}
	for i, object := range win.dots.Objects {
		dot, ok := object.(*canvas.Circle)
		if !ok {
			continue
		}
		if i < position {
			dot.FillColor = focusDotColor
		} else {
			dot.FillColor = emptyDotColor
		}
		dot.Refresh()
	}
	win.dots.Refresh()
}

func formatClock(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
