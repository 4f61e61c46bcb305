package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"pomotray/internal/core/model"
	"pomotray/internal/core/stats"
	"pomotray/internal/core/timer"
	"pomotray/internal/platform"
	"pomotray/internal/storage"
	"pomotray/internal/ui/preferences"
	"pomotray/internal/ui/statsview"
	"pomotray/internal/ui/timerwin"
	"pomotray/internal/ui/tray"
	"pomotray/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const appName = "Pomotray"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.pomotray.app")
	fyneApp.SetIcon(resources.MustLogo("pomotray-active.png"))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow("Pomotray")
	trayWindow.SetContent(widget.NewLabel("Pomotray is running in the system tray."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	sessionStore, err := storage.NewSessionStore(appName)
	if err != nil {
		log.Printf("open session store: %v", err)
	}

	machine := timer.New(settings.TimerConfig(), timer.Config{})
	if sessionStore != nil {
		machine.SetRecorder(sessionStore)
	}

	timerWindow := timerwin.New(fyneApp, timerwin.Callbacks{
		OnToggle: machine.Toggle,
		OnSkip:   machine.Skip,
		OnReset:  machine.Reset,
	})

	statsWindow := statsview.New(fyneApp, func(days int) statsview.Summary {
		now := time.Now()
		history := loadHistory(sessionStore)
		pomodoros, minutes := stats.TodaySummary(history, now)
		return statsview.Summary{
			TodayPomodoros: pomodoros,
			TodayMinutes:   minutes,
			StreakDays:     stats.CurrentStreak(history, now),
			Period:         stats.PeriodStats(history, now, days),
		}
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		machine.UpdateConfig(settings.TimerConfig())
		applyAutostart(settings.LaunchAtLogin)
	})

	activeIcon := resources.MustLogo("pomotray-active.png")
	pausedIcon := resources.MustLogo("pomotray-paused.png")

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnShowTimer: timerWindow.Show,
		OnToggle:    machine.Toggle,
		OnSkip:      machine.Skip,
		OnReset:     machine.Reset,
		OnStatistics: func() {
			statsWindow.Show()
		},
		OnPreferences: func() {
			prefsWindow.Show()
		},
		OnQuit: func() {
			machine.Close()
			fyneApp.Quit()
		},
	})
	desktopApp.SetSystemTrayIcon(pausedIcon)

	events := machine.Subscribe(8)
	go func() {
		for event := range events {
			config := machine.Config()
			switch event.Type {
			case timer.EventModeChange:
				timerWindow.Update(timerwin.View{
					ModeTitle:     modeTitle(event.Mode),
					Remaining:     event.Remaining,
					Total:         event.Total,
					Running:       event.Running,
					CyclePosition: cyclePosition(event.CompletedFocus, config.LongBreakInterval),
					CycleLength:   config.LongBreakInterval,
				})
				trayManager.SetRunning(false)
				trayManager.SetStatus(statusLine(event))
				fyne.Do(func() {
					desktopApp.SetSystemTrayIcon(pausedIcon)
				})
			case timer.EventRunState:
				timerWindow.SetRunning(event.Running)
				trayManager.SetRunning(event.Running)
				trayManager.SetStatus(statusLine(event))
				icon := pausedIcon
				if event.Running {
					icon = activeIcon
				}
				fyne.Do(func() {
					desktopApp.SetSystemTrayIcon(icon)
				})
			case timer.EventTick:
				timerWindow.SetCountdown(event.Remaining, event.Total)
				trayManager.SetStatus(statusLine(event))
			case timer.EventCompleted:
				timerWindow.SetCountdown(event.Remaining, event.Total)
				timerWindow.SetRunning(false)
				trayManager.SetRunning(false)
				if event.Session != nil {
					timerWindow.SetNote("Focus session complete")
					if config.SoundEnabled {
						platform.PlayChime(float64(config.SoundVolume) / 100)
					}
					statsWindow.Refresh()
				} else if event.Mode != timer.ModeFocus {
					timerWindow.SetNote("Break over")
				}
			}
		}
	}()

	// Arm the initial view before anything ticks.
	snapshot := machine.Snapshot()
	timerWindow.Update(timerwin.View{
		ModeTitle:     modeTitle(snapshot.Mode),
		Remaining:     snapshot.Remaining,
		Total:         snapshot.Total,
		Running:       snapshot.Running,
		CyclePosition: cyclePosition(snapshot.CompletedFocus, settings.LongBreakInterval),
		CycleLength:   settings.LongBreakInterval,
	})
	trayManager.SetStatus(fmt.Sprintf("%s %s", modeTitle(snapshot.Mode), formatRemaining(snapshot.Remaining)))

	timerWindow.Show()
	fyneApp.Run()
}

func loadHistory(store *storage.SessionStore) []model.Session {
	if store == nil {
		return nil
	}
	return store.LoadAll()
}

func applyAutostart(enabled bool) {
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("autostart: resolve executable: %v", err)
		return
	}
	if err := platform.SetAutostart(appName, execPath, enabled); err != nil {
		log.Printf("autostart: %v", err)
	}
}

func modeTitle(mode timer.Mode) string {
	switch mode {
	case timer.ModeShortBreak:
		return "Short Break"
	case timer.ModeLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

func statusLine(event timer.Event) string {
	status := fmt.Sprintf("%s %s", modeTitle(event.Mode), formatRemaining(event.Remaining))
	if !event.Running {
		status += " (paused)"
	}
	return status
}

func cyclePosition(completedFocus, interval int) int {
	if interval <= 0 {
		return 0
	}
	return completedFocus % interval
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
