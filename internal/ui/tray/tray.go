package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimer   func()
	OnToggle      func()
	OnSkip        func()
	OnReset       func()
	OnStatistics  func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	skipItem    *fyne.MenuItem
	resetItem   *fyne.MenuItem
	callbacks   Callbacks
	running     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: ready", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	manager.skipItem = fyne.NewMenuItem("Skip interval", func() {
		if manager.callbacks.OnSkip != nil {
			manager.callbacks.OnSkip()
		}
	})

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label shown at the top of the menu.
// Safe to call from any goroutine.
func (manager *Manager) SetStatus(status string) {
	fyne.Do(func() {
		manager.statusLabel = status
		manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
		manager.refreshMenu()
	})
}

// SetRunning flips the start/pause entry. Safe to call from any goroutine.
func (manager *Manager) SetRunning(running bool) {
	fyne.Do(func() {
		manager.running = running
		if running {
			manager.toggleItem.Label = "Pause"
		} else {
			manager.toggleItem.Label = "Start"
		}
		manager.refreshMenu()
	})
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Pomotray",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShowTimer != nil {
				manager.callbacks.OnShowTimer()
			}
		}),
		manager.toggleItem,
		manager.skipItem,
		manager.resetItem,
		fyne.NewMenuItem("Statistics", func() {
			if manager.callbacks.OnStatistics != nil {
				manager.callbacks.OnStatistics()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
