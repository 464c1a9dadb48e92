package tray

import (
	"fmt"

	"intervaltimer/internal/core/intervaltimer"
	"intervaltimer/internal/ui/presenter"
	"intervaltimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow       func()
	OnStartPause func()
	OnReset      func()
	OnSettings   func()
	OnQuit       func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	resetItem   *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
	running     bool
	finished    bool
	iconName    string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "ready",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnStartPause != nil {
			manager.callbacks.OnStartPause()
		}
	})

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	manager.refreshStatus()
	manager.setIcon(resources.IconPaused)
	return manager
}

// Render updates the tray from a timer event. Safe from any goroutine.
// The menu and icon are only pushed to the OS when they change.
func (manager *Manager) Render(event intervaltimer.Event) {
	fyne.Do(func() {
		manager.apply(event)
	})
}

func (manager *Manager) apply(event intervaltimer.Event) {
	manager.setIcon(resources.IconName(event.State))

	statusLabel := presenter.Status(event.State, event.Config)
	if statusLabel == manager.statusLabel &&
		event.State.IsRunning == manager.running &&
		event.State.IsFinished == manager.finished {
		return
	}
	manager.statusLabel = statusLabel
	manager.running = event.State.IsRunning
	manager.finished = event.State.IsFinished

	if manager.running {
		manager.startItem.Label = "Pause"
	} else {
		manager.startItem.Label = "Start"
	}
	manager.startItem.Disabled = manager.finished
	manager.refreshStatus()
}

func (manager *Manager) setIcon(name string) {
	if manager.app == nil || name == manager.iconName {
		return
	}
	manager.iconName = name
	manager.app.SetSystemTrayIcon(resources.MustIcon(name))
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", manager.statusLabel)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(manager.menu())
}

func (manager *Manager) menu() *fyne.Menu {
	return fyne.NewMenu("Interval Timer",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.startItem,
		manager.resetItem,
		fyne.NewMenuItem("Settings", func() {
			if manager.callbacks.OnSettings != nil {
				manager.callbacks.OnSettings()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}
