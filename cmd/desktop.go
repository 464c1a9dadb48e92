package main

import (
	"context"
	"log/slog"
	"time"

	"intervaltimer/internal/audio"
	"intervaltimer/internal/core/intervaltimer"
	"intervaltimer/internal/core/model"
	"intervaltimer/internal/core/ticker"
	"intervaltimer/internal/platform"
	"intervaltimer/internal/ui/animation"
	"intervaltimer/internal/ui/display"
	"intervaltimer/internal/ui/preferences"
	"intervaltimer/internal/ui/tray"
	"intervaltimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

func runDesktop(ctx context.Context, config model.Configuration, logger *slog.Logger) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Warn("single instance", "error", err)
		return err
	}
	defer func() {
		_ = guard.Release()
	}()
	logger.Debug("single instance lock held", "address", guard.Address())

	cue := audio.NewCuePlayer(audio.DefaultChime(), logger)
	if err := cue.Initialize(); err != nil {
		logger.Warn("audio unavailable, cues are silent", "error", err)
	}
	logger.Debug("audio cue", "available", cue.Available())
	defer cue.Close()

	timer, err := intervaltimer.New(config, intervaltimer.Options{
		Ticks:  ticker.New(ticker.Config{Interval: time.Second}),
		Cue:    cue,
		Sleep:  platform.NewWakeLock(logger),
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer timer.Close()
	events := timer.Subscribe(16)

	fyneApp := app.NewWithID("com.intervaltimer.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconRunning))

	toggle := func() {
		if timer.State().IsRunning {
			timer.Pause()
		} else {
			timer.Start()
		}
	}

	prefsWindow := preferences.New(fyneApp, config, func(updated model.Configuration) error {
		// A running workout keeps going; the new values wait for the next reset.
		if timer.State().IsRunning {
			return timer.Configure(updated)
		}
		return timer.ResetWith(updated)
	})

	timerWindow := display.New(fyneApp, display.Callbacks{
		OnStartPause: toggle,
		OnReset:      timer.Reset,
		OnSettings:   prefsWindow.Show,
	})
	flasher := animation.New(animation.DefaultConfig(), timerWindow.SetHighlight)
	defer flasher.Stop()

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:       timerWindow.Show,
			OnStartPause: toggle,
			OnReset:      timer.Reset,
			OnSettings:   prefsWindow.Show,
			OnQuit:       fyneApp.Quit,
		})
		timerWindow.Window().SetCloseIntercept(func() {
			timerWindow.Window().Hide()
		})
	} else {
		logger.Info("system tray unsupported on this platform")
		timerWindow.Window().SetMaster()
	}

	go func() {
		for event := range events {
			handleEvent(ctx, event, timerWindow, trayManager, flasher)
		}
	}()
	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	timerWindow.Render(intervaltimer.Event{
		Type:   intervaltimer.EventStateChange,
		State:  timer.State(),
		Config: timer.Config(),
	})
	timerWindow.Show()
	fyneApp.Run()

	logger.Debug("desktop app stopped")
	return nil
}

func handleEvent(ctx context.Context, event intervaltimer.Event, timerWindow *display.Window, trayManager *tray.Manager, flasher *animation.Engine) {
	timerWindow.Render(event)
	if trayManager != nil {
		trayManager.Render(event)
	}

	switch event.Type {
	case intervaltimer.EventPhaseComplete:
		flasher.Flash(ctx, animation.PatternPhaseChange)
	case intervaltimer.EventFinished:
		flasher.Flash(ctx, animation.PatternFinished)
	}
}
