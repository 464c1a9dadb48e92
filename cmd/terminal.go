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
	"intervaltimer/internal/ui/terminal"

	tea "github.com/charmbracelet/bubbletea"
)

func runTerminal(ctx context.Context, config model.Configuration, logger *slog.Logger) error {
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

	program := tea.NewProgram(
		terminal.New(timer, timer.Subscribe(16)),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
