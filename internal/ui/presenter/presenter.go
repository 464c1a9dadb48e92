// Package presenter turns timer state into the text shown by the desktop and
// terminal front ends.
package presenter

import (
	"fmt"

	"intervaltimer/internal/core/intervaltimer"
	"intervaltimer/internal/core/model"
)

// PhaseTitle returns the headline for the current phase.
func PhaseTitle(state intervaltimer.RunState) string {
	if state.IsFinished {
		return "Workout complete"
	}
	if state.Phase == intervaltimer.PhaseRest {
		return "Rest"
	}
	return "Work"
}

// SeriesLabel returns "Series 2/8".
func SeriesLabel(state intervaltimer.RunState, config model.Configuration) string {
	return fmt.Sprintf("Series %d/%d", state.CurrentSeries, config.TotalSeries)
}

// Countdown returns the big countdown text, e.g. "12 s".
func Countdown(state intervaltimer.RunState) string {
	seconds := state.SecondsRemaining
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d s", seconds)
}

// Clock formats whole seconds as mm:ss.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// PhaseLength returns the configured length of the current phase in seconds.
func PhaseLength(state intervaltimer.RunState, config model.Configuration) int {
	if state.Phase == intervaltimer.PhaseRest {
		return config.RestSeconds
	}
	return config.WorkSeconds
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func Progress(state intervaltimer.RunState, config model.Configuration) float64 {
	if state.IsFinished {
		return 1
	}
	total := PhaseLength(state, config)
	if total <= 0 {
		return 1
	}
	progress := float64(total-state.SecondsRemaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Status returns a one-line summary for the tray menu.
func Status(state intervaltimer.RunState, config model.Configuration) string {
	if state.IsFinished {
		return fmt.Sprintf("done (%d series)", config.TotalSeries)
	}
	status := fmt.Sprintf("%s, %s", PhaseTitle(state), SeriesLabel(state, config))
	if !state.IsRunning {
		status += " (paused)"
	}
	return status
}

// ConfigSummary describes a configuration, e.g. "8 x 30s work / 15s rest".
func ConfigSummary(config model.Configuration) string {
	return fmt.Sprintf("%d x %ds work / %ds rest", config.TotalSeries, config.WorkSeconds, config.RestSeconds)
}
