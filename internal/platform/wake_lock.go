package platform

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrWakeLockUnsupported indicates the display cannot be kept awake on this system.
var ErrWakeLockUnsupported = errors.New("display wake lock unsupported")

// WakeLock keeps the display from sleeping while a workout runs.
// Failures are logged; the workout continues either way.
type WakeLock interface {
	SetDisplaySleepDisabled(disabled bool)
}

// NewWakeLock returns a platform-specific wake lock.
func NewWakeLock(logger *slog.Logger) WakeLock {
	if logger == nil {
		logger = slog.Default()
	}
	return newWakeLock(logger.With("component", "wake_lock"))
}

type unsupportedWakeLock struct {
	logger *slog.Logger
	once   sync.Once
}

func (lock *unsupportedWakeLock) SetDisplaySleepDisabled(disabled bool) {
	if !disabled {
		return
	}
	lock.once.Do(func() {
		lock.logger.Warn("display may sleep during workout", "error", ErrWakeLockUnsupported)
	})
}
