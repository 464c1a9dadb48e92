//go:build !linux && !darwin && !windows

package platform

import (
	"log/slog"
	"path/filepath"
)

func newWakeLock(logger *slog.Logger) WakeLock {
	return &unsupportedWakeLock{logger: logger}
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
