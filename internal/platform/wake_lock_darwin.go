package platform

import (
	"log/slog"
	"os/exec"
	"path/filepath"
)

func newWakeLock(logger *slog.Logger) WakeLock {
	path, err := exec.LookPath("caffeinate")
	if err != nil {
		return &unsupportedWakeLock{logger: logger}
	}
	// -d keeps the display awake, -i prevents idle system sleep.
	return newCommandWakeLock(path, []string{"-d", "-i"}, logger)
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}
