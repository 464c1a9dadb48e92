package platform

import (
	"log/slog"
	"os/exec"
	"path/filepath"
)

func newWakeLock(logger *slog.Logger) WakeLock {
	path, err := exec.LookPath("systemd-inhibit")
	if err != nil {
		return &unsupportedWakeLock{logger: logger}
	}
	return newCommandWakeLock(path, []string{
		"--what=idle",
		"--who=intervaltimer",
		"--why=Workout in progress",
		"--mode=block",
		"sleep", "infinity",
	}, logger)
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
