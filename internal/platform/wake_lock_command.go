//go:build linux || darwin

package platform

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"sync"
)

// commandWakeLock holds an inhibitor child process for as long as the lock is held.
type commandWakeLock struct {
	mu     sync.Mutex
	path   string
	args   []string
	logger *slog.Logger
	cmd    *exec.Cmd
}

func newCommandWakeLock(path string, args []string, logger *slog.Logger) *commandWakeLock {
	return &commandWakeLock{
		path:   path,
		args:   args,
		logger: logger,
	}
}

func (lock *commandWakeLock) SetDisplaySleepDisabled(disabled bool) {
	lock.mu.Lock()
	defer lock.mu.Unlock()

	if disabled {
		if lock.cmd != nil {
			return
		}
		cmd := exec.Command(lock.path, lock.args...)
		if err := cmd.Start(); err != nil {
			lock.logger.Warn("acquire wake lock", "command", lock.path, "error", err)
			return
		}
		lock.cmd = cmd
		go func() {
			_ = cmd.Wait()
		}()
		lock.logger.Debug("wake lock acquired", "pid", cmd.Process.Pid)
		return
	}

	if lock.cmd == nil {
		return
	}
	if err := lock.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		lock.logger.Warn("release wake lock", "pid", lock.cmd.Process.Pid, "error", err)
	}
	lock.cmd = nil
	lock.logger.Debug("wake lock released")
}

func (lock *commandWakeLock) held() bool {
	lock.mu.Lock()
	defer lock.mu.Unlock()
	return lock.cmd != nil
}
