package platform

import (
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"
)

const (
	esContinuous      = 0x80000000
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
)

var procSetThreadExecutionState = syscall.NewLazyDLL("kernel32.dll").NewProc("SetThreadExecutionState")

// windowsWakeLock pins one OS thread for the lifetime of the lock, because
// the execution state belongs to the thread that set it.
type windowsWakeLock struct {
	mu      sync.Mutex
	logger  *slog.Logger
	release chan struct{}
}

func newWakeLock(logger *slog.Logger) WakeLock {
	return &windowsWakeLock{logger: logger}
}

func (lock *windowsWakeLock) SetDisplaySleepDisabled(disabled bool) {
	lock.mu.Lock()
	defer lock.mu.Unlock()

	if disabled {
		if lock.release != nil {
			return
		}
		release := make(chan struct{})
		lock.release = release
		go lock.hold(release)
		return
	}

	if lock.release == nil {
		return
	}
	close(lock.release)
	lock.release = nil
}

func (lock *windowsWakeLock) hold(release <-chan struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	result, _, err := procSetThreadExecutionState.Call(uintptr(esContinuous | esSystemRequired | esDisplayRequired))
	if result == 0 {
		lock.logger.Warn("acquire wake lock", "error", err)
		<-release
		return
	}
	lock.logger.Debug("wake lock acquired")

	<-release
	procSetThreadExecutionState.Call(uintptr(esContinuous))
	lock.logger.Debug("wake lock released")
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}
