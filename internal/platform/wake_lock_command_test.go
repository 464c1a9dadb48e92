//go:build linux || darwin

package platform

import (
	"io"
	"log/slog"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandWakeLockHoldsAndReleasesChild(t *testing.T) {
	path, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep binary not available")
	}
	lock := newCommandWakeLock(path, []string{"60"}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	lock.SetDisplaySleepDisabled(true)
	assert.True(t, lock.held())
	first := lock.cmd

	lock.SetDisplaySleepDisabled(true)
	assert.Same(t, first, lock.cmd)

	lock.SetDisplaySleepDisabled(false)
	assert.False(t, lock.held())
	lock.SetDisplaySleepDisabled(false)
	assert.False(t, lock.held())
}

func TestCommandWakeLockMissingBinary(t *testing.T) {
	lock := newCommandWakeLock("/nonexistent/inhibitor", nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	lock.SetDisplaySleepDisabled(true)
	assert.False(t, lock.held())
}
