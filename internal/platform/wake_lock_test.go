package platform

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsupportedWakeLockWarnsOnce(t *testing.T) {
	var output bytes.Buffer
	lock := &unsupportedWakeLock{logger: slog.New(slog.NewTextHandler(&output, nil))}

	lock.SetDisplaySleepDisabled(false)
	assert.Empty(t, output.String())

	lock.SetDisplaySleepDisabled(true)
	lock.SetDisplaySleepDisabled(false)
	lock.SetDisplaySleepDisabled(true)

	assert.Equal(t, 1, strings.Count(output.String(), ErrWakeLockUnsupported.Error()))
}

func TestNewWakeLockAcceptsNilLogger(t *testing.T) {
	assert.NotNil(t, NewWakeLock(nil))
}

func TestConfigDirResolves(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := ConfigDir()
	assert.NoError(t, err)
	assert.NotEmpty(t, dir)
}
