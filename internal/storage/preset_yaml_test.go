package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"intervaltimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPresetFullDocument(t *testing.T) {
	path := writePreset(t, "work_seconds: 45\nrest_seconds: 20\ntotal_series: 5\n")

	config, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, model.Configuration{WorkSeconds: 45, RestSeconds: 20, TotalSeries: 5}, config)
}

func TestLoadPresetKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writePreset(t, "total_series: 3\n")

	config, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, model.Configuration{WorkSeconds: 30, RestSeconds: 15, TotalSeries: 3}, config)
}

func TestLoadPresetHonorsZeroRest(t *testing.T) {
	path := writePreset(t, "rest_seconds: 0\n")

	config, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, 0, config.RestSeconds)
}

func TestLoadPresetKeepsOutOfRangeValues(t *testing.T) {
	path := writePreset(t, "work_seconds: 0\ntotal_series: -2\n")

	config, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, model.Configuration{WorkSeconds: 0, RestSeconds: 15, TotalSeries: -2}, config)
	assert.True(t, errors.Is(config.Validate(), model.ErrInvalidConfiguration))
}

func TestLoadPresetRejectsMalformedYAML(t *testing.T) {
	path := writePreset(t, "work_seconds: [unterminated\n")

	_, err := LoadPreset(path)
	assert.ErrorContains(t, err, "parse preset yaml")
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := LoadPreset(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDefaultPreset(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", configHome)

	config, err := LoadDefaultPreset("intervaltimer-test")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfiguration(), config)

	path, err := DefaultPresetPath("intervaltimer-test")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("work_seconds: 50\n"), 0o644))

	config, err = LoadDefaultPreset("intervaltimer-test")
	require.NoError(t, err)
	assert.Equal(t, 50, config.WorkSeconds)
}
