package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"intervaltimer/internal/core/model"
	"intervaltimer/internal/platform"

	"gopkg.in/yaml.v3"
)

const presetFileName = "preset.yaml"

// yamlPreset uses pointers so an absent key keeps the default while an
// explicit zero rest is still honored.
type yamlPreset struct {
	WorkSeconds *int `yaml:"work_seconds"`
	RestSeconds *int `yaml:"rest_seconds"`
	TotalSeries *int `yaml:"total_series"`
}

// LoadPreset reads a workout preset from a YAML file. Keys missing from the
// file keep their default values. The file is never written.
//
// The result is not validated: callers apply their overrides first and
// validate the merged configuration.
func LoadPreset(path string) (model.Configuration, error) {
	config := model.DefaultConfiguration()

	rawData, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read preset file: %w", err)
	}
	return parsePreset(rawData)
}

// LoadDefaultPreset reads <config dir>/<appName>/preset.yaml.
// If the file does not exist, the default configuration is returned.
func LoadDefaultPreset(appName string) (model.Configuration, error) {
	path, err := DefaultPresetPath(appName)
	if err != nil {
		return model.DefaultConfiguration(), err
	}

	config, err := LoadPreset(path)
	if errors.Is(err, os.ErrNotExist) {
		return model.DefaultConfiguration(), nil
	}
	return config, err
}

// DefaultPresetPath returns where LoadDefaultPreset looks for a preset.
func DefaultPresetPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve preset path: %w", err)
	}
	return filepath.Join(configDir, appName, presetFileName), nil
}

func parsePreset(rawData []byte) (model.Configuration, error) {
	config := model.DefaultConfiguration()

	var fileData yamlPreset
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse preset yaml: %w", err)
	}

	applyYamlPreset(&config, fileData)
	return config, nil
}

func applyYamlPreset(config *model.Configuration, fileData yamlPreset) {
	if fileData.WorkSeconds != nil {
		config.WorkSeconds = *fileData.WorkSeconds
	}
	if fileData.RestSeconds != nil {
		config.RestSeconds = *fileData.RestSeconds
	}
	if fileData.TotalSeries != nil {
		config.TotalSeries = *fileData.TotalSeries
	}
}
