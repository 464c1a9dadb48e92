package resources

import (
	"embed"
	"fmt"
	"sync"

	"intervaltimer/internal/core/intervaltimer"

	"fyne.io/fyne/v2"
)

const iconDir = "icon/"

// Icon file names.
const (
	IconRunning  = "running.svg"
	IconResting  = "resting.svg"
	IconPaused   = "paused.svg"
	IconFinished = "finished.svg"
)

//go:embed icon/*.svg
var iconFS embed.FS

var iconCache sync.Map

// Icon returns a Fyne resource for the given icon file.
func Icon(fileName string) (fyne.Resource, error) {
	return loadResource(iconFS, iconDir+fileName, &iconCache)
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(fileName string) fyne.Resource {
	resource, err := Icon(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// IconName picks the tray icon for a run state.
func IconName(state intervaltimer.RunState) string {
	switch {
	case state.IsFinished:
		return IconFinished
	case !state.IsRunning:
		return IconPaused
	case state.Phase == intervaltimer.PhaseRest:
		return IconResting
	default:
		return IconRunning
	}
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
