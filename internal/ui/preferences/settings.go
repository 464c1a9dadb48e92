package preferences

import (
	"math"

	"intervaltimer/internal/core/model"
)

// SliderRange bounds one settings slider.
type SliderRange struct {
	Min  float64
	Max  float64
	Step float64
}

// Slider ranges of the settings window.
var (
	WorkRange   = SliderRange{Min: 10, Max: 60, Step: 5}
	SeriesRange = SliderRange{Min: 1, Max: 10, Step: 1}
	RestRange   = SliderRange{Min: 0, Max: 60, Step: 5}
)

// Snap rounds a slider value to the nearest step and clamps it to the range.
func (sliderRange SliderRange) Snap(value float64) int {
	if sliderRange.Step > 0 {
		value = math.Round(value/sliderRange.Step) * sliderRange.Step
	}
	if value < sliderRange.Min {
		value = sliderRange.Min
	}
	if value > sliderRange.Max {
		value = sliderRange.Max
	}
	return int(value)
}

// Including widens the range so value lies inside it. Values that come from
// the command line may sit outside the stock slider bounds.
func (sliderRange SliderRange) Including(value int) SliderRange {
	if float64(value) < sliderRange.Min {
		sliderRange.Min = float64(value)
	}
	if float64(value) > sliderRange.Max {
		sliderRange.Max = float64(value)
	}
	return sliderRange
}

// Settings defines the values edited in the settings window.
type Settings struct {
	WorkSeconds int
	RestSeconds int
	TotalSeries int
}

// FromConfiguration copies a configuration as is. A value off the slider grid
// stays untouched until its slider is moved.
func FromConfiguration(config model.Configuration) Settings {
	return Settings{
		WorkSeconds: config.WorkSeconds,
		RestSeconds: config.RestSeconds,
		TotalSeries: config.TotalSeries,
	}
}

// Configuration converts settings to a timer configuration.
func (settings Settings) Configuration() model.Configuration {
	return model.Configuration{
		WorkSeconds: settings.WorkSeconds,
		RestSeconds: settings.RestSeconds,
		TotalSeries: settings.TotalSeries,
	}
}
