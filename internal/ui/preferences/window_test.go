package preferences

import (
	"errors"
	"testing"

	"intervaltimer/internal/core/model"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestWindowShowsConfiguration(t *testing.T) {
	app := test.NewTempApp(t)

	prefs := New(app, model.Configuration{WorkSeconds: 45, RestSeconds: 20, TotalSeries: 4}, nil)

	assert.Equal(t, Settings{WorkSeconds: 45, RestSeconds: 20, TotalSeries: 4}, prefs.settings)
	assert.Equal(t, "Work per series: 45 s", prefs.workLabel.Text)
	assert.Equal(t, "Series: 4", prefs.seriesLabel.Text)
	assert.Equal(t, "Rest between series: 20 s", prefs.restLabel.Text)
}

func TestSlidersSnapEditedValues(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := New(app, model.DefaultConfiguration(), nil)

	prefs.work.OnChanged(43)
	prefs.rest.OnChanged(0)
	prefs.series.OnChanged(3)

	assert.Equal(t, Settings{WorkSeconds: 45, RestSeconds: 0, TotalSeries: 3}, prefs.settings)
	assert.Equal(t, "Rest between series: 0 s", prefs.restLabel.Text)
}

func TestSaveForwardsConfiguration(t *testing.T) {
	app := test.NewTempApp(t)
	var saved []model.Configuration
	prefs := New(app, model.DefaultConfiguration(), func(config model.Configuration) error {
		saved = append(saved, config)
		return nil
	})

	prefs.series.OnChanged(2)
	prefs.handleSave()

	assert.Equal(t, []model.Configuration{{WorkSeconds: 30, RestSeconds: 15, TotalSeries: 2}}, saved)
}

func TestSaveErrorKeepsSettings(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := New(app, model.DefaultConfiguration(), func(model.Configuration) error {
		return errors.New("rejected")
	})
	prefs.Show()

	prefs.work.OnChanged(50)
	prefs.handleSave()

	assert.Equal(t, 50, prefs.settings.WorkSeconds)
}

func TestSaveKeepsValuesOutsideSliderRanges(t *testing.T) {
	app := test.NewTempApp(t)
	config := model.Configuration{WorkSeconds: 5, RestSeconds: 7, TotalSeries: 20}
	var saved []model.Configuration
	prefs := New(app, config, func(updated model.Configuration) error {
		saved = append(saved, updated)
		return nil
	})

	prefs.handleSave()

	assert.Equal(t, []model.Configuration{config}, saved)
	assert.Equal(t, 5.0, prefs.work.Min)
	assert.Equal(t, 20.0, prefs.series.Max)
	assert.Equal(t, "Series: 20", prefs.seriesLabel.Text)
}

func TestMovedSliderSnapsWithinWidenedRange(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := New(app, model.Configuration{WorkSeconds: 5, RestSeconds: 15, TotalSeries: 20}, nil)

	prefs.series.OnChanged(18)
	prefs.work.OnChanged(6)

	assert.Equal(t, Settings{WorkSeconds: 5, RestSeconds: 15, TotalSeries: 18}, prefs.settings)
}
