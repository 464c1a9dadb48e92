package preferences

import (
	"fmt"

	"intervaltimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the settings UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(model.Configuration) error
	workLabel   *widget.Label
	seriesLabel *widget.Label
	restLabel   *widget.Label
	work        *widget.Slider
	series      *widget.Slider
	rest        *widget.Slider
	workRange   SliderRange
	seriesRange SliderRange
	restRange   SliderRange
	// syncing mutes OnChanged while UpdateConfiguration moves the sliders.
	syncing bool
}

// New creates a settings window. onSave receives the edited configuration;
// a returned error is shown to the user and keeps the window open.
func New(app fyne.App, config model.Configuration, onSave func(model.Configuration) error) *Window {
	window := app.NewWindow("Settings")

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		workLabel:   widget.NewLabel(""),
		seriesLabel: widget.NewLabel(""),
		restLabel:   widget.NewLabel(""),
		work:        newSlider(WorkRange),
		series:      newSlider(SeriesRange),
		rest:        newSlider(RestRange),
		workRange:   WorkRange,
		seriesRange: SeriesRange,
		restRange:   RestRange,
	}

	prefs.work.OnChanged = func(value float64) {
		if prefs.syncing {
			return
		}
		prefs.settings.WorkSeconds = prefs.workRange.Snap(value)
		prefs.refreshLabels()
	}
	prefs.series.OnChanged = func(value float64) {
		if prefs.syncing {
			return
		}
		prefs.settings.TotalSeries = prefs.seriesRange.Snap(value)
		prefs.refreshLabels()
	}
	prefs.rest.OnChanged = func(value float64) {
		if prefs.syncing {
			return
		}
		prefs.settings.RestSeconds = prefs.restRange.Snap(value)
		prefs.refreshLabels()
	}

	form := container.NewVBox(
		widget.NewLabelWithStyle("Workout", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.workLabel,
		prefs.work,
		prefs.seriesLabel,
		prefs.series,
		prefs.restLabel,
		prefs.rest,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 360))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs.UpdateConfiguration(config)
	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateConfiguration replaces the slider values. Slider bounds widen to fit
// values outside the stock ranges, and saving without moving a slider keeps
// its value exactly.
func (prefs *Window) UpdateConfiguration(config model.Configuration) {
	prefs.settings = FromConfiguration(config)
	prefs.workRange = WorkRange.Including(config.WorkSeconds)
	prefs.seriesRange = SeriesRange.Including(config.TotalSeries)
	prefs.restRange = RestRange.Including(config.RestSeconds)

	prefs.syncing = true
	setSlider(prefs.work, prefs.workRange, config.WorkSeconds)
	setSlider(prefs.series, prefs.seriesRange, config.TotalSeries)
	setSlider(prefs.rest, prefs.restRange, config.RestSeconds)
	prefs.syncing = false

	prefs.refreshLabels()
}

func (prefs *Window) refreshLabels() {
	prefs.workLabel.SetText(fmt.Sprintf("Work per series: %d s", prefs.settings.WorkSeconds))
	prefs.seriesLabel.SetText(fmt.Sprintf("Series: %d", prefs.settings.TotalSeries))
	prefs.restLabel.SetText(fmt.Sprintf("Rest between series: %d s", prefs.settings.RestSeconds))
}

func (prefs *Window) handleSave() {
	if prefs.onSave != nil {
		if err := prefs.onSave(prefs.settings.Configuration()); err != nil {
			dialog.ShowError(err, prefs.window)
			return
		}
	}
	prefs.window.Hide()
}

func setSlider(slider *widget.Slider, sliderRange SliderRange, value int) {
	slider.Min = sliderRange.Min
	slider.Max = sliderRange.Max
	slider.SetValue(float64(value))
}

func newSlider(sliderRange SliderRange) *widget.Slider {
	slider := widget.NewSlider(sliderRange.Min, sliderRange.Max)
	slider.Step = sliderRange.Step
	return slider
}
