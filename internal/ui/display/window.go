package display

import (
	"image/color"

	"intervaltimer/internal/core/intervaltimer"
	"intervaltimer/internal/core/model"
	"intervaltimer/internal/ui/presenter"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const windowTitle = "Interval Timer"

// Callbacks forwards user commands to the timer.
type Callbacks struct {
	OnStartPause func()
	OnReset      func()
	OnSettings   func()
}

var (
	workColor      = color.NRGBA{R: 236, G: 112, B: 160, A: 255}
	restColor      = color.NRGBA{R: 150, G: 110, B: 200, A: 255}
	finishedColor  = color.NRGBA{R: 96, G: 170, B: 120, A: 255}
	highlightColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	textColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Window shows the countdown and the workout controls.
type Window struct {
	window       fyne.Window
	background   *canvas.Rectangle
	countdown    *canvas.Text
	phaseLabel   *canvas.Text
	seriesLabel  *canvas.Text
	summaryLabel *widget.Label
	progress     *widget.ProgressBar
	startButton  *widget.Button
	resetButton  *widget.Button
	finishReset  *widget.Button
	active       fyne.CanvasObject
	finished     fyne.CanvasObject
	callbacks    Callbacks
	phaseColor   color.NRGBA
	highlighted  bool
}

// New creates the main timer window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow(windowTitle)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	background := canvas.NewRectangle(workColor)

	countdown := canvas.NewText("", textColor)
	countdown.Alignment = fyne.TextAlignCenter
	countdown.TextStyle = fyne.TextStyle{Bold: true}
	countdown.TextSize = 96

	phaseLabel := canvas.NewText("", textColor)
	phaseLabel.Alignment = fyne.TextAlignLeading
	phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	phaseLabel.TextSize = 28

	seriesLabel := canvas.NewText("", textColor)
	seriesLabel.Alignment = fyne.TextAlignTrailing
	seriesLabel.TextStyle = fyne.TextStyle{Bold: true}
	seriesLabel.TextSize = 28

	display := &Window{
		window:       window,
		background:   background,
		countdown:    countdown,
		phaseLabel:   phaseLabel,
		seriesLabel:  seriesLabel,
		summaryLabel: widget.NewLabel(""),
		progress:     widget.NewProgressBar(),
		callbacks:    callbacks,
		phaseColor:   workColor,
	}

	display.startButton = widget.NewButton("Start", display.handleStartPause)
	display.startButton.Importance = widget.HighImportance
	display.resetButton = widget.NewButton("Reset", display.handleReset)
	settingsButton := widget.NewButton("Settings", display.handleSettings)

	finishedTitle := canvas.NewText("Workout complete", textColor)
	finishedTitle.Alignment = fyne.TextAlignCenter
	finishedTitle.TextStyle = fyne.TextStyle{Bold: true}
	finishedTitle.TextSize = 48
	display.finishReset = widget.NewButton("Reset", display.handleReset)
	display.finishReset.Importance = widget.HighImportance

	header := container.New(&headerLayout{}, phaseLabel, seriesLabel)
	controls := container.NewGridWithColumns(3, display.startButton, display.resetButton, settingsButton)
	display.active = container.NewBorder(
		header,
		container.NewVBox(display.progress, display.summaryLabel, controls),
		nil,
		nil,
		container.New(&countdownLayout{}, countdown),
	)
	display.finished = container.NewCenter(container.NewVBox(finishedTitle, display.finishReset))
	display.finished.Hide()

	window.SetContent(container.NewStack(background, container.NewPadded(container.NewStack(display.active, display.finished))))
	window.Resize(fyne.NewSize(640, 420))
	return display
}

// Window returns the underlying fyne window.
func (display *Window) Window() fyne.Window {
	return display.window
}

// Show displays the window.
func (display *Window) Show() {
	display.window.Show()
}

// Render updates the window from a timer event. Safe from any goroutine.
func (display *Window) Render(event intervaltimer.Event) {
	fyne.Do(func() {
		display.renderUnsafe(event.State, event.Config)
	})
}

// SetHighlight toggles the flash background. Safe from any goroutine.
func (display *Window) SetHighlight(on bool) {
	fyne.Do(func() {
		display.setHighlightUnsafe(on)
	})
}

func (display *Window) renderUnsafe(state intervaltimer.RunState, config model.Configuration) {
	if state.IsFinished {
		display.active.Hide()
		display.finished.Show()
		display.phaseColor = finishedColor
		display.applyBackgroundUnsafe()
		display.window.SetTitle(windowTitle)
		return
	}
	display.finished.Hide()
	display.active.Show()

	display.phaseColor = workColor
	if state.Phase == intervaltimer.PhaseRest {
		display.phaseColor = restColor
	}
	display.applyBackgroundUnsafe()

	display.window.SetTitle(presenter.Clock(state.SecondsRemaining) + " " + windowTitle)
	display.countdown.Text = presenter.Countdown(state)
	display.countdown.Refresh()
	display.phaseLabel.Text = presenter.PhaseTitle(state)
	display.phaseLabel.Refresh()
	display.seriesLabel.Text = presenter.SeriesLabel(state, config)
	display.seriesLabel.Refresh()
	display.summaryLabel.SetText(presenter.ConfigSummary(config))
	display.progress.SetValue(presenter.Progress(state, config))

	if state.IsRunning {
		display.startButton.SetText("Pause")
	} else {
		display.startButton.SetText("Start")
	}
}

func (display *Window) setHighlightUnsafe(on bool) {
	display.highlighted = on
	display.applyBackgroundUnsafe()
}

func (display *Window) applyBackgroundUnsafe() {
	if display.highlighted {
		display.background.FillColor = highlightColor
	} else {
		display.background.FillColor = display.phaseColor
	}
	display.background.Refresh()
}

func (display *Window) handleStartPause() {
	if display.callbacks.OnStartPause != nil {
		display.callbacks.OnStartPause()
	}
}

func (display *Window) handleReset() {
	if display.callbacks.OnReset != nil {
		display.callbacks.OnReset()
	}
}

func (display *Window) handleSettings() {
	if display.callbacks.OnSettings != nil {
		display.callbacks.OnSettings()
	}
}

// countdownLayout centers the countdown and scales its text to the space available.
type countdownLayout struct{}

func (layout *countdownLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 1 {
		return
	}
	text, ok := objects[0].(*canvas.Text)
	if !ok {
		objects[0].Resize(size)
		return
	}

	textSize := size.Height * 0.6
	if maxWidth := size.Width / 4; textSize > maxWidth {
		textSize = maxWidth
	}
	if textSize < 24 {
		textSize = 24
	}
	if text.TextSize != textSize {
		text.TextSize = textSize
		text.Refresh()
	}

	minSize := text.MinSize()
	text.Move(fyne.NewPos(0, (size.Height-minSize.Height)/2))
	text.Resize(fyne.NewSize(size.Width, minSize.Height))
}

func (layout *countdownLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 1 {
		return fyne.NewSize(0, 0)
	}
	return fyne.NewSize(120, 60)
}

// headerLayout puts the phase title on the left and the series on the right.
type headerLayout struct{}

func (layout *headerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	half := size.Width / 2
	for i, object := range objects[:2] {
		minSize := object.MinSize()
		object.Move(fyne.NewPos(float32(i)*half, (size.Height-minSize.Height)/2))
		object.Resize(fyne.NewSize(half, minSize.Height))
	}
}

func (layout *headerLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	left := objects[0].MinSize()
	right := objects[1].MinSize()
	height := left.Height
	if right.Height > height {
		height = right.Height
	}
	return fyne.NewSize(left.Width+right.Width+20, height)
}
