package terminal

import (
	"io"
	"log/slog"
	"testing"

	"intervaltimer/internal/core/intervaltimer"
	"intervaltimer/internal/core/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualTicks struct {
	tick func()
}

func (ticks *manualTicks) Start(tick func()) { ticks.tick = tick }
func (ticks *manualTicks) Stop()             { ticks.tick = nil }

func newTestModel(t *testing.T, config model.Configuration) (Model, *intervaltimer.Timer, *manualTicks) {
	t.Helper()
	ticks := &manualTicks{}
	timer, err := intervaltimer.New(config, intervaltimer.Options{
		Ticks:  ticks,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	events := timer.Subscribe(64)
	t.Cleanup(timer.Close)
	return New(timer, events), timer, ticks
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func TestSpaceTogglesStartAndPause(t *testing.T) {
	m, timer, _ := newTestModel(t, model.DefaultConfiguration())

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, timer.State().IsRunning)
	assert.True(t, m.state.IsRunning)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, timer.State().IsRunning)
	assert.Contains(t, m.View(), "paused")
}

func TestAdjustKeysEditPendingConfiguration(t *testing.T) {
	m, timer, _ := newTestModel(t, model.DefaultConfiguration())

	m = press(t, m, runeKey("W"))
	m = press(t, m, runeKey("e"))
	m = press(t, m, runeKey("S"))

	assert.Equal(t, model.Configuration{WorkSeconds: 35, RestSeconds: 10, TotalSeries: 9}, timer.PendingConfig())
	assert.Equal(t, model.DefaultConfiguration(), timer.Config())
	assert.Contains(t, m.View(), "next: 9 x 35s work / 10s rest (r to apply)")

	m = press(t, m, runeKey("r"))
	assert.Equal(t, timer.PendingConfig(), timer.Config())
	assert.NotContains(t, m.View(), "r to apply")
	assert.Equal(t, 35, m.state.SecondsRemaining)
}

func TestInvalidAdjustShowsError(t *testing.T) {
	m, timer, _ := newTestModel(t, model.Configuration{WorkSeconds: 5, RestSeconds: 0, TotalSeries: 1})

	m = press(t, m, runeKey("w"))
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "work_seconds must be at least 1")
	assert.Equal(t, 5, timer.PendingConfig().WorkSeconds)

	m = press(t, m, runeKey("e"))
	assert.Contains(t, m.View(), "rest_seconds must not be negative")

	m = press(t, m, runeKey("r"))
	assert.NoError(t, m.err)
}

func TestEventsUpdateView(t *testing.T) {
	m, timer, ticks := newTestModel(t, model.Configuration{WorkSeconds: 1, RestSeconds: 0, TotalSeries: 1})
	timer.Start()
	ticks.tick()
	ticks.tick()

	updated, cmd := m.Update(eventMsg(intervaltimer.Event{
		Type:   intervaltimer.EventFinished,
		State:  timer.State(),
		Config: timer.Config(),
	}))
	m = updated.(Model)

	assert.NotNil(t, cmd)
	assert.True(t, m.state.IsFinished)
	assert.Contains(t, m.View(), "Workout complete")
}

func TestWaitForEventReadsChannel(t *testing.T) {
	events := make(chan intervaltimer.Event, 1)
	events <- intervaltimer.Event{Type: intervaltimer.EventStateChange}

	msg := waitForEvent(events)()
	assert.Equal(t, eventMsg(intervaltimer.Event{Type: intervaltimer.EventStateChange}), msg)

	close(events)
	assert.Equal(t, eventsClosedMsg{}, waitForEvent(events)())
	assert.Nil(t, waitForEvent(nil))
}

func TestQuitKey(t *testing.T) {
	m, _, _ := newTestModel(t, model.DefaultConfiguration())

	updated, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.View())
}

func TestWindowSizeClampsProgressWidth(t *testing.T) {
	m, _, _ := newTestModel(t, model.DefaultConfiguration())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, 60, updated.(Model).progress.Width)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 15, Height: 40})
	assert.Equal(t, 10, updated.(Model).progress.Width)
}
