// Package terminal is the bubbletea front end of the interval timer.
//
// The model renders timer events and forwards key presses into the timer.
// Configuration edits go to the pending configuration and take effect on the
// next reset.
package terminal

import (
	"strings"

	"intervaltimer/internal/core/intervaltimer"
	"intervaltimer/internal/core/model"
	"intervaltimer/internal/ui/presenter"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	secondsStep = 5
	seriesStep  = 1
)

// Timer is the part of the interval timer the terminal UI drives.
type Timer interface {
	Start()
	Pause()
	Reset()
	Configure(config model.Configuration) error
	State() intervaltimer.RunState
	Config() model.Configuration
	PendingConfig() model.Configuration
}

// eventMsg carries one timer event into the update loop.
type eventMsg intervaltimer.Event

// eventsClosedMsg reports that the timer closed its event stream.
type eventsClosedMsg struct{}

// Model is the bubbletea model.
type Model struct {
	timer    Timer
	events   <-chan intervaltimer.Event
	state    intervaltimer.RunState
	config   model.Configuration
	pending  model.Configuration
	err      error
	keys     keyMap
	help     help.Model
	progress progress.Model
	styles   Styles
	quitting bool
}

// New creates the model. events should be a subscription on the same timer.
func New(timer Timer, events <-chan intervaltimer.Event) Model {
	bar := progress.New(progress.WithGradient("#EC70A0", "#966EC8"), progress.WithoutPercentage())
	bar.Width = 40

	m := Model{
		timer:    timer,
		events:   events,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: bar,
		styles:   NewStyles(),
	}
	m.sync()
	return m
}

// Init starts listening for timer events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.state = msg.State
		m.config = msg.Config
		m.pending = m.timer.PendingConfig()
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		width := msg.Width - 12
		if width > 60 {
			width = 60
		}
		if width < 10 {
			width = 10
		}
		m.progress.Width = width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.StartPause):
		if m.timer.State().IsRunning {
			m.timer.Pause()
		} else {
			m.timer.Start()
		}
	case key.Matches(msg, m.keys.Reset):
		m.timer.Reset()
		m.err = nil
	case key.Matches(msg, m.keys.WorkDown):
		m.adjust(func(config *model.Configuration) { config.WorkSeconds -= secondsStep })
	case key.Matches(msg, m.keys.WorkUp):
		m.adjust(func(config *model.Configuration) { config.WorkSeconds += secondsStep })
	case key.Matches(msg, m.keys.RestDown):
		m.adjust(func(config *model.Configuration) { config.RestSeconds -= secondsStep })
	case key.Matches(msg, m.keys.RestUp):
		m.adjust(func(config *model.Configuration) { config.RestSeconds += secondsStep })
	case key.Matches(msg, m.keys.SeriesDown):
		m.adjust(func(config *model.Configuration) { config.TotalSeries -= seriesStep })
	case key.Matches(msg, m.keys.SeriesUp):
		m.adjust(func(config *model.Configuration) { config.TotalSeries += seriesStep })
	default:
		return m, nil
	}
	m.sync()
	return m, nil
}

func (m *Model) adjust(edit func(*model.Configuration)) {
	config := m.timer.PendingConfig()
	edit(&config)
	m.err = m.timer.Configure(config)
}

// sync reads the timer directly so a command is visible before its event arrives.
func (m *Model) sync() {
	m.state = m.timer.State()
	m.config = m.timer.Config()
	m.pending = m.timer.PendingConfig()
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.state.IsFinished {
		b.WriteString(m.styles.Finished.Render(presenter.PhaseTitle(m.state)))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Summary.Render(presenter.ConfigSummary(m.config)))
	} else {
		title := m.styles.Work
		if m.state.Phase == intervaltimer.PhaseRest {
			title = m.styles.Rest
		}
		header := title.Render(presenter.PhaseTitle(m.state)) + "   " +
			m.styles.Series.Render(presenter.SeriesLabel(m.state, m.config))
		if !m.state.IsRunning {
			header += m.styles.Summary.Render("   paused")
		}
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString(m.styles.Countdown.Render(presenter.Countdown(m.state)))
		b.WriteString("\n")
		b.WriteString(m.progress.ViewAs(presenter.Progress(m.state, m.config)))
		b.WriteString("\n")
		b.WriteString(m.styles.Summary.Render(presenter.ConfigSummary(m.config)))
	}

	if m.pending != m.config {
		b.WriteString("\n")
		b.WriteString(m.styles.Pending.Render("next: " + presenter.ConfigSummary(m.pending) + " (r to apply)"))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.err.Error()))
	}

	return m.styles.Frame.Render(b.String()) + "\n" + m.help.ShortHelpView(m.keys.help()) + "\n"
}

func waitForEvent(events <-chan intervaltimer.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}
