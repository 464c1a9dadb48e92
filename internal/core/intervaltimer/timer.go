package intervaltimer

import (
	"log/slog"
	"sync"
	"time"

	"intervaltimer/internal/core/model"
)

// TickSource delivers one tick per elapsed second until stopped.
type TickSource interface {
	Start(tick func())
	Stop()
}

// CuePlayer plays the phase-complete sound. Playback is fire-and-forget.
type CuePlayer interface {
	PlayPhaseCompleteCue()
}

// SleepController keeps the display awake while a workout runs.
type SleepController interface {
	SetDisplaySleepDisabled(disabled bool)
}

// Options wires the timer to its host capabilities. Nil fields become no-ops.
type Options struct {
	Ticks  TickSource
	Cue    CuePlayer
	Sleep  SleepController
	Logger *slog.Logger
}

// Timer is the interval workout state machine.
type Timer struct {
	mu      sync.Mutex
	config  model.Configuration
	pending model.Configuration
	state   RunState
	ticks   TickSource
	cue     CuePlayer
	sleep   SleepController
	logger  *slog.Logger
	events  []chan Event
	// generation changes whenever the tick stream is started or cancelled.
	generation uint64
	closed     bool
}

// New creates a Timer in the reset state for the given configuration.
func New(config model.Configuration, options Options) (*Timer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if options.Ticks == nil {
		options.Ticks = noopTicks{}
	}
	if options.Cue == nil {
		options.Cue = noopCue{}
	}
	if options.Sleep == nil {
		options.Sleep = noopSleep{}
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	timer := &Timer{
		config:  config,
		pending: config,
		ticks:   options.Ticks,
		cue:     options.Cue,
		sleep:   options.Sleep,
		logger:  options.Logger,
	}
	timer.resetStateLocked()
	return timer, nil
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed {
		close(ch)
		return ch
	}
	timer.events = append(timer.events, ch)
	return ch
}

// State returns the current run state.
func (timer *Timer) State() RunState {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.state
}

// Config returns the configuration of the current run.
func (timer *Timer) Config() model.Configuration {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.config
}

// PendingConfig returns the configuration the next Reset will apply.
func (timer *Timer) PendingConfig() model.Configuration {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.pending
}

// Configure validates and stores a configuration for the next Reset.
// An invalid configuration leaves the timer untouched.
func (timer *Timer) Configure(config model.Configuration) error {
	if err := config.Validate(); err != nil {
		return err
	}
	timer.mu.Lock()
	timer.pending = config
	timer.mu.Unlock()

	timer.logger.Debug("configuration accepted",
		"work_seconds", config.WorkSeconds,
		"rest_seconds", config.RestSeconds,
		"total_series", config.TotalSeries)
	return nil
}

// ResetWith configures and resets in one step.
func (timer *Timer) ResetWith(config model.Configuration) error {
	if err := config.Validate(); err != nil {
		return err
	}
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.pending = config
	timer.resetLocked()
	return nil
}

// Start begins or resumes the countdown. It does nothing while running or
// after the workout finished.
func (timer *Timer) Start() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed || timer.state.IsRunning {
		return
	}
	if timer.state.IsFinished {
		timer.logger.Debug("start ignored: workout finished")
		return
	}

	timer.state.IsRunning = true
	timer.generation++
	generation := timer.generation
	timer.ticks.Start(func() {
		timer.deliverTick(generation)
	})
	timer.sleep.SetDisplaySleepDisabled(true)

	timer.logger.Info("timer started",
		"phase", timer.state.Phase,
		"seconds_remaining", timer.state.SecondsRemaining,
		"series", timer.state.CurrentSeries)
	timer.emitLocked(EventStateChange)
}

// Pause freezes the countdown in place.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if !timer.state.IsRunning {
		return
	}
	timer.stopTicksLocked()

	timer.logger.Info("timer paused",
		"phase", timer.state.Phase,
		"seconds_remaining", timer.state.SecondsRemaining,
		"series", timer.state.CurrentSeries)
	timer.emitLocked(EventStateChange)
}

// Reset stops the countdown and applies the pending configuration.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.resetLocked()
}

// Tick advances the timer by one second.
func (timer *Timer) Tick() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.tickLocked()
}

// Close stops ticking and closes all observer channels.
func (timer *Timer) Close() {
	timer.mu.Lock()
	if timer.closed {
		timer.mu.Unlock()
		return
	}
	if timer.state.IsRunning {
		timer.stopTicksLocked()
	}
	timer.closed = true
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (timer *Timer) deliverTick(generation uint64) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if generation != timer.generation || !timer.state.IsRunning {
		return
	}
	timer.tickLocked()
}

func (timer *Timer) tickLocked() {
	if timer.state.IsFinished {
		return
	}

	switch timer.state.Phase {
	case PhaseWork:
		if timer.state.SecondsRemaining > 0 {
			timer.state.SecondsRemaining--
			timer.emitLocked(EventStateChange)
			return
		}
		timer.completePhaseLocked()
		timer.state.CurrentSeries++
		if timer.state.CurrentSeries > timer.config.TotalSeries {
			timer.finishLocked()
			return
		}
		if timer.config.RestSeconds == 0 {
			timer.enterWorkLocked()
		} else {
			timer.state.Phase = PhaseRest
			timer.state.SecondsRemaining = timer.config.RestSeconds
		}
		timer.emitLocked(EventStateChange)
	case PhaseRest:
		if timer.state.SecondsRemaining > 0 {
			timer.state.SecondsRemaining--
			timer.emitLocked(EventStateChange)
			return
		}
		timer.completePhaseLocked()
		timer.enterWorkLocked()
		timer.emitLocked(EventStateChange)
	}
}

func (timer *Timer) completePhaseLocked() {
	timer.cue.PlayPhaseCompleteCue()
	timer.logger.Debug("phase complete",
		"phase", timer.state.Phase,
		"series", timer.state.CurrentSeries)
	timer.emitLocked(EventPhaseComplete)
}

func (timer *Timer) finishLocked() {
	// The series counter stays on the last series; it never exceeds the total.
	timer.state.CurrentSeries = timer.config.TotalSeries
	timer.state.SecondsRemaining = 0
	timer.stopTicksLocked()
	timer.state.IsFinished = true

	timer.logger.Info("workout finished", "total_series", timer.config.TotalSeries)
	timer.emitLocked(EventFinished)
}

func (timer *Timer) enterWorkLocked() {
	timer.state.Phase = PhaseWork
	timer.state.SecondsRemaining = timer.config.WorkSeconds
}

func (timer *Timer) resetLocked() {
	if timer.state.IsRunning {
		timer.stopTicksLocked()
	}
	timer.config = timer.pending
	timer.resetStateLocked()

	timer.logger.Info("timer reset",
		"work_seconds", timer.config.WorkSeconds,
		"rest_seconds", timer.config.RestSeconds,
		"total_series", timer.config.TotalSeries)
	timer.emitLocked(EventStateChange)
}

func (timer *Timer) resetStateLocked() {
	timer.state = RunState{
		Phase:            PhaseWork,
		SecondsRemaining: timer.config.WorkSeconds,
		CurrentSeries:    1,
	}
}

func (timer *Timer) stopTicksLocked() {
	timer.state.IsRunning = false
	timer.generation++
	timer.ticks.Stop()
	timer.sleep.SetDisplaySleepDisabled(false)
}

func (timer *Timer) emitLocked(eventType EventType) {
	event := Event{
		Type:   eventType,
		State:  timer.state,
		Config: timer.config,
		At:     time.Now(),
	}
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}

type noopTicks struct{}

func (noopTicks) Start(func()) {}
func (noopTicks) Stop()        {}

type noopCue struct{}

func (noopCue) PlayPhaseCompleteCue() {}

type noopSleep struct{}

func (noopSleep) SetDisplaySleepDisabled(bool) {}
