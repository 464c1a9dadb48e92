package intervaltimer

import (
	"time"

	"intervaltimer/internal/core/model"
)

// Phase represents the current countdown mode.
type Phase string

const (
	PhaseWork Phase = "work"
	PhaseRest Phase = "rest"
)

// RunState is a snapshot of the mutable timer state.
type RunState struct {
	Phase            Phase
	SecondsRemaining int
	CurrentSeries    int
	IsRunning        bool
	IsFinished       bool
}

// EventType defines the type of timer event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventPhaseComplete EventType = "phase_complete"
	EventFinished      EventType = "finished"
)

// Event represents a timer update for observers.
type Event struct {
	Type EventType
	// State is the full run state after the mutation. For EventPhaseComplete
	// it is the state at the moment the phase ran out.
	State  RunState
	Config model.Configuration
	At     time.Time
}
