package presenter

import (
	"testing"

	"intervaltimer/internal/core/intervaltimer"
	"intervaltimer/internal/core/model"

	"github.com/stretchr/testify/assert"
)

var config = model.Configuration{WorkSeconds: 30, RestSeconds: 15, TotalSeries: 8}

func TestPhaseTitle(t *testing.T) {
	assert.Equal(t, "Work", PhaseTitle(intervaltimer.RunState{Phase: intervaltimer.PhaseWork}))
	assert.Equal(t, "Rest", PhaseTitle(intervaltimer.RunState{Phase: intervaltimer.PhaseRest}))
	assert.Equal(t, "Workout complete", PhaseTitle(intervaltimer.RunState{Phase: intervaltimer.PhaseWork, IsFinished: true}))
}

func TestLabels(t *testing.T) {
	state := intervaltimer.RunState{Phase: intervaltimer.PhaseWork, SecondsRemaining: 12, CurrentSeries: 2}

	assert.Equal(t, "Series 2/8", SeriesLabel(state, config))
	assert.Equal(t, "12 s", Countdown(state))
	assert.Equal(t, "0 s", Countdown(intervaltimer.RunState{SecondsRemaining: -3}))
	assert.Equal(t, "8 x 30s work / 15s rest", ConfigSummary(config))
}

func TestClock(t *testing.T) {
	assert.Equal(t, "00:00", Clock(0))
	assert.Equal(t, "00:59", Clock(59))
	assert.Equal(t, "01:05", Clock(65))
	assert.Equal(t, "00:00", Clock(-1))
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name  string
		state intervaltimer.RunState
		want  float64
	}{
		{name: "work start", state: intervaltimer.RunState{Phase: intervaltimer.PhaseWork, SecondsRemaining: 30}, want: 0},
		{name: "work middle", state: intervaltimer.RunState{Phase: intervaltimer.PhaseWork, SecondsRemaining: 15}, want: 0.5},
		{name: "rest end", state: intervaltimer.RunState{Phase: intervaltimer.PhaseRest, SecondsRemaining: 0}, want: 1},
		{name: "finished", state: intervaltimer.RunState{IsFinished: true}, want: 1},
		{name: "clamped", state: intervaltimer.RunState{Phase: intervaltimer.PhaseRest, SecondsRemaining: 40}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Progress(tt.state, config), 1e-9)
		})
	}

	zeroRest := model.Configuration{WorkSeconds: 10, RestSeconds: 0, TotalSeries: 1}
	assert.Equal(t, 1.0, Progress(intervaltimer.RunState{Phase: intervaltimer.PhaseRest}, zeroRest))
}

func TestStatus(t *testing.T) {
	running := intervaltimer.RunState{Phase: intervaltimer.PhaseRest, SecondsRemaining: 75, CurrentSeries: 3, IsRunning: true}
	assert.Equal(t, "Rest, Series 3/8", Status(running, config))

	running.IsRunning = false
	assert.Equal(t, "Rest, Series 3/8 (paused)", Status(running, config))

	assert.Equal(t, "done (8 series)", Status(intervaltimer.RunState{IsFinished: true, CurrentSeries: 8}, config))
}
