package animation

import "time"

// DefaultConfig returns a short flash that fits inside the one-second tick.
func DefaultConfig() Config {
	return Config{
		OnDuration: Range{
			Min: 120 * time.Millisecond,
			Max: 160 * time.Millisecond,
		},
		OffDuration: Range{
			Min: 80 * time.Millisecond,
			Max: 120 * time.Millisecond,
		},
		PhaseFlashes:    3,
		FinishedFlashes: 6,
	}
}
