package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Note is one tone of the phase-complete chime.
type Note struct {
	Frequency float64
	Duration  time.Duration
}

// ChimeConfig describes the phase-complete chime.
type ChimeConfig struct {
	Notes   []Note
	Gap     time.Duration
	Attack  time.Duration
	Release time.Duration
	Volume  float64
}

// DefaultChime returns a short rising two-note chime (C6, E6).
func DefaultChime() ChimeConfig {
	return ChimeConfig{
		Notes: []Note{
			{Frequency: 1046.50, Duration: 120 * time.Millisecond},
			{Frequency: 1318.51, Duration: 200 * time.Millisecond},
		},
		Gap:     40 * time.Millisecond,
		Attack:  5 * time.Millisecond,
		Release: 60 * time.Millisecond,
		Volume:  0.5,
	}
}

// length returns the chime length in samples at the given rate.
func (config ChimeConfig) length(rate beep.SampleRate) int {
	total := 0
	for i, note := range config.Notes {
		if i > 0 {
			total += rate.N(config.Gap)
		}
		total += rate.N(note.Duration)
	}
	return total
}

// NewChime builds a finite streamer for the chime.
func NewChime(config ChimeConfig, rate beep.SampleRate) (beep.Streamer, error) {
	if len(config.Notes) == 0 {
		return nil, fmt.Errorf("build chime: no notes")
	}

	parts := make([]beep.Streamer, 0, len(config.Notes)*2)
	for i, note := range config.Notes {
		if i > 0 && config.Gap > 0 {
			parts = append(parts, beep.Silence(rate.N(config.Gap)))
		}
		tone, err := generators.SineTone(rate, note.Frequency)
		if err != nil {
			return nil, fmt.Errorf("build chime note %.2fHz: %w", note.Frequency, err)
		}
		shaped := newEnvelope(beep.Take(rate.N(note.Duration), tone), note.Duration, config.Attack, config.Release, rate)
		parts = append(parts, shaped)
	}

	return newVolume(beep.Seq(parts...), config.Volume), nil
}

// envelope applies linear attack and release ramps to a finite stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(streamer beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	attackSamples := rate.N(attack)
	releaseSamples := rate.N(release)
	if attackSamples+releaseSamples > total {
		attackSamples = total / 2
		releaseSamples = total - attackSamples
	}
	return &envelope{
		streamer:       streamer,
		attackSamples:  attackSamples,
		releaseSamples: releaseSamples,
		totalSamples:   total,
	}
}

func (env *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := env.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if env.position >= env.totalSamples {
			return i, false
		}

		gain := 1.0
		if env.position < env.attackSamples {
			gain = float64(env.position) / float64(env.attackSamples)
		}
		releaseStart := env.totalSamples - env.releaseSamples
		if env.releaseSamples > 0 && env.position >= releaseStart {
			gain = float64(env.totalSamples-env.position) / float64(env.releaseSamples)
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		env.position++
	}
	return n, ok
}

func (env *envelope) Err() error {
	return env.streamer.Err()
}

// newVolume scales linearly; zero or less is silent.
func newVolume(streamer beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: streamer, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: streamer, Base: 2, Volume: math.Log2(volume)}
}
