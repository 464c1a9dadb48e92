package audio

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, streamer beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buffer := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := streamer.Stream(buffer)
		out = append(out, buffer[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never ended")
	return nil
}

func TestDefaultChimeIsFiniteAndBounded(t *testing.T) {
	rate := beep.SampleRate(44100)
	config := DefaultChime()

	streamer, err := NewChime(config, rate)
	require.NoError(t, err)

	samples := drain(t, streamer)
	assert.Equal(t, config.length(rate), len(samples))
	for i, sample := range samples {
		if sample[0] < -1 || sample[0] > 1 || sample[1] < -1 || sample[1] > 1 {
			t.Fatalf("sample %d out of range: %v", i, sample)
		}
	}
	assert.InDelta(t, 0, samples[0][0], 1e-9, "attack should start silent")
	assert.NoError(t, streamer.Err())
}

func TestChimeGapIsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	config := ChimeConfig{
		Notes: []Note{
			{Frequency: 440, Duration: 50 * time.Millisecond},
			{Frequency: 660, Duration: 50 * time.Millisecond},
		},
		Gap:     25 * time.Millisecond,
		Attack:  time.Millisecond,
		Release: 5 * time.Millisecond,
		Volume:  1,
	}

	streamer, err := NewChime(config, rate)
	require.NoError(t, err)
	samples := drain(t, streamer)

	first := rate.N(50 * time.Millisecond)
	gap := rate.N(25 * time.Millisecond)
	for _, sample := range samples[first : first+gap] {
		assert.Equal(t, [2]float64{0, 0}, sample)
	}
}

func TestChimeRejectsBadNotes(t *testing.T) {
	rate := beep.SampleRate(8000)

	_, err := NewChime(ChimeConfig{}, rate)
	assert.Error(t, err)

	_, err = NewChime(ChimeConfig{Notes: []Note{{Frequency: 6000, Duration: time.Millisecond}}}, rate)
	assert.Error(t, err)
}

func TestEnvelopeShortNoteSplitsRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := newEnvelope(beep.Silence(-1), 10*time.Millisecond, 20*time.Millisecond, 20*time.Millisecond, rate)

	assert.Equal(t, 5, env.attackSamples)
	assert.Equal(t, 5, env.releaseSamples)
	assert.Equal(t, 10, env.totalSamples)
}

func TestCuePlayerWithoutSpeakerIsSilent(t *testing.T) {
	player := NewCuePlayer(DefaultChime(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NotPanics(t, func() {
		player.PlayPhaseCompleteCue()
		player.PlayPhaseCompleteCue()
		player.Close()
	})
	assert.Equal(t, 2, player.played())
	assert.False(t, player.Available())
}
