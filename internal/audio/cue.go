package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// CuePlayer plays the phase-complete chime through the system speaker.
// Without an audio device it stays silent.
type CuePlayer struct {
	mu          sync.Mutex
	chime       ChimeConfig
	logger      *slog.Logger
	initialized bool
	plays       int
}

// NewCuePlayer creates an uninitialized player.
func NewCuePlayer(chime ChimeConfig, logger *slog.Logger) *CuePlayer {
	if logger == nil {
		logger = slog.Default()
	}
	return &CuePlayer{
		chime:  chime,
		logger: logger,
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (player *CuePlayer) Initialize() error {
	player.mu.Lock()
	defer player.mu.Unlock()
	if player.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	player.initialized = true
	return nil
}

// PlayPhaseCompleteCue mixes one chime into the speaker and returns at once.
func (player *CuePlayer) PlayPhaseCompleteCue() {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.plays++
	if !player.initialized {
		return
	}

	streamer, err := NewChime(player.chime, sampleRate)
	if err != nil {
		player.logger.Warn("phase cue unavailable", "error", err)
		return
	}
	speaker.Play(streamer)
}

func (player *CuePlayer) played() int {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.plays
}

// Available reports whether cues reach a speaker.
func (player *CuePlayer) Available() bool {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.initialized
}

// Close silences anything still playing.
func (player *CuePlayer) Close() {
	player.mu.Lock()
	defer player.mu.Unlock()
	if !player.initialized {
		return
	}
	player.logger.Debug("closing speaker", "cues_played", player.plays)
	speaker.Clear()
	player.initialized = false
}
