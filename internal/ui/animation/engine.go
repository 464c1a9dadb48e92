package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains flash timing values.
type Config struct {
	OnDuration  Range
	OffDuration Range

	PhaseFlashes    int
	FinishedFlashes int
}

// Engine flashes a highlight on and off after phase transitions.
type Engine struct {
	mu           sync.Mutex
	config       Config
	setHighlight func(bool)
	cancel       context.CancelFunc
	done         chan struct{}
	rng          *rand.Rand
}

// New creates a new flash engine.
func New(config Config, setHighlight func(bool)) *Engine {
	return &Engine{
		config:       config,
		setHighlight: setHighlight,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Flash starts the given pattern, cancelling any flash still running.
func (engine *Engine) Flash(ctx context.Context, pattern Pattern) {
	flashes := engine.config.Flashes(pattern)
	engine.start(ctx, func(runCtx context.Context) {
		defer engine.setHighlight(false)
		for i := 0; i < flashes; i++ {
			engine.setHighlight(true)
			if !sleepWithContext(runCtx, engine.random(engine.config.OnDuration)) {
				return
			}
			engine.setHighlight(false)
			if !sleepWithContext(runCtx, engine.random(engine.config.OffDuration)) {
				return
			}
		}
	})
}

// Stop terminates any active flash and waits for the highlight to clear.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	cancel := engine.cancel
	done := engine.done
	engine.cancel = nil
	engine.done = nil
	engine.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.Stop()

	runCtx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	engine.mu.Lock()
	engine.cancel = cancel
	engine.done = done
	engine.mu.Unlock()

	go func() {
		defer close(done)
		run(runCtx)
	}()
}

func (engine *Engine) random(value Range) time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return value.Random(engine.rng)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
