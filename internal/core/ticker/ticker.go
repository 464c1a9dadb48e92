package ticker

import (
	"sync"
	"time"
)

// Config contains runtime options for Ticker.
type Config struct {
	Interval time.Duration
}

// Ticker is a cancellable periodic task. It calls the registered callback
// once per interval until stopped.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	stopCh   chan struct{}
}

// New creates a stopped Ticker.
func New(config Config) *Ticker {
	if config.Interval <= 0 {
		config.Interval = time.Second
	}
	return &Ticker{interval: config.Interval}
}

// Start launches the ticking loop, replacing any loop already running.
func (ticker *Ticker) Start(tick func()) {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if ticker.stopCh != nil {
		close(ticker.stopCh)
	}
	stopCh := make(chan struct{})
	ticker.stopCh = stopCh
	go ticker.run(stopCh, tick)
}

// Stop terminates the ticking loop. It never blocks, so it may be called
// from inside the tick callback.
func (ticker *Ticker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if ticker.stopCh == nil {
		return
	}
	close(ticker.stopCh)
	ticker.stopCh = nil
}

func (ticker *Ticker) running() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.stopCh != nil
}

func (ticker *Ticker) run(stopCh <-chan struct{}, tick func()) {
	timeTicker := time.NewTicker(ticker.interval)
	defer timeTicker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-timeTicker.C:
			select {
			case <-stopCh:
				return
			default:
			}
			tick()
		}
	}
}
