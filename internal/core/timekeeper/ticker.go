package timekeeper

import (
	"sync"
	"time"
)

// Ticker is a running periodic callback that can be cancelled.
type Ticker interface {
	Stop()
}

// TickerFunc starts calling fn every interval until the returned Ticker
// is stopped.
type TickerFunc func(interval time.Duration, fn func()) Ticker

// Dispatcher runs fn on the context that owns all state mutation.
type Dispatcher func(fn func())

// Inline runs fn on the calling goroutine.
func Inline(fn func()) {
	fn()
}

type wallTicker struct {
	stopCh chan struct{}
	once   sync.Once
}

// NewWallTicker is a TickerFunc backed by time.Ticker.
func NewWallTicker(interval time.Duration, fn func()) Ticker {
	ticker := &wallTicker{stopCh: make(chan struct{})}
	go ticker.run(interval, fn)
	return ticker
}

func (ticker *wallTicker) run(interval time.Duration, fn func()) {
	clock := time.NewTicker(interval)
	defer clock.Stop()

	for {
		select {
		case <-ticker.stopCh:
			return
		case <-clock.C:
			select {
			case <-ticker.stopCh:
				return
			default:
			}
			fn()
		}
	}
}

func (ticker *wallTicker) Stop() {
	ticker.once.Do(func() {
		close(ticker.stopCh)
	})
}
