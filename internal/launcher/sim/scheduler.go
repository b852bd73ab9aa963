// Package sim is the launcher's simulation engine. Everything "live" in the
// launcher is synthesized here on local timers; there is no backend. Every
// flow is scripted to end in a fixed failure unless the user cancels first.
// That is the product, not a bug.
package sim

import (
	"sync"
	"time"
)

// TimerHandle cancels a scheduled callback. Stop is idempotent and safe to
// call from within the callback itself.
type TimerHandle interface {
	Stop()
}

// Scheduler abstracts timer scheduling so flows own and cancel their timers
// explicitly, and so tests can drive ticks by hand.
type Scheduler interface {
	// Every runs fn repeatedly with period d until the handle is stopped.
	Every(d time.Duration, fn func()) TimerHandle
	// After runs fn once after d unless the handle is stopped first.
	After(d time.Duration, fn func()) TimerHandle
}

// TickerScheduler is the production Scheduler, backed by time.Ticker and
// time.Timer running in goroutines.
type TickerScheduler struct{}

func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

type tickerHandle struct {
	stop chan struct{}
	once sync.Once
}

func (h *tickerHandle) Stop() {
	h.once.Do(func() { close(h.stop) })
}

func (s *TickerScheduler) Every(d time.Duration, fn func()) TimerHandle {
	h := &tickerHandle{stop: make(chan struct{})}
	go func() {
		t := time.NewTicker(d)
		defer t.Stop()
		for {
			select {
			case <-h.stop:
				return
			case <-t.C:
				fn()
			}
		}
	}()
	return h
}

func (s *TickerScheduler) After(d time.Duration, fn func()) TimerHandle {
	h := &tickerHandle{stop: make(chan struct{})}
	go func() {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-h.stop:
		case <-t.C:
			fn()
		}
	}()
	return h
}
