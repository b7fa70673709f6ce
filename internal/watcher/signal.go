package watcher

import (
	"sync"
	"time"
)

// signal is a single-shot cancellation primitive. Set is idempotent and safe
// to call concurrently with Wait.
type signal struct {
	once sync.Once
	ch   chan struct{}
}

func newSignal() *signal {
	return &signal{ch: make(chan struct{})}
}

// Set fires the signal. Subsequent calls are no-ops.
func (s *signal) Set() {
	s.once.Do(func() {
		close(s.ch)
	})
}

// IsSet reports whether the signal has fired.
func (s *signal) IsSet() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

// Wait blocks for up to d or until the signal fires, whichever comes first.
// It returns true when the signal fired and false when the deadline elapsed.
func (s *signal) Wait(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-s.ch:
		return true
	case <-timer.C:
		return false
	}
}
