package watcher

import (
	"context"
	"sync"
	"time"

	"github.com/aleister1102/webwatch/internal/errorwrapper"
	"github.com/rs/zerolog"
)

// ErrInvalidInterval is returned when a non-positive poll interval is supplied.
var ErrInvalidInterval = errorwrapper.NewError("interval must be a positive integer")

// State represents the lifecycle state of a Watcher.
type State int

const (
	StateCreated State = iota
	StateRunning
	StateStopped
)

// String returns string representation of State
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Watcher owns the poll loop for exactly one monitored endpoint. It is the
// unit of concurrency: each started watcher runs one goroutine, and no two
// watchers share mutable state. All mutation goes through Stop and
// SetInterval, which are safe to call concurrently with the loop they
// control.
type Watcher struct {
	tenant string
	name   string
	url    string

	mu       sync.Mutex
	interval int
	sig      *signal
	state    State

	fetcher Fetcher
	sink    EventSink
	logger  zerolog.Logger

	// tick is the duration of one interval unit. It is time.Second in
	// production and shortened by package tests.
	tick time.Duration
}

// New constructs a Watcher in the Created state. No network I/O happens until
// Start. The interval is in seconds and must be positive.
func New(tenant, name, url string, interval int, fetcher Fetcher, sink EventSink, logger zerolog.Logger) (*Watcher, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	return &Watcher{
		tenant:   tenant,
		name:     name,
		url:      url,
		interval: interval,
		sig:      newSignal(),
		state:    StateCreated,
		fetcher:  fetcher,
		sink:     sink,
		logger:   logger.With().Str("component", "Watcher").Str("tenant", tenant).Str("name", name).Logger(),
		tick:     time.Second,
	}, nil
}

// Endpoint returns the monitored URL.
func (w *Watcher) Endpoint() string {
	return w.url
}

// Name returns the resource name of this watcher within its tenant.
func (w *Watcher) Name() string {
	return w.name
}

// Tenant returns the owning tenant identifier.
func (w *Watcher) Tenant() string {
	return w.tenant
}

// Interval returns the current poll interval in seconds.
func (w *Watcher) Interval() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.interval
}

// State returns the current lifecycle state.
func (w *Watcher) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Start transitions Created -> Running and launches the poll loop. Starting
// a watcher that is not in the Created state is a no-op; the registry
// guarantees construction-then-start happens exactly once per instance.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateCreated {
		w.logger.Warn().Str("state", w.state.String()).Msg("Start ignored: watcher is not in created state")
		return
	}

	w.state = StateRunning
	go w.run(w.sig, time.Duration(w.interval)*w.tick)
	w.logger.Info().Str("url", w.url).Int("interval_seconds", w.interval).Msg("Watcher started")
}

// Stop signals cancellation. It is idempotent and does not block on loop
// completion; the loop observes the signal no later than its next wait.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.sig.Set()
	w.state = StateStopped
	w.logger.Info().Str("url", w.url).Msg("Watcher stop requested")
}

// SetInterval stops the current loop and starts a fresh one with the new
// interval and a freshly reset cancellation signal. The wait countdown
// restarts from zero; partial elapsed time is discarded.
func (w *Watcher) SetInterval(interval int) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.sig.Set()
	w.sig = newSignal()
	w.interval = interval
	w.state = StateRunning
	go w.run(w.sig, time.Duration(interval)*w.tick)

	w.logger.Info().Str("url", w.url).Int("interval_seconds", interval).Msg("Watcher restarted with new interval")
	return nil
}

// markStopped records loop termination, but only for the generation that
// owns sig. A loop superseded by SetInterval must not clobber the state of
// its successor.
func (w *Watcher) markStopped(sig *signal) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.sig == sig {
		w.state = StateStopped
	}
}

// run is the poll loop. It fetches a baseline snapshot up front, then waits
// interval-or-cancel; every elapsed deadline triggers one fetch and an
// exact-equality compare against the snapshot. A fetch failure emits one
// error event and terminates the loop without retry.
func (w *Watcher) run(sig *signal, interval time.Duration) {
	ctx := context.Background()

	snapshot, err := w.fetcher.Fetch(ctx, w.url)
	if err != nil {
		// Unguarded baseline: proceed with an empty snapshot. The first
		// successful fetch afterwards may report a spurious change.
		w.logger.Warn().Err(err).Str("url", w.url).Msg("Baseline fetch failed, starting with empty snapshot")
		snapshot = ""
	}

	for !sig.Wait(interval) {
		body, fetchErr := w.fetcher.Fetch(ctx, w.url)
		if fetchErr != nil {
			w.logger.Error().Err(fetchErr).Str("url", w.url).Msg("Fetch failed, terminating watcher")
			w.sink.ResourceFailed(ctx, ErrorEvent{
				Tenant: w.tenant,
				Name:   w.name,
				URL:    w.url,
				Err:    fetchErr,
			})
			w.markStopped(sig)
			return
		}

		if body != snapshot {
			w.logger.Info().Str("url", w.url).Msg("Content change detected")
			w.sink.ResourceChanged(ctx, ChangeEvent{
				Tenant:   w.tenant,
				Name:     w.name,
				URL:      w.url,
				Previous: snapshot,
				Current:  body,
			})
			snapshot = body
		}
	}

	w.markStopped(sig)
	w.logger.Debug().Str("url", w.url).Msg("Watcher loop exited")
}
