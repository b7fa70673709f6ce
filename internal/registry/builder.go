package registry

import (
	"github.com/aleister1102/webwatch/internal/config"
	"github.com/aleister1102/webwatch/internal/errorwrapper"
	"github.com/aleister1102/webwatch/internal/watcher"
	"github.com/rs/zerolog"
)

// RegistryBuilder provides fluent interface for building registries
type RegistryBuilder struct {
	defaultInterval int
	fetcher         watcher.Fetcher
	sink            watcher.EventSink
	logger          zerolog.Logger
}

// NewRegistryBuilder creates a new registry builder
func NewRegistryBuilder(logger zerolog.Logger) *RegistryBuilder {
	return &RegistryBuilder{
		defaultInterval: config.DefaultWatchIntervalSeconds,
		logger:          logger,
	}
}

// WithDefaultInterval sets the interval used when Add receives UseDefaultInterval.
func (b *RegistryBuilder) WithDefaultInterval(seconds int) *RegistryBuilder {
	if seconds > 0 {
		b.defaultInterval = seconds
	}
	return b
}

// WithFetcher sets the HTTP fetch capability for new watchers.
func (b *RegistryBuilder) WithFetcher(fetcher watcher.Fetcher) *RegistryBuilder {
	b.fetcher = fetcher
	return b
}

// WithEventSink sets the sink that receives change and error events.
func (b *RegistryBuilder) WithEventSink(sink watcher.EventSink) *RegistryBuilder {
	b.sink = sink
	return b
}

// Build creates the Registry instance
func (b *RegistryBuilder) Build() (*Registry, error) {
	if b.fetcher == nil {
		return nil, errorwrapper.NewValidationError("fetcher", nil, "fetcher is required")
	}
	if b.sink == nil {
		return nil, errorwrapper.NewValidationError("event_sink", nil, "event sink is required")
	}

	return &Registry{
		tenants:         make(map[string]*tenantWatchers),
		defaultInterval: b.defaultInterval,
		fetcher:         b.fetcher,
		sink:            b.sink,
		logger:          b.logger.With().Str("component", "Registry").Logger(),
	}, nil
}
