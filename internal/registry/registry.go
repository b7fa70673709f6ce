package registry

import (
	"sort"
	"sync"

	"github.com/aleister1102/webwatch/internal/errorwrapper"
	"github.com/aleister1102/webwatch/internal/watcher"
	"github.com/rs/zerolog"
)

var (
	// ErrMissingArgument is returned when a required name or URL is absent.
	ErrMissingArgument = errorwrapper.NewError("name and url are required")
	// ErrNotFound is returned when no watcher exists under a (tenant, name) pair.
	ErrNotFound = errorwrapper.NewError("no watcher under this tenant and name")
)

// UseDefaultInterval requests the configured default poll interval on Add.
const UseDefaultInterval = 0

// tenantWatchers holds the watchers of one tenant behind its own lock, so
// commands from different tenants never contend.
type tenantWatchers struct {
	mu       sync.Mutex
	watchers map[string]*watcher.Watcher
}

func newTenantWatchers() *tenantWatchers {
	return &tenantWatchers{watchers: make(map[string]*watcher.Watcher)}
}

// Registry is the tenant-scoped collection of named watchers. It owns
// watcher creation, lookup, interval mutation, and teardown, and is the only
// shared mutable structure of the engine. A name exists in a tenant's map
// exactly while a watcher created for it has not been removed.
type Registry struct {
	mu      sync.RWMutex
	tenants map[string]*tenantWatchers

	defaultInterval int
	fetcher         watcher.Fetcher
	sink            watcher.EventSink
	logger          zerolog.Logger
}

// tenant returns the watcher map for the tenant, creating an empty entry on
// first use.
func (r *Registry) tenant(tenantID string) *tenantWatchers {
	r.mu.RLock()
	tw, ok := r.tenants[tenantID]
	r.mu.RUnlock()
	if ok {
		return tw
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if tw, ok = r.tenants[tenantID]; ok {
		return tw
	}
	tw = newTenantWatchers()
	r.tenants[tenantID] = tw
	return tw
}

// Add constructs, registers, and starts a new watcher for (tenant, name) as
// one logical operation. Passing UseDefaultInterval selects the configured
// default. An existing watcher under the same slot is replaced without being
// stopped first; callers that care must stop it themselves. Known limitation
// carried over from the original behavior.
func (r *Registry) Add(tenantID, name, url string, interval int) error {
	if name == "" || url == "" {
		return ErrMissingArgument
	}
	if interval == UseDefaultInterval {
		interval = r.defaultInterval
	}

	w, err := watcher.New(tenantID, name, url, interval, r.fetcher, r.sink, r.logger)
	if err != nil {
		return err
	}

	tw := r.tenant(tenantID)
	tw.mu.Lock()
	tw.watchers[name] = w
	w.Start()
	tw.mu.Unlock()

	r.logger.Info().Str("tenant", tenantID).Str("name", name).Str("url", url).Int("interval_seconds", interval).Msg("Watcher registered")
	return nil
}

// Remove stops and removes the named watcher. It reports whether one
// existed; removing an absent name is a no-op.
func (r *Registry) Remove(tenantID, name string) bool {
	tw := r.tenant(tenantID)
	tw.mu.Lock()
	defer tw.mu.Unlock()

	w, ok := tw.watchers[name]
	if !ok {
		return false
	}
	w.Stop()
	delete(tw.watchers, name)
	r.logger.Info().Str("tenant", tenantID).Str("name", name).Msg("Watcher removed")
	return true
}

// List returns the names monitored for the tenant, sorted for stable output.
// A tenant seen for the first time gets an empty entry and an empty list.
func (r *Registry) List(tenantID string) []string {
	tw := r.tenant(tenantID)
	tw.mu.Lock()
	defer tw.mu.Unlock()

	names := make([]string, 0, len(tw.watchers))
	for name := range tw.watchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetInterval returns the poll interval of the named watcher in seconds.
func (r *Registry) GetInterval(tenantID, name string) (int, error) {
	tw := r.tenant(tenantID)
	tw.mu.Lock()
	defer tw.mu.Unlock()

	w, ok := tw.watchers[name]
	if !ok {
		return 0, ErrNotFound
	}
	return w.Interval(), nil
}

// SetInterval restarts the named watcher with a new interval and returns the
// interval now in effect.
func (r *Registry) SetInterval(tenantID, name string, interval int) (int, error) {
	tw := r.tenant(tenantID)
	tw.mu.Lock()
	defer tw.mu.Unlock()

	w, ok := tw.watchers[name]
	if !ok {
		return 0, ErrNotFound
	}
	if err := w.SetInterval(interval); err != nil {
		return 0, err
	}
	r.logger.Info().Str("tenant", tenantID).Str("name", name).Int("interval_seconds", interval).Msg("Watcher interval updated")
	return w.Interval(), nil
}

// RemoveAll stops every watcher under the tenant, drops the tenant entry,
// and returns the names that were stopped.
func (r *Registry) RemoveAll(tenantID string) []string {
	r.mu.Lock()
	tw, ok := r.tenants[tenantID]
	if ok {
		delete(r.tenants, tenantID)
	}
	r.mu.Unlock()

	if !ok {
		return []string{}
	}

	tw.mu.Lock()
	defer tw.mu.Unlock()

	names := make([]string, 0, len(tw.watchers))
	for name, w := range tw.watchers {
		w.Stop()
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) > 0 {
		r.logger.Info().Str("tenant", tenantID).Strs("names", names).Msg("All watchers removed for tenant")
	}
	return names
}

// Shutdown tears down every watcher of every tenant. Used on process exit.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	tenants := make([]string, 0, len(r.tenants))
	for tenantID := range r.tenants {
		tenants = append(tenants, tenantID)
	}
	r.mu.Unlock()

	for _, tenantID := range tenants {
		r.RemoveAll(tenantID)
	}
	r.logger.Info().Int("tenants", len(tenants)).Msg("Registry shut down")
}
