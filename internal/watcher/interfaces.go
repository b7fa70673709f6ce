package watcher

import "context"

// Fetcher is the HTTP fetch capability consumed by the poll loop. Transport
// failures and non-2xx statuses are reported uniformly as errors.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (string, error)

// Fetch calls the underlying function.
func (f FetcherFunc) Fetch(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}

// ChangeEvent describes a detected content change on a monitored endpoint.
// Previous and Current carry the compared bodies so that sinks may render a
// summary; change detection itself is exact equality.
type ChangeEvent struct {
	Tenant   string
	Name     string
	URL      string
	Previous string
	Current  string
}

// ErrorEvent describes a fetch failure that terminated a poll loop.
type ErrorEvent struct {
	Tenant string
	Name   string
	URL    string
	Err    error
}

// EventSink receives change and error events from running watchers. Events
// from a single watcher arrive in strict temporal order; no ordering holds
// across watchers.
type EventSink interface {
	ResourceChanged(ctx context.Context, event ChangeEvent)
	ResourceFailed(ctx context.Context, event ErrorEvent)
}
