package command

import (
	"context"
	"testing"

	"github.com/aleister1102/webwatch/internal/registry"
	"github.com/aleister1102/webwatch/internal/watcher"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticFetcher struct{}

func (staticFetcher) Fetch(_ context.Context, _ string) (string, error) {
	return "body", nil
}

type nopSink struct{}

func (nopSink) ResourceChanged(_ context.Context, _ watcher.ChangeEvent) {}
func (nopSink) ResourceFailed(_ context.Context, _ watcher.ErrorEvent)  {}

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()
	reg, err := registry.NewRegistryBuilder(zerolog.Nop()).
		WithDefaultInterval(900).
		WithFetcher(staticFetcher{}).
		WithEventSink(nopSink{}).
		Build()
	require.NoError(t, err)
	t.Cleanup(reg.Shutdown)
	return NewHandlers(reg, zerolog.Nop())
}

func TestHandlers_Help(t *testing.T) {
	h := newTestHandlers(t)

	assert.Equal(t, HelpText, h.Handle("1001", "help", nil))
	assert.Equal(t, HelpText, h.Handle("1001", "start", nil))
}

func TestHandlers_UnknownCommand(t *testing.T) {
	h := newTestHandlers(t)

	assert.Equal(t, replyUnknownCommand, h.Handle("1001", "bogus", nil))
}

func TestHandlers_Add(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no args", args: nil, want: replyMissingAddArgs},
		{name: "name only", args: []string{"docs"}, want: replyMissingAddArgs},
		{name: "name and url", args: []string{"docs", "http://example.com"}, want: "monitoring: docs"},
		{name: "explicit interval", args: []string{"docs", "http://example.com", "60"}, want: "monitoring: docs"},
		{name: "non-numeric interval", args: []string{"docs", "http://example.com", "soon"}, want: replyInvalidInterval},
		{name: "zero interval", args: []string{"docs", "http://example.com", "0"}, want: replyInvalidInterval},
		{name: "negative interval", args: []string{"docs", "http://example.com", "-3"}, want: replyInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlers(t)

			assert.Equal(t, tt.want, h.Handle("1001", "add", tt.args))
		})
	}
}

func TestHandlers_AddZeroIntervalDoesNotRegister(t *testing.T) {
	h := newTestHandlers(t)

	h.Handle("1001", "add", []string{"docs", "http://example.com", "0"})

	assert.Equal(t, replyNothingMonitored, h.Handle("1001", "list", nil))
}

func TestHandlers_RemoveAndList(t *testing.T) {
	h := newTestHandlers(t)

	assert.Equal(t, replyNothingMonitored, h.Handle("1001", "list", nil))

	h.Handle("1001", "add", []string{"docs", "http://example.com/docs"})
	h.Handle("1001", "add", []string{"blog", "http://example.com/blog"})

	assert.Equal(t, "blog\ndocs", h.Handle("1001", "list", nil))

	assert.Equal(t, replyMissingRemoveArg, h.Handle("1001", "remove", nil))
	assert.Equal(t, "stopping the monitor for: docs", h.Handle("1001", "remove", []string{"docs"}))
	assert.Equal(t, "no active monitor for: docs", h.Handle("1001", "remove", []string{"docs"}))
	assert.Equal(t, "blog", h.Handle("1001", "list", nil))
}

func TestHandlers_Timer(t *testing.T) {
	h := newTestHandlers(t)
	h.Handle("1001", "add", []string{"docs", "http://example.com", "60"})

	assert.Equal(t, replyMissingTimerArg, h.Handle("1001", "timer", nil))
	assert.Equal(t, "current timer for docs: 60s", h.Handle("1001", "timer", []string{"docs"}))
	assert.Equal(t, replyNoSuchURL, h.Handle("1001", "timer", []string{"ghost"}))
}

func TestHandlers_SetTimer(t *testing.T) {
	h := newTestHandlers(t)
	h.Handle("1001", "add", []string{"docs", "http://example.com", "60"})

	assert.Equal(t, replyMissingSetTimerArgs, h.Handle("1001", "set_timer", []string{"docs"}))
	assert.Equal(t, replyInvalidInterval, h.Handle("1001", "set_timer", []string{"docs", "abc"}))
	assert.Equal(t, replyInvalidInterval, h.Handle("1001", "set_timer", []string{"docs", "0"}))
	assert.Equal(t, replyNoSuchURL, h.Handle("1001", "set_timer", []string{"ghost", "30"}))
	assert.Equal(t, "new timer for docs: 300s", h.Handle("1001", "set_timer", []string{"docs", "300"}))
	assert.Equal(t, "current timer for docs: 300s", h.Handle("1001", "timer", []string{"docs"}))
}

func TestHandlers_End(t *testing.T) {
	h := newTestHandlers(t)
	h.Handle("1001", "add", []string{"docs", "http://example.com/docs"})
	h.Handle("1001", "add", []string{"blog", "http://example.com/blog"})

	reply := h.Handle("1001", "end", nil)

	assert.Contains(t, reply, "stopping the monitor for: blog")
	assert.Contains(t, reply, "stopping the monitor for: docs")
	assert.Contains(t, reply, "stopping the monitor task for your user")
	assert.Equal(t, replyNothingMonitored, h.Handle("1001", "list", nil))
}

func TestHandlers_EndWithNothingMonitored(t *testing.T) {
	h := newTestHandlers(t)

	assert.Equal(t, "stopping the monitor task for your user", h.Handle("1001", "end", nil))
}

func TestHandlers_TenantsAreIsolated(t *testing.T) {
	h := newTestHandlers(t)

	h.Handle("1001", "add", []string{"docs", "http://example.com/a"})
	h.Handle("2002", "add", []string{"docs", "http://example.com/b", "120"})

	assert.Equal(t, "current timer for docs: 900s", h.Handle("1001", "timer", []string{"docs"}))
	assert.Equal(t, "current timer for docs: 120s", h.Handle("2002", "timer", []string{"docs"}))

	h.Handle("1001", "end", nil)
	assert.Equal(t, "docs", h.Handle("2002", "list", nil))
}
