package notifier

import (
	"context"
	"sync"
	"testing"

	"github.com/aleister1102/webwatch/internal/config"
	"github.com/aleister1102/webwatch/internal/errorwrapper"
	"github.com/aleister1102/webwatch/internal/watcher"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingSender struct {
	mu       sync.Mutex
	tenants  []string
	messages []string
	err      error
}

func (s *capturingSender) Deliver(_ context.Context, tenant string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants = append(s.tenants, tenant)
	s.messages = append(s.messages, text)
	return s.err
}

func TestNotificationHelper_ResourceChanged(t *testing.T) {
	sender := &capturingSender{}
	helper := NewNotificationHelper(sender, config.NewDefaultNotificationConfig(), zerolog.Nop())

	helper.ResourceChanged(context.Background(), watcher.ChangeEvent{
		Tenant: "1001",
		Name:   "docs",
		URL:    "http://example.com/docs",
	})

	require.Len(t, sender.messages, 1)
	assert.Equal(t, "1001", sender.tenants[0])
	assert.Equal(t, "Updated: http://example.com/docs", sender.messages[0])
}

func TestNotificationHelper_ResourceFailed(t *testing.T) {
	event := watcher.ErrorEvent{
		Tenant: "1001",
		Name:   "docs",
		URL:    "http://example.com/docs",
		Err:    errorwrapper.NewError("boom"),
	}

	t.Run("delivers error notification", func(t *testing.T) {
		sender := &capturingSender{}
		helper := NewNotificationHelper(sender, config.NewDefaultNotificationConfig(), zerolog.Nop())

		helper.ResourceFailed(context.Background(), event)

		require.Len(t, sender.messages, 1)
		assert.Equal(t, "invalid endpoint, stopping monitor for: docs (http://example.com/docs)", sender.messages[0])
	})

	t.Run("suppressed by config", func(t *testing.T) {
		sender := &capturingSender{}
		cfg := config.NewDefaultNotificationConfig()
		cfg.NotifyOnFetchError = false
		helper := NewNotificationHelper(sender, cfg, zerolog.Nop())

		helper.ResourceFailed(context.Background(), event)

		assert.Empty(t, sender.messages)
	})
}

func TestNotificationHelper_DeliveryErrorDoesNotPanic(t *testing.T) {
	sender := &capturingSender{err: errorwrapper.NewError("webhook down")}
	helper := NewNotificationHelper(sender, config.NewDefaultNotificationConfig(), zerolog.Nop())

	assert.NotPanics(t, func() {
		helper.ResourceChanged(context.Background(), watcher.ChangeEvent{Tenant: "1001", URL: "http://example.com"})
	})
}
