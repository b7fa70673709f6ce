package notifier

import (
	"context"
	"time"

	"github.com/aleister1102/webwatch/internal/config"
	"github.com/aleister1102/webwatch/internal/watcher"
	"github.com/rs/zerolog"
)

// NotificationHelper adapts engine events to the configured Sender. It is
// the EventSink handed to every watcher; delivery failures are logged and
// never propagate back into the poll loop.
type NotificationHelper struct {
	sender    Sender
	formatter *MessageFormatter
	cfg       config.NotificationConfig
	logger    zerolog.Logger
}

// NewNotificationHelper creates a new NotificationHelper.
func NewNotificationHelper(sender Sender, cfg config.NotificationConfig, logger zerolog.Logger) *NotificationHelper {
	return &NotificationHelper{
		sender:    sender,
		formatter: NewMessageFormatter(cfg.IncludeDiffSummary),
		cfg:       cfg,
		logger:    logger.With().Str("component", "NotificationHelper").Logger(),
	}
}

// ResourceChanged delivers a change notification to the owning tenant.
func (nh *NotificationHelper) ResourceChanged(ctx context.Context, event watcher.ChangeEvent) {
	nh.deliver(ctx, event.Tenant, nh.formatter.FormatChange(event))
}

// ResourceFailed delivers an error notification to the owning tenant.
func (nh *NotificationHelper) ResourceFailed(ctx context.Context, event watcher.ErrorEvent) {
	if !nh.cfg.NotifyOnFetchError {
		nh.logger.Debug().Str("tenant", event.Tenant).Str("name", event.Name).Msg("Fetch error notification suppressed by config")
		return
	}
	nh.deliver(ctx, event.Tenant, nh.formatter.FormatError(event))
}

func (nh *NotificationHelper) deliver(ctx context.Context, tenant, text string) {
	timeout := time.Duration(nh.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = config.DefaultNotifyTimeoutSecs * time.Second
	}
	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := nh.sender.Deliver(sendCtx, tenant, text); err != nil {
		nh.logger.Error().Err(err).Str("tenant", tenant).Msg("Failed to deliver notification")
	}
}
