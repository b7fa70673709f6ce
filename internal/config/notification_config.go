package config

// NotificationConfig defines configuration for change/error notifications
type NotificationConfig struct {
	Channel             string `json:"channel,omitempty" yaml:"channel,omitempty" validate:"omitempty,notifychannel"`
	DiscordWebhookURL   string `json:"discord_webhook_url,omitempty" yaml:"discord_webhook_url,omitempty" validate:"omitempty,url"`
	TimeoutSeconds      int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"omitempty,min=1"`
	NotifyOnFetchError  bool   `json:"notify_on_fetch_error" yaml:"notify_on_fetch_error"`
	IncludeDiffSummary  bool   `json:"include_diff_summary" yaml:"include_diff_summary"`
	MaxDiffSummaryLines int    `json:"max_diff_summary_lines,omitempty" yaml:"max_diff_summary_lines,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		Channel:             DefaultNotifyChannel,
		DiscordWebhookURL:   "",
		TimeoutSeconds:      DefaultNotifyTimeoutSecs,
		NotifyOnFetchError:  DefaultNotifyOnFetchError,
		IncludeDiffSummary:  false,
		MaxDiffSummaryLines: DefaultDiffSummaryLines,
	}
}
