package config

// Engine Defaults
const (
	DefaultWatchIntervalSeconds = 900 // 15 minutes
	DefaultHTTPTimeoutSecs      = 30
	DefaultMaxContentSize       = 1048576 // 1MB
	DefaultFollowRedirects      = true
	DefaultMaxRedirects         = 10
	DefaultUserAgent            = "webwatch/1.0"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Notification Defaults
	DefaultNotifyChannel      = "telegram"
	DefaultDiffSummaryLines   = 5
	DefaultTelegramPollSecs   = 30
	DefaultNotifyTimeoutSecs  = 20
	DefaultNotifyOnFetchError = true
)

// GlobalConfig aggregates every configuration section of the application.
type GlobalConfig struct {
	EngineConfig       EngineConfig       `json:"engine_config,omitempty" yaml:"engine_config,omitempty"`
	LogConfig          LogConfig          `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	NotificationConfig NotificationConfig `json:"notification_config,omitempty" yaml:"notification_config,omitempty"`
	TelegramConfig     TelegramConfig     `json:"telegram_config,omitempty" yaml:"telegram_config,omitempty"`
}

// NewDefaultGlobalConfig creates a GlobalConfig populated with defaults.
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		EngineConfig:       NewDefaultEngineConfig(),
		LogConfig:          NewDefaultLogConfig(),
		NotificationConfig: NewDefaultNotificationConfig(),
		TelegramConfig:     NewDefaultTelegramConfig(),
	}
}
