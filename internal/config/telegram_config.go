package config

// TelegramConfig defines configuration for the Telegram bot transport.
// The token may also be supplied via the TELEGRAM_TOKEN environment variable,
// which takes precedence over the config file.
type TelegramConfig struct {
	Token              string `json:"token,omitempty" yaml:"token,omitempty"`
	PollTimeoutSeconds int    `json:"poll_timeout_seconds,omitempty" yaml:"poll_timeout_seconds,omitempty" validate:"omitempty,min=1"`
	Debug              bool   `json:"debug" yaml:"debug"`
}

// NewDefaultTelegramConfig creates default telegram configuration
func NewDefaultTelegramConfig() TelegramConfig {
	return TelegramConfig{
		Token:              "",
		PollTimeoutSeconds: DefaultTelegramPollSecs,
		Debug:              false,
	}
}
