package config

// EngineConfig defines configuration for the watcher engine.
type EngineConfig struct {
	DefaultIntervalSeconds int    `json:"default_interval_seconds,omitempty" yaml:"default_interval_seconds,omitempty" validate:"omitempty,min=1"`
	HTTPTimeoutSeconds     int    `json:"http_timeout_seconds,omitempty" yaml:"http_timeout_seconds,omitempty" validate:"omitempty,min=1"`
	MaxContentSize         int    `json:"max_content_size,omitempty" yaml:"max_content_size,omitempty" validate:"omitempty,min=1"` // Max content size in bytes
	InsecureSkipVerify     bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	EnableHTTP2            bool   `json:"enable_http2" yaml:"enable_http2"`
	FollowRedirects        bool   `json:"follow_redirects" yaml:"follow_redirects"`
	MaxRedirects           int    `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"omitempty,min=0"`
	UserAgent              string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// NewDefaultEngineConfig creates default engine configuration
func NewDefaultEngineConfig() EngineConfig {
	return EngineConfig{
		DefaultIntervalSeconds: DefaultWatchIntervalSeconds,
		HTTPTimeoutSeconds:     DefaultHTTPTimeoutSecs,
		MaxContentSize:         DefaultMaxContentSize,
		InsecureSkipVerify:     false,
		EnableHTTP2:            true,
		FollowRedirects:        DefaultFollowRedirects,
		MaxRedirects:           DefaultMaxRedirects,
		UserAgent:              DefaultUserAgent,
	}
}
