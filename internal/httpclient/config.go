package httpclient

import "time"

// HTTPClientConfig holds configuration for the HTTP client
type HTTPClientConfig struct {
	Timeout               time.Duration
	DialTimeout           time.Duration
	KeepAlive             time.Duration
	TLSHandshakeTimeout   time.Duration
	IdleConnTimeout       time.Duration
	ExpectContinueTimeout time.Duration
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	MaxConnsPerHost       int
	MaxRedirects          int
	MaxContentSize        int
	FollowRedirects       bool
	InsecureSkipVerify    bool
	EnableHTTP2           bool
	UserAgent             string
}

// DefaultHTTPClientConfig returns sensible defaults for the HTTP client.
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:               30 * time.Second,
		DialTimeout:           10 * time.Second,
		KeepAlive:             30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		MaxConnsPerHost:       0,
		MaxRedirects:          10,
		MaxContentSize:        1048576, // 1MB
		FollowRedirects:       true,
		InsecureSkipVerify:    false,
		EnableHTTP2:           true,
		UserAgent:             "webwatch/1.0",
	}
}
