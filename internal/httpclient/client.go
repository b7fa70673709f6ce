package httpclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/aleister1102/webwatch/internal/errorwrapper"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

// HTTPClient wraps net/http.Client and exposes the fetch capability the
// watcher engine consumes. All transport failures and non-2xx statuses are
// reported as errors.
type HTTPClient struct {
	client *http.Client
	config HTTPClientConfig
	logger zerolog.Logger
}

// NewHTTPClient creates a new HTTP client with the given configuration.
func NewHTTPClient(config HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	transport := &http.Transport{
		MaxIdleConns:          config.MaxIdleConns,
		MaxIdleConnsPerHost:   config.MaxIdleConnsPerHost,
		MaxConnsPerHost:       config.MaxConnsPerHost,
		IdleConnTimeout:       config.IdleConnTimeout,
		TLSHandshakeTimeout:   config.TLSHandshakeTimeout,
		ExpectContinueTimeout: config.ExpectContinueTimeout,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: config.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		},
	}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		} else {
			logger.Debug().Msg("HTTP/2 support enabled")
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}

	if !config.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else if config.MaxRedirects > 0 {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= config.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", config.MaxRedirects)
			}
			return nil
		}
	}

	logger.Debug().
		Dur("timeout", config.Timeout).
		Bool("insecure_skip_verify", config.InsecureSkipVerify).
		Bool("follow_redirects", config.FollowRedirects).
		Int("max_redirects", config.MaxRedirects).
		Bool("http2_enabled", config.EnableHTTP2).
		Msg("HTTP client created")

	return &HTTPClient{
		client: client,
		config: config,
		logger: logger.With().Str("component", "HTTPClient").Logger(),
	}, nil
}

// ValidateURL checks that the raw URL parses and uses an http(s) scheme.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errorwrapper.NewValidationError("url", rawURL, "malformed URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errorwrapper.NewValidationError("url", rawURL, "scheme must be http or https")
	}
	if parsed.Host == "" {
		return errorwrapper.NewValidationError("url", rawURL, "missing host")
	}
	return nil
}

// Fetch performs a GET request and returns the response body as a string.
// Non-2xx statuses are returned as HTTPError; transport failures as
// NetworkError. The body is truncated at MaxContentSize.
func (c *HTTPClient) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", errorwrapper.WrapError(err, fmt.Sprintf("creating request for %s", rawURL))
	}
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errorwrapper.NewNetworkError(rawURL, "HTTP request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read a slice of the body for error context, but limit size
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, string(bodyBytes), rawURL)
	}

	reader := io.Reader(resp.Body)
	if c.config.MaxContentSize > 0 {
		reader = io.LimitReader(resp.Body, int64(c.config.MaxContentSize)+1)
	}

	bodyBytes, err := io.ReadAll(reader)
	if err != nil {
		return "", errorwrapper.WrapError(err, "failed to read response body")
	}

	if c.config.MaxContentSize > 0 && len(bodyBytes) > c.config.MaxContentSize {
		return "", errorwrapper.NewError("content too large: more than %d bytes", c.config.MaxContentSize)
	}

	c.logger.Debug().Str("url", rawURL).Int("size", len(bodyBytes)).Msg("Content fetched successfully")
	return string(bodyBytes), nil
}
