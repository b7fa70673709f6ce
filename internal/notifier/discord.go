package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/aleister1102/webwatch/internal/errorwrapper"
	"github.com/rs/zerolog"
)

// discordMessagePayload is the webhook request body.
type discordMessagePayload struct {
	Content  string `json:"content"`
	Username string `json:"username,omitempty"`
}

// DiscordSender delivers notifications to a Discord webhook. All tenants
// share the webhook channel; the tenant identifier is included in the
// message so events stay attributable.
type DiscordSender struct {
	webhookURL string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewDiscordSender creates a new DiscordSender.
func NewDiscordSender(webhookURL string, httpClient *http.Client, logger zerolog.Logger) (*DiscordSender, error) {
	moduleLogger := logger.With().Str("component", "DiscordSender").Logger()

	if _, err := url.ParseRequestURI(webhookURL); err != nil {
		return nil, errorwrapper.NewValidationError("webhook_url", webhookURL, "invalid Discord webhook URL")
	}

	if httpClient == nil {
		moduleLogger.Warn().Msg("HTTP client is nil, using default HTTP client with 20s timeout")
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}

	return &DiscordSender{
		webhookURL: webhookURL,
		httpClient: httpClient,
		logger:     moduleLogger,
	}, nil
}

// Deliver posts the text to the configured webhook.
func (ds *DiscordSender) Deliver(ctx context.Context, tenant string, text string) error {
	payload := discordMessagePayload{
		Content:  fmt.Sprintf("[%s] %s", tenant, text),
		Username: "webwatch",
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to marshal discord payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ds.webhookURL, bytes.NewReader(payloadJSON))
	if err != nil {
		return errorwrapper.WrapError(err, "failed to create discord webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ds.httpClient.Do(req)
	if err != nil {
		return errorwrapper.NewNetworkError(ds.webhookURL, "discord webhook request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, string(body), ds.webhookURL)
	}

	ds.logger.Debug().Str("tenant", tenant).Msg("Notification delivered via Discord webhook")
	return nil
}
