package notifier

import (
	"context"
	"strconv"

	"github.com/aleister1102/webwatch/internal/errorwrapper"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// TelegramSender delivers notifications through a Telegram bot. The tenant
// identifier is the chat ID.
type TelegramSender struct {
	api    *tgbotapi.BotAPI
	logger zerolog.Logger
}

// NewTelegramSender creates a new TelegramSender.
func NewTelegramSender(api *tgbotapi.BotAPI, logger zerolog.Logger) (*TelegramSender, error) {
	if api == nil {
		return nil, errorwrapper.NewValidationError("api", nil, "telegram bot API is required")
	}
	return &TelegramSender{
		api:    api,
		logger: logger.With().Str("component", "TelegramSender").Logger(),
	}, nil
}

// Deliver sends the text to the chat identified by tenant.
func (ts *TelegramSender) Deliver(_ context.Context, tenant string, text string) error {
	chatID, err := strconv.ParseInt(tenant, 10, 64)
	if err != nil {
		return errorwrapper.NewValidationError("tenant", tenant, "tenant is not a valid chat ID")
	}

	if _, err := ts.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return errorwrapper.WrapError(err, "failed to send telegram message")
	}

	ts.logger.Debug().Str("tenant", tenant).Msg("Notification delivered via Telegram")
	return nil
}
