package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/aleister1102/webwatch/internal/command"
	"github.com/aleister1102/webwatch/internal/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Bot drives the Telegram long-polling loop and dispatches chat commands to
// the command handlers. The chat ID is the tenant identifier.
type Bot struct {
	api      *tgbotapi.BotAPI
	handlers *command.Handlers
	cfg      config.TelegramConfig
	logger   zerolog.Logger
}

// NewBot creates a new Bot on top of an authenticated Telegram API client.
func NewBot(api *tgbotapi.BotAPI, handlers *command.Handlers, cfg config.TelegramConfig, logger zerolog.Logger) *Bot {
	api.Debug = cfg.Debug
	return &Bot{
		api:      api,
		handlers: handlers,
		cfg:      cfg,
		logger:   logger.With().Str("component", "Bot").Logger(),
	}
}

// Run consumes updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = b.cfg.PollTimeoutSeconds

	updates := b.api.GetUpdatesChan(updateCfg)
	b.logger.Info().Str("username", b.api.Self.UserName).Msg("Bot is receiving updates")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info().Msg("Bot update loop stopped")
			return
		case update := <-updates:
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	tenant := strconv.FormatInt(update.Message.Chat.ID, 10)
	cmd := update.Message.Command()
	args := strings.Fields(update.Message.CommandArguments())

	reply := b.handlers.Handle(tenant, cmd, args)
	if reply == "" {
		return
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, reply)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error().Err(err).Str("tenant", tenant).Msg("Failed to send reply")
	}
}
