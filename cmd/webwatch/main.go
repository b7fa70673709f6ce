package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aleister1102/webwatch/internal/command"
	"github.com/aleister1102/webwatch/internal/config"
	"github.com/aleister1102/webwatch/internal/httpclient"
	"github.com/aleister1102/webwatch/internal/logger"
	"github.com/aleister1102/webwatch/internal/notifier"
	"github.com/aleister1102/webwatch/internal/registry"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load config using path '%s': %v", flags.ConfigFile, err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}
	zLogger.Info().Msg("webwatch starting...")

	api, err := newTelegramAPI(gCfg.TelegramConfig)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to create Telegram API client")
	}

	fetcher, err := httpclient.NewHTTPClientBuilder(zLogger).
		WithTimeout(time.Duration(gCfg.EngineConfig.HTTPTimeoutSeconds) * time.Second).
		WithInsecureSkipVerify(gCfg.EngineConfig.InsecureSkipVerify).
		WithFollowRedirects(gCfg.EngineConfig.FollowRedirects).
		WithMaxRedirects(gCfg.EngineConfig.MaxRedirects).
		WithMaxContentSize(gCfg.EngineConfig.MaxContentSize).
		WithUserAgent(gCfg.EngineConfig.UserAgent).
		WithHTTP2(gCfg.EngineConfig.EnableHTTP2).
		Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to create HTTP client")
	}

	sender, err := newSender(gCfg, api, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to create notification sender")
	}
	helper := notifier.NewNotificationHelper(sender, gCfg.NotificationConfig, zLogger)

	reg, err := registry.NewRegistryBuilder(zLogger).
		WithDefaultInterval(gCfg.EngineConfig.DefaultIntervalSeconds).
		WithFetcher(fetcher).
		WithEventSink(helper).
		Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to create watcher registry")
	}

	handlers := command.NewHandlers(reg, zLogger)
	bot := NewBot(api, handlers, gCfg.TelegramConfig, zLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		zLogger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
		cancel()
	}()

	bot.Run(ctx)

	reg.Shutdown()
	zLogger.Info().Msg("webwatch stopped")
}

// newTelegramAPI authenticates against the Telegram bot API. The token from
// the environment takes precedence over the config file.
func newTelegramAPI(cfg config.TelegramConfig) (*tgbotapi.BotAPI, error) {
	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		token = cfg.Token
	}
	return tgbotapi.NewBotAPI(token)
}

// newSender selects the notification channel from config.
func newSender(gCfg *config.GlobalConfig, api *tgbotapi.BotAPI, zLogger zerolog.Logger) (notifier.Sender, error) {
	switch strings.ToLower(gCfg.NotificationConfig.Channel) {
	case "discord":
		return notifier.NewDiscordSender(gCfg.NotificationConfig.DiscordWebhookURL, nil, zLogger)
	default:
		return notifier.NewTelegramSender(api, zLogger)
	}
}
