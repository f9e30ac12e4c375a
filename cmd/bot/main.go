package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dictcc-go/internal/application/usecases"
	"dictcc-go/internal/domain/dictionary"
	"dictcc-go/internal/infrastructure/persistence"
	"dictcc-go/internal/infrastructure/telegram"
	"dictcc-go/internal/interfaces/telegram/handlers"
)

func main() {
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		log.Fatal().Msg("TELEGRAM_BOT_TOKEN environment variable is required")
	}

	dbPath := os.Getenv("DICTCC_DATABASE")
	if dbPath == "" {
		log.Fatal().Msg("DICTCC_DATABASE environment variable is required")
	}

	translator := usecases.NewTranslationUseCase(
		persistence.NewOpener(dictionary.DefaultSchema()),
		dictionary.NewGenerator(nil),
	)

	bot, err := telegram.NewBot(botToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	if err := bot.SetupCommands(); err != nil {
		log.Warn().Err(err).Msg("failed to set up bot commands; the menu will be empty")
	}

	handler := handlers.NewLookupHandler(bot, translator, dbPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		log.Info().Msg("shutting down")
		cancel()
	}()

	log.Info().Msg("starting dictionary bot")
	if err := handler.Start(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("bot error")
	}
}
