package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ShlokD/guess-food/internal/httpserver"
	"github.com/ShlokD/guess-food/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	provider, err := newProvider(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.RecipeSource).Msg("failed to set up recipe provider")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := store.NewMemoryStore()
	go store.RunSweeper(ctx, sessions, cfg.SessionIdleTTL, time.Minute)

	srv, err := httpserver.New(sessions, httpserver.Config{
		Provider:      provider,
		SessionSecret: cfg.SessionSecret,
		SecureCookies: cfg.SecureCookies,
		ClientOrigin:  cfg.ClientOrigin,
		Timeout:       cfg.RequestTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	log.Info().Str("port", cfg.Port).Str("recipes", cfg.RecipeSource).Msg("starting guess-food")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
