package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vokinneberg/askgem/internal/config"
	"github.com/vokinneberg/askgem/internal/console"
	"github.com/vokinneberg/askgem/internal/llm"
	"github.com/vokinneberg/askgem/internal/logger"
	"github.com/vokinneberg/askgem/internal/qa"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// stdout belongs to the conversation
	log := logger.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(log)

	fetcher := qa.NewFetcher(config.APIKey, func(apiKey string) qa.Generator {
		return llm.NewClient(apiKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	}, qa.Detailed, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := console.New(os.Stdin, os.Stdout, fetcher, config.APIKey, log)
	if err := c.Run(ctx); err != nil {
		if !errors.Is(err, console.ErrMissingCredential) {
			log.Error("Console stopped", "error", err)
		}
		stop()
		os.Exit(1)
	}
}
