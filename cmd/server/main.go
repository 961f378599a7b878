package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vokinneberg/askgem/internal/config"
	"github.com/vokinneberg/askgem/internal/llm"
	"github.com/vokinneberg/askgem/internal/logger"
	"github.com/vokinneberg/askgem/internal/qa"

	httphandler "github.com/vokinneberg/askgem/internal/http"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)

	if !cfg.HasCredential() {
		log.Warn("GEMINI_API_KEY is not set; questions will be answered with a configuration error")
	}

	// A missing key is reported per request, so the credential is read on every call
	fetcher := qa.NewFetcher(config.APIKey, func(apiKey string) qa.Generator {
		return llm.NewClient(apiKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	}, qa.Sanitized, log)
	log.Info("Initialized answer fetcher", "model", cfg.GeminiModel)

	handler := httphandler.NewHandlers(fetcher, log)
	r := httphandler.NewRouter(handler)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Server running", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
