package qa

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

//go:generate mockgen -source=fetcher.go -destination=mock_generator.go -package=qa Generator

// Generator defines the interface for a single remote text completion
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// GeneratorFactory builds a Generator authorized by apiKey
type GeneratorFactory func(apiKey string) Generator

// ErrorMode controls how much failure detail reaches the caller
type ErrorMode int

const (
	// Detailed embeds the underlying error in the returned text
	Detailed ErrorMode = iota
	// Sanitized returns a generic message and logs the detail
	Sanitized
)

var (
	ErrMissingCredential = errors.New("GEMINI_API_KEY environment variable is not set")
	ErrBlankAnswer       = errors.New("model returned no text")
)

const (
	missingKeyDetailed   = "ERROR: LLM API Key is not configured (GEMINI_API_KEY is not set)."
	missingKeySanitized  = "ERROR: LLM API Key is not configured on the server."
	failureDetailedFmt   = "An error occurred while calling the LLM API: %v"
	failureSanitizedText = "An error occurred while communicating with the LLM API."
)

// Fetcher turns a normalized question into answer text. Answer never fails:
// every error becomes a human readable string.
type Fetcher struct {
	credential   func() string
	newGenerator GeneratorFactory
	mode         ErrorMode
	logger       *slog.Logger
}

// NewFetcher creates a Fetcher. credential is consulted on every call.
func NewFetcher(credential func() string, newGenerator GeneratorFactory, mode ErrorMode, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		credential:   credential,
		newGenerator: newGenerator,
		mode:         mode,
		logger:       logger,
	}
}

// Answer asks the model exactly once and returns its trimmed reply or an error description
func (f *Fetcher) Answer(ctx context.Context, question string) (answer string) {
	apiKey := f.credential()
	if apiKey == "" {
		f.logger.Warn("Answer requested without credential", "error", ErrMissingCredential)
		if f.mode == Sanitized {
			return missingKeySanitized
		}
		return missingKeyDetailed
	}

	defer func() {
		if r := recover(); r != nil {
			answer = f.failure(fmt.Errorf("panic: %v", r))
		}
	}()

	text, err := f.newGenerator(apiKey).GenerateContent(ctx, BuildPrompt(question))
	if err != nil {
		return f.failure(err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return f.failure(ErrBlankAnswer)
	}
	return text
}

func (f *Fetcher) failure(err error) string {
	if f.mode == Sanitized {
		f.logger.Error("LLM API error", "error", err)
		return failureSanitizedText
	}
	f.logger.Debug("LLM API error", "error", err)
	return fmt.Sprintf(failureDetailedFmt, err)
}
