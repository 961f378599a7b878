package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// APIKeyEnv is the environment variable holding the Gemini credential.
const APIKeyEnv = "GEMINI_API_KEY"

const (
	defaultModel   = "gemini-2.5-flash"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// Gemini configuration
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	LogLevel string
}

// LoadConfig loads configuration from an optional .env file and environment variables.
// Variables already present in the environment are never overridden by .env.
func LoadConfig() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		GeminiAPIKey:  APIKey(),
		GeminiModel:   getEnv("GEMINI_MODEL", defaultModel),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", defaultBaseURL),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}, nil
}

// HasCredential reports whether the Gemini credential was present at load time
func (c *Config) HasCredential() bool {
	return c.GeminiAPIKey != ""
}

// APIKey reads the Gemini credential from the process environment at call time
func APIKey() string {
	return os.Getenv(APIKeyEnv)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
