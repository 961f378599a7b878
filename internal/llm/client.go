package llm

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps the OpenAI SDK pointed at Gemini's OpenAI-compatible endpoint
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new LLM client with API key, model and endpoint.
// Retries are disabled so every question produces exactly one remote call.
func NewClient(apiKey, model, baseURL string) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)
	return &Client{
		client: &client,
		model:  model,
	}
}

// Model returns the model identifier the client sends with every request
func (c *Client) Model() string {
	return c.model
}
