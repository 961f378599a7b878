package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
)

// ErrEmptyResponse is returned when the model answers without any choices
var ErrEmptyResponse = errors.New("no choices in response")

// GenerateContent sends prompt as a single user message and returns the raw reply text
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(res.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return res.Choices[0].Message.Content, nil
}
