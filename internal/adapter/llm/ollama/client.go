package ollama

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	langollama "github.com/tmc/langchaingo/llms/ollama"
)

// Client talks to a local Ollama runtime over its HTTP API.
type Client struct {
	llm *langollama.LLM
}

func New(serverURL, model string) (*Client, error) {
	llm, err := langollama.New(
		langollama.WithServerURL(serverURL),
		langollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("init ollama client: %w", err)
	}
	return &Client{llm: llm}, nil
}

func (c *Client) Reply(ctx context.Context, system, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}
	resp, err := c.llm.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("generate completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}
