package generate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var errNoChoices = errors.New("completion returned no choices")

// ClientConfig points the client at an OpenAI-compatible endpoint.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client sends single-turn chat completions.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient builds a chat-completion client. Retries are disabled.
func NewClient(config ClientConfig) *Client {
	client := openai.NewClient(
		option.WithAPIKey(config.APIKey),
		option.WithBaseURL(config.BaseURL),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(config.Timeout),
	)

	return &Client{
		client: &client,
		model:  config.Model,
	}
}

// Model returns the configured model name.
func (client *Client) Model() string {
	return client.model
}

// Complete sends a system and user message and returns the first choice's content.
func (client *Client) Complete(ctx context.Context, system, user string) (string, error) {
	response, err := client.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(client.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", errNoChoices
	}

	content := strings.TrimSpace(response.Choices[0].Message.Content)
	if content == "" {
		return "", errNoChoices
	}
	return content, nil
}
