package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	anthropicURL  = "https://api.anthropic.com/v1/messages"
	openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

	maxResponseTokens = 2048
)

// Client queries LLM provider APIs.
type Client struct {
	client *resty.Client
	log    zerolog.Logger
}

// NewClient creates an LLM client. Model responses can take a while, so the
// timeout is generous.
func NewClient(log zerolog.Logger) *Client {
	client := resty.New()
	client.SetTimeout(120 * time.Second)

	return &Client{
		client: client,
		log:    log.With().Str("component", "llm").Logger(),
	}
}

// Query sends the prompt to the provider selected in opts and returns the
// model's text response.
func (c *Client) Query(ctx context.Context, opts Options, prompt string) (string, error) {
	c.log.Debug().
		Str("provider", string(opts.Provider)).
		Str("model", opts.Model).
		Int("prompt_len", len(prompt)).
		Msg("querying LLM")

	switch opts.Provider {
	case ProviderClaude:
		return c.queryAnthropic(ctx, opts, prompt)
	case ProviderOpenRouter:
		return c.queryOpenRouter(ctx, opts, prompt)
	default:
		return "", fmt.Errorf("unknown LLM provider %q", opts.Provider)
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

// anthropicResponse is the subset of the Messages API response we read.
type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) queryAnthropic(ctx context.Context, opts Options, prompt string) (string, error) {
	var result anthropicResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("x-api-key", opts.APIKey).
		SetHeader("anthropic-version", "2023-06-01").
		SetHeader("content-type", "application/json").
		SetBody(chatRequest{
			Model:     opts.Model,
			MaxTokens: maxResponseTokens,
			Messages:  []chatMessage{{Role: "user", Content: prompt}},
		}).
		SetResult(&result).
		SetError(&result).
		Post(anthropicURL)
	if err != nil {
		return "", fmt.Errorf("query anthropic: %w", err)
	}
	if resp.StatusCode() != 200 {
		if result.Error != nil && result.Error.Message != "" {
			return "", fmt.Errorf("anthropic returned HTTP %d: %s", resp.StatusCode(), result.Error.Message)
		}
		return "", fmt.Errorf("anthropic returned HTTP %d", resp.StatusCode())
	}

	out := ""
	for _, block := range result.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	if out == "" {
		return "", fmt.Errorf("anthropic returned an empty response")
	}
	return out, nil
}

// openRouterResponse is the subset of the chat completions response we read.
type openRouterResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) queryOpenRouter(ctx context.Context, opts Options, prompt string) (string, error) {
	var result openRouterResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+opts.APIKey).
		SetHeader("content-type", "application/json").
		SetBody(chatRequest{
			Model:     opts.Model,
			MaxTokens: maxResponseTokens,
			Messages:  []chatMessage{{Role: "user", Content: prompt}},
		}).
		SetResult(&result).
		SetError(&result).
		Post(openRouterURL)
	if err != nil {
		return "", fmt.Errorf("query openrouter: %w", err)
	}
	if resp.StatusCode() != 200 {
		if result.Error != nil && result.Error.Message != "" {
			return "", fmt.Errorf("openrouter returned HTTP %d: %s", resp.StatusCode(), result.Error.Message)
		}
		return "", fmt.Errorf("openrouter returned HTTP %d", resp.StatusCode())
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openrouter returned an empty response")
	}
	return result.Choices[0].Message.Content, nil
}
