package reasoning

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider adapts the go-openai chat completions API.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates the adapter. Returns nil client error when the
// key is empty so callers can decide whether to register it.
func NewOpenAIProvider(apiKey string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: api key is required")
	}
	return &OpenAIProvider{client: openai.NewClient(apiKey)}, nil
}

// Name identifies the provider.
func (p *OpenAIProvider) Name() string { return "openai" }

// Complete issues a chat completion and returns the first choice.
func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai api error: response contained no choices")
	}
	return &CompletionResponse{
		Text:       resp.Choices[0].Message.Content,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}

var _ Provider = (*OpenAIProvider)(nil)
