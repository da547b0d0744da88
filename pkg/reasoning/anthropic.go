package reasoning

import (
	"context"
	"fmt"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider adapts the anthropic-sdk-go messages API.
type AnthropicProvider struct {
	client sdk.Client
}

// NewAnthropicProvider creates the adapter.
func NewAnthropicProvider(apiKey string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic: api key is required")
	}
	return &AnthropicProvider{client: sdk.NewClient(option.WithAPIKey(apiKey))}, nil
}

// Name identifies the provider.
func (p *AnthropicProvider) Name() string { return "anthropic" }

// Complete issues a Messages.New call and concatenates the text blocks.
// Token usage is input plus output tokens.
func (p *AnthropicProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	params := sdk.MessageNewParams{
		Model:     sdk.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var text string
	for _, block := range msg.Content {
		if t := block.AsText(); t.Text != "" {
			text += t.Text
		}
	}
	if text == "" {
		return nil, fmt.Errorf("anthropic api error: response contained no text")
	}

	return &CompletionResponse{
		Text:       text,
		TokensUsed: int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
	}, nil
}

var _ Provider = (*AnthropicProvider)(nil)
