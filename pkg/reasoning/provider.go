package reasoning

import "context"

// CompletionRequest is a single non-streaming completion call.
type CompletionRequest struct {
	Model       string
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// CompletionResponse carries the raw completion text and token usage.
type CompletionResponse struct {
	Text       string
	TokensUsed int
}

// Provider is an LLM provider adapter.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

// reactSystemPrompt frames every provider call.
const reactSystemPrompt = "You are an AI agent using the ReAct pattern (Reasoning + Acting). Think step by step."
