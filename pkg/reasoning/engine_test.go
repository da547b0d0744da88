package reasoning

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/pkg/apa"
	"github.com/apa-platform/apacore/pkg/config"
)

type fakeProvider struct {
	name     string
	response string
	err      error

	lastRequest CompletionRequest
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Complete(_ context.Context, req CompletionRequest) (*CompletionResponse, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return &CompletionResponse{Text: f.response, TokensUsed: 42}, nil
}

func testEngine(cfg *config.ReasoningConfig) *Engine {
	return NewEngine(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testAgent() *ent.Agent {
	return &ent.Agent{
		ID:          "agent-1",
		Name:        "worker",
		Model:       "gpt-4",
		Provider:    "openai",
		Temperature: 7,
		MaxTokens:   1024,
	}
}

func TestEngineReason_ParsesProviderResponse(t *testing.T) {
	provider := &fakeProvider{
		name: "openai",
		response: `Thought: checking the knowledge base
Action: search
Action Input: {"q": "billing"}`,
	}
	engine := testEngine(&config.ReasoningConfig{DisableMock: true})
	engine.RegisterProvider(provider)

	out, err := engine.Reason(context.Background(), testAgent(), apa.Task{Description: "look up billing"}, nil, []string{"search"}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "checking the knowledge base", out.Thought)
	assert.Equal(t, "search", out.Action.Type)
	assert.Equal(t, 42, out.TokensUsed)
	assert.GreaterOrEqual(t, out.LatencyMS, int64(0))
}

func TestEngineReason_RequestShape(t *testing.T) {
	provider := &fakeProvider{name: "openai", response: "Action: finish"}
	engine := testEngine(&config.ReasoningConfig{DisableMock: true})
	engine.RegisterProvider(provider)

	agent := testAgent()
	_, err := engine.Reason(context.Background(), agent, apa.Task{Description: "x"}, nil, nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4", provider.lastRequest.Model)
	assert.InDelta(t, 0.7, provider.lastRequest.Temperature, 1e-9)
	assert.Equal(t, 1024, provider.lastRequest.MaxTokens)
	assert.Equal(t, reactSystemPrompt, provider.lastRequest.System)
	assert.Contains(t, provider.lastRequest.Prompt, "Task: x")
}

func TestEngineReason_MaxTokensDefault(t *testing.T) {
	provider := &fakeProvider{name: "openai", response: "Action: finish"}
	engine := testEngine(&config.ReasoningConfig{DisableMock: true})
	engine.RegisterProvider(provider)

	agent := testAgent()
	agent.MaxTokens = 0
	_, err := engine.Reason(context.Background(), agent, apa.Task{}, nil, nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2000, provider.lastRequest.MaxTokens)
}

func TestEngineReason_MockFallbackOnMissingProvider(t *testing.T) {
	engine := testEngine(&config.ReasoningConfig{})

	out, err := engine.Reason(context.Background(), testAgent(), apa.Task{}, nil, nil, nil, nil)
	require.NoError(t, err)

	assert.True(t, out.Action.IsFinish())
	assert.Equal(t, "success", out.Action.Result["status"])
	assert.Equal(t, mockTokensUsed, out.TokensUsed)
	assert.Equal(t, "Successfully completed the task", out.Reflection)
}

func TestEngineReason_MockFallbackOnProviderError(t *testing.T) {
	provider := &fakeProvider{name: "openai", err: errors.New("rate limited")}
	engine := testEngine(&config.ReasoningConfig{})
	engine.RegisterProvider(provider)

	out, err := engine.Reason(context.Background(), testAgent(), apa.Task{}, nil, nil, nil, nil)
	require.NoError(t, err)

	assert.True(t, out.Action.IsFinish())
	assert.Equal(t, "Mock completion", out.Action.Result["message"])
}

func TestEngineReason_DisableMockSurfacesErrors(t *testing.T) {
	engine := testEngine(&config.ReasoningConfig{DisableMock: true})

	_, err := engine.Reason(context.Background(), testAgent(), apa.Task{}, nil, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no provider registered")

	provider := &fakeProvider{name: "openai", err: errors.New("boom")}
	engine.RegisterProvider(provider)

	_, err = engine.Reason(context.Background(), testAgent(), apa.Task{}, nil, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestEngineReason_EmptyProviderUsesDefault(t *testing.T) {
	provider := &fakeProvider{name: "openai", response: "Action: finish"}
	engine := testEngine(&config.ReasoningConfig{DefaultProvider: "openai", DisableMock: true})
	engine.RegisterProvider(provider)

	agent := testAgent()
	agent.Provider = ""
	out, err := engine.Reason(context.Background(), agent, apa.Task{}, nil, nil, nil, nil)
	require.NoError(t, err)

	assert.True(t, out.Action.IsFinish())
	assert.Equal(t, "gpt-4", provider.lastRequest.Model)
}

// stalledProvider blocks until the call context expires.
type stalledProvider struct{}

func (s *stalledProvider) Name() string { return "openai" }

func (s *stalledProvider) Complete(ctx context.Context, _ CompletionRequest) (*CompletionResponse, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestEngineReason_StepTimeoutBoundsProviderCall(t *testing.T) {
	engine := testEngine(&config.ReasoningConfig{
		DisableMock:      true,
		IterationTimeout: 10 * time.Millisecond,
	})
	engine.RegisterProvider(&stalledProvider{})

	_, err := engine.Reason(context.Background(), testAgent(), apa.Task{}, nil, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEngineReason_ProviderNameNormalized(t *testing.T) {
	provider := &fakeProvider{name: "Anthropic", response: "Action: finish"}
	engine := testEngine(&config.ReasoningConfig{DisableMock: true})
	engine.RegisterProvider(provider)

	agent := testAgent()
	agent.Provider = " ANTHROPIC "
	_, err := engine.Reason(context.Background(), agent, apa.Task{}, nil, nil, nil, nil)
	require.NoError(t, err)
}
