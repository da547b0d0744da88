package reasoning

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/pkg/apa"
	"github.com/apa-platform/apacore/pkg/config"
)

// Engine produces one ReAct step per call. Providers are registered at
// startup; agents without a provider use the engine default, and a missing
// provider falls back to the mock step unless mock is disabled.
type Engine struct {
	providers       map[string]Provider
	defaultProvider string
	stepTimeout     time.Duration
	disableMock     bool
	logger          *slog.Logger
}

// NewEngine builds an engine from configuration, registering whichever
// providers have credentials.
func NewEngine(cfg *config.ReasoningConfig, logger *slog.Logger) *Engine {
	e := &Engine{
		providers:       make(map[string]Provider),
		defaultProvider: strings.ToLower(strings.TrimSpace(cfg.DefaultProvider)),
		stepTimeout:     cfg.IterationTimeout,
		disableMock:     cfg.DisableMock,
		logger:          logger.With("component", "reasoning_engine"),
	}
	if cfg.OpenAIAPIKey != "" {
		if p, err := NewOpenAIProvider(cfg.OpenAIAPIKey); err == nil {
			e.providers[p.Name()] = p
		}
	}
	if cfg.AnthropicAPIKey != "" {
		if p, err := NewAnthropicProvider(cfg.AnthropicAPIKey); err == nil {
			e.providers[p.Name()] = p
		}
	}
	return e
}

// RegisterProvider adds or replaces a provider adapter.
func (e *Engine) RegisterProvider(p Provider) {
	e.providers[strings.ToLower(p.Name())] = p
}

// Reason builds the prompt for the current step, calls the agent's provider,
// and parses the response into a step. Provider failures degrade to the mock
// step unless mock is disabled, in which case the error is returned.
func (e *Engine) Reason(ctx context.Context, agent *ent.Agent, task apa.Task, execCtx *apa.Context, availableTools []string, actions []*apa.Action, observations []apa.Observation) (*apa.ReasoningOutput, error) {
	start := time.Now()

	prompt := BuildPrompt(agent, task, execCtx, availableTools, actions, observations)

	maxTokens := agent.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2000
	}
	req := CompletionRequest{
		Model:       agent.Model,
		System:      reactSystemPrompt,
		Prompt:      prompt,
		Temperature: float64(agent.Temperature) / 10.0,
		MaxTokens:   maxTokens,
	}

	providerName := strings.ToLower(strings.TrimSpace(agent.Provider))
	if providerName == "" {
		providerName = e.defaultProvider
	}
	provider, ok := e.providers[providerName]
	if !ok {
		if e.disableMock {
			return nil, fmt.Errorf("no provider registered for %q", agent.Provider)
		}
		e.logger.Debug("Provider not configured, using mock reasoning",
			"agent_id", agent.ID, "provider", agent.Provider)
		out := mockOutput()
		out.LatencyMS = time.Since(start).Milliseconds()
		return out, nil
	}

	callCtx := ctx
	if e.stepTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.stepTimeout)
		defer cancel()
	}

	resp, err := provider.Complete(callCtx, req)
	if err != nil {
		if e.disableMock {
			return nil, fmt.Errorf("reasoning step failed: %w", err)
		}
		e.logger.Warn("Provider call failed, falling back to mock reasoning",
			"agent_id", agent.ID, "provider", providerName, "error", err)
		out := mockOutput()
		out.LatencyMS = time.Since(start).Milliseconds()
		return out, nil
	}

	parsed := ParseResponse(resp.Text)
	out := &apa.ReasoningOutput{
		Thought:    parsed.Thought,
		Action:     parsed.Action,
		Reflection: parsed.Reflection,
		TokensUsed: resp.TokensUsed,
		LatencyMS:  time.Since(start).Milliseconds(),
	}
	return out, nil
}
