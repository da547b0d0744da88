package reasoning

import "github.com/apa-platform/apacore/pkg/apa"

// mockTokensUsed is the fixed usage reported by the mock path.
const mockTokensUsed = 150

// mockOutput returns the deterministic fallback step used when no provider
// is configured or a provider call fails. It always finishes the run so
// development environments without API keys still terminate.
func mockOutput() *apa.ReasoningOutput {
	return &apa.ReasoningOutput{
		Thought: "Analyzing the task and determining next steps...",
		Action: &apa.Action{
			Type:       apa.ActionFinish,
			Parameters: map[string]any{},
			Result:     map[string]any{"status": "success", "message": "Mock completion"},
		},
		Reflection: "Successfully completed the task",
		TokensUsed: mockTokensUsed,
	}
}
