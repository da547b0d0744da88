package reasoning

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/pkg/apa"
)

func promptAgent() *ent.Agent {
	return &ent.Agent{
		ID:           "agent-1",
		Name:         "support-bot",
		SystemPrompt: "You handle support tickets.",
		Instructions: "Always check the knowledge base before responding.",
	}
}

func TestBuildPrompt_SectionOrder(t *testing.T) {
	task := apa.Task{Description: "Resolve ticket 42", Parameters: map[string]any{"ticket_id": 42}}
	prompt := BuildPrompt(promptAgent(), task, &apa.Context{TaskID: "t1"}, []string{"search", "finish"}, nil, nil)

	idx := func(s string) int { return strings.Index(prompt, s) }

	assert.Equal(t, 0, idx("You handle support tickets."))
	assert.Less(t, idx("Instructions:"), idx("Task: Resolve ticket 42"))
	assert.Less(t, idx("Task: Resolve ticket 42"), idx("Available Tools:"))
	assert.Less(t, idx("Available Tools:"), idx("Previous Steps:"))
	assert.Less(t, idx("Previous Steps:"), idx("Current Context:"))
	assert.Less(t, idx("Current Context:"), idx("Thought: [Your reasoning about what to do next]"))
	assert.Contains(t, prompt, "- search\n")
	assert.Contains(t, prompt, `"ticket_id":42`)
	assert.Contains(t, prompt, "Action: finish")
}

func TestBuildPrompt_DefaultSystemPrompt(t *testing.T) {
	agent := promptAgent()
	agent.SystemPrompt = ""
	agent.Instructions = ""

	prompt := BuildPrompt(agent, apa.Task{}, nil, nil, nil, nil)

	assert.True(t, strings.HasPrefix(prompt, "You are a helpful AI agent."))
	assert.NotContains(t, prompt, "Instructions:")
	assert.Contains(t, prompt, "Task: Complete the task.")
}

func TestBuildPrompt_StepHistory(t *testing.T) {
	actions := []*apa.Action{
		{Type: "search", Description: "look up the refund policy", Parameters: map[string]any{"q": "refund policy"}},
		{Type: "http_request", Parameters: map[string]any{"url": "https://kb.internal/refunds"}},
	}
	observations := []apa.Observation{
		{"status": "completed", "result": map[string]any{"matches": 3}},
		{"status": "error", "error": "timeout"},
	}

	prompt := BuildPrompt(promptAgent(), apa.Task{Description: "x"}, nil, []string{"search"}, actions, observations)

	assert.Contains(t, prompt, "Step 1:\nAction: search - look up the refund policy")
	assert.Contains(t, prompt, `Observation: completed - {"matches":3}`)
	// Steps without a description fall back to the parameter payload.
	assert.Contains(t, prompt, "Step 2:\nAction: http_request - {\"url\":\"https://kb.internal/refunds\"}")
	assert.Contains(t, prompt, "Observation: error - {}")
	assert.NotContains(t, prompt, "Step 3:")
}
