package reasoning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apa-platform/apacore/pkg/apa"
)

func TestParseResponse_ToolStep(t *testing.T) {
	parsed := ParseResponse(`Thought: I need to look up the customer record first.
Action: database_query
Action Input: {"query": "SELECT * FROM customers WHERE id = 42"}`)

	assert.Equal(t, "I need to look up the customer record first.", parsed.Thought)
	require.NotNil(t, parsed.Action)
	assert.Equal(t, "database_query", parsed.Action.Type)
	assert.Equal(t, "SELECT * FROM customers WHERE id = 42", parsed.Action.Parameters["query"])
	assert.Nil(t, parsed.Action.Result)
}

func TestParseResponse_FinishStep(t *testing.T) {
	parsed := ParseResponse(`Thought: All subtasks are done, nothing left to do.
Action: finish
Result: {"summary": "refund issued", "amount": 12.5}`)

	require.NotNil(t, parsed.Action)
	assert.True(t, parsed.Action.IsFinish())
	assert.Equal(t, "refund issued", parsed.Action.Result["summary"])
	assert.Equal(t, 12.5, parsed.Action.Result["amount"])
	assert.Equal(t, `{"summary": "refund issued", "amount": 12.5}`, parsed.Reflection)
}

func TestParseResponse_CaseInsensitiveLabels(t *testing.T) {
	parsed := ParseResponse(`THOUGHT: checking inventory
action: search
ACTION INPUT: {"q": "widgets"}`)

	assert.Equal(t, "checking inventory", parsed.Thought)
	assert.Equal(t, "search", parsed.Action.Type)
	assert.Equal(t, "widgets", parsed.Action.Parameters["q"])
}

func TestParseResponse_MultilineThought(t *testing.T) {
	parsed := ParseResponse(`Thought: The order is in a strange state.
I should fetch the payment history before touching it.
Action: http_request
Action Input: {"url": "https://payments.internal/orders/9"}`)

	assert.Contains(t, parsed.Thought, "strange state")
	assert.Contains(t, parsed.Thought, "payment history")
	assert.Equal(t, "http_request", parsed.Action.Type)
}

func TestParseResponse_NonJSONInputWrappedAsRaw(t *testing.T) {
	parsed := ParseResponse(`Thought: searching
Action: search
Action Input: latest quarterly report`)

	assert.Equal(t, map[string]any{"raw": "latest quarterly report"}, parsed.Action.Parameters)
}

func TestParseResponse_MissingActionDefaultsToFinish(t *testing.T) {
	parsed := ParseResponse("I think the task is already complete, no action needed.")

	require.NotNil(t, parsed.Action)
	assert.Equal(t, apa.ActionFinish, parsed.Action.Type)
	assert.Empty(t, parsed.Action.Parameters)
}

func TestParseResponse_EmptyInput(t *testing.T) {
	parsed := ParseResponse("")

	assert.Empty(t, parsed.Thought)
	assert.Equal(t, apa.ActionFinish, parsed.Action.Type)
	assert.Empty(t, parsed.Reflection)
}

func TestParseResponse_ResultIgnoredForToolActions(t *testing.T) {
	parsed := ParseResponse(`Thought: calling the calculator
Action: calculate
Action Input: {"expression": "2+2"}
Result: {"value": 4}`)

	assert.Equal(t, "calculate", parsed.Action.Type)
	assert.Nil(t, parsed.Action.Result)
	assert.Equal(t, `{"value": 4}`, parsed.Reflection)
}

func TestParseJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]any
	}{
		{"empty", "", map[string]any{}},
		{"object", `{"a": 1}`, map[string]any{"a": float64(1)}},
		{"plain text", "hello world", map[string]any{"raw": "hello world"}},
		{"json array wrapped", `[1, 2]`, map[string]any{"raw": "[1, 2]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseJSONObject(tt.input))
		})
	}
}
