package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CalculateArithmetic(t *testing.T) {
	r := NewRegistry(nil)
	ctx := context.Background()

	tests := []struct {
		name       string
		expression string
		want       float64
	}{
		{"addition", "2 + 3", 5},
		{"precedence", "2 + 3 * 4", 14},
		{"parentheses", "(2 + 3) * 4", 20},
		{"division", "10 / 4", 2.5},
		{"modulo", "10 % 3", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Execute(ctx, "calculate", map[string]any{"expression": tt.expression})
			require.NoError(t, err)
			assert.Equal(t, "completed", result["status"])
			assert.InDelta(t, tt.want, result["result"], 1e-9)
		})
	}
}

func TestRegistry_CalculateWithVariables(t *testing.T) {
	r := NewRegistry(nil)

	result, err := r.Execute(context.Background(), "calculate", map[string]any{
		"expression": "price * quantity",
		"price":      9.5,
		"quantity":   4.0,
	})
	require.NoError(t, err)
	assert.InDelta(t, 38.0, result["result"], 1e-9)
}

func TestRegistry_CalculateErrors(t *testing.T) {
	r := NewRegistry(nil)
	ctx := context.Background()

	_, err := r.Execute(ctx, "calculate", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expression parameter is required")

	_, err = r.Execute(ctx, "calculate", map[string]any{"expression": "2 +* 3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid expression")

	_, err = r.Execute(ctx, "calculate", map[string]any{"expression": "unknown_var + 1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluation failed")
}

func TestRegistry_BuiltinsShapeResults(t *testing.T) {
	r := NewRegistry(nil)
	ctx := context.Background()

	result, err := r.Execute(ctx, "search", map[string]any{"query": "open invoices"})
	require.NoError(t, err)
	assert.Equal(t, "completed", result["status"])
	assert.Equal(t, "open invoices", result["query"])

	result, err = r.Execute(ctx, "http_request", map[string]any{"url": "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "GET", result["method"])

	result, err = r.Execute(ctx, "send_email", map[string]any{"to": "ops@example.com", "subject": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "sent", result["status"])
}

func TestRegistry_UnknownToolListsAlternatives(t *testing.T) {
	r := NewRegistry(nil)

	result, err := r.Execute(context.Background(), "teleport", nil)
	require.NoError(t, err)
	assert.Equal(t, "error", result["status"])
	assert.Equal(t, "Tool 'teleport' not found", result["error"])
	available, ok := result["available_tools"].([]string)
	require.True(t, ok)
	assert.Contains(t, available, "calculate")
	assert.False(t, r.Has(context.Background(), "teleport"))
}

func TestRegistry_SchemaRecord(t *testing.T) {
	r := NewRegistry(nil)
	ctx := context.Background()

	record := r.Schema(ctx, "search")
	require.NotNil(t, record)
	assert.Equal(t, "search", record["name"])
	assert.Equal(t, "Search for information on a topic", record["description"])
	params, ok := record["parameters"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "object", params["type"])

	assert.Nil(t, r.Schema(ctx, "teleport"))
}

func TestRegistry_AvailableRespectsAgentList(t *testing.T) {
	r := NewRegistry(nil)
	ctx := context.Background()

	all := r.Available(ctx, nil)
	assert.Contains(t, all, "calculate")
	assert.Contains(t, all, "search")

	restricted := r.Available(ctx, []string{"calculate", "teleport"})
	assert.Equal(t, []string{"calculate"}, restricted)
}
