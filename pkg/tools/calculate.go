package tools

import (
	"context"
	"fmt"

	"github.com/Knetic/govaluate"
)

// calculateTool evaluates arithmetic and boolean expressions with govaluate.
// Expressions run in a sandboxed evaluator; there is no host code execution.
func calculateTool() Tool {
	return Tool{
		Name:        "calculate",
		Description: "Evaluate a mathematical expression",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"expression": map[string]any{"type": "string"},
			},
			"required": []any{"expression"},
		},
		Handler: func(_ context.Context, params map[string]any) (map[string]any, error) {
			exprStr, ok := params["expression"].(string)
			if !ok || exprStr == "" {
				return nil, fmt.Errorf("calculate: expression parameter is required")
			}

			expr, err := govaluate.NewEvaluableExpression(exprStr)
			if err != nil {
				return nil, fmt.Errorf("calculate: invalid expression: %w", err)
			}

			// Non-string parameters double as expression variables.
			vars := make(map[string]any, len(params))
			for k, v := range params {
				if k == "expression" {
					continue
				}
				vars[k] = v
			}

			result, err := expr.Evaluate(vars)
			if err != nil {
				return nil, fmt.Errorf("calculate: evaluation failed: %w", err)
			}

			return map[string]any{
				"status":     "completed",
				"expression": exprStr,
				"result":     result,
			}, nil
		},
	}
}
