package safety

import (
	"github.com/Knetic/govaluate"

	"github.com/apa-platform/apacore/pkg/apa"
)

// evaluateCondition runs one custom guardrail condition. Two condition types
// are supported:
//
//   - parameter: {"type": "parameter", "name": ..., "expression": "amount <= 1000"}
//     The expression is evaluated over the action's parameters. Evaluation
//     errors (missing parameter, non-boolean result) fail the condition,
//     since a misconfigured deny-rule should not silently pass.
//   - context: {"type": "context", "name": ..., "key": ..., "equals": ...}
//     Passes when shared knowledge holds the given value under key.
//
// Unknown condition types pass: guardrails express deny-rules, and this
// layer stays forward-compatible with condition types it does not know.
func (e *Engine) evaluateCondition(condition map[string]any, action *apa.Action, execCtx *apa.Context) bool {
	condType, _ := condition["type"].(string)
	switch condType {
	case "parameter":
		return e.evaluateParameterCondition(condition, action)
	case "context":
		return evaluateContextCondition(condition, execCtx)
	default:
		return true
	}
}

func (e *Engine) evaluateParameterCondition(condition map[string]any, action *apa.Action) bool {
	exprStr, ok := condition["expression"].(string)
	if !ok || exprStr == "" {
		return true
	}

	expr, err := govaluate.NewEvaluableExpression(exprStr)
	if err != nil {
		e.logger.Warn("Invalid guardrail condition expression",
			"condition", conditionName(condition), "error", err)
		return false
	}

	params := make(map[string]any, len(action.Parameters))
	for k, v := range action.Parameters {
		params[k] = v
	}

	result, err := expr.Evaluate(params)
	if err != nil {
		e.logger.Warn("Guardrail condition evaluation failed",
			"condition", conditionName(condition), "error", err)
		return false
	}

	pass, ok := result.(bool)
	return ok && pass
}

func evaluateContextCondition(condition map[string]any, execCtx *apa.Context) bool {
	key, ok := condition["key"].(string)
	if !ok || key == "" {
		return true
	}
	if execCtx == nil || execCtx.Knowledge == nil {
		return false
	}
	return execCtx.Knowledge[key] == condition["equals"]
}
