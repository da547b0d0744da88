package safety

import (
	"fmt"
	"log/slog"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/pkg/apa"
)

// riskLevels maps action types to their built-in risk classification.
// Unknown action types classify as medium.
var riskLevels = map[string]string{
	"data_deletion":         apa.RiskCritical,
	"financial_transaction": apa.RiskCritical,
	"user_communication":    apa.RiskHigh,
	"data_modification":     apa.RiskMedium,
	"data_read":             apa.RiskLow,
	"calculation":           apa.RiskLow,
}

// requiresApproval lists action types that always need a human decision
// unless the agent's guardrails set allow_high_risk.
var requiresApproval = map[string]bool{
	"data_deletion":         true,
	"financial_transaction": true,
	"user_communication":    true,
}

// Verdict is the result of validating one action.
type Verdict struct {
	Allowed               bool   `json:"allowed"`
	RequiresHumanApproval bool   `json:"requires_human_approval,omitempty"`
	Reason                string `json:"reason,omitempty"`
	RiskLevel             string `json:"risk_level"`
}

// Engine validates actions against built-in risk classification and
// per-agent guardrails. Validation is pure; the HITL escalation path lives
// on the HITL type.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates a safety engine.
func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{logger: logger.With("component", "safety_engine")}
}

// ClassifyRisk returns the risk level for an action type.
func (e *Engine) ClassifyRisk(actionType string) string {
	if level, ok := riskLevels[actionType]; ok {
		return level
	}
	return apa.RiskMedium
}

// ValidateAction checks an action against the agent's guardrails, in order:
// explicit block list, high-risk approval gate, then custom conditions.
func (e *Engine) ValidateAction(agent *ent.Agent, action *apa.Action, execCtx *apa.Context) Verdict {
	actionType := action.Type
	if actionType == "" {
		actionType = "unknown"
	}
	riskLevel := e.ClassifyRisk(actionType)
	guardrails := agent.SafetyGuardrails

	for _, blocked := range stringSlice(guardrails["blocked_actions"]) {
		if actionType == blocked {
			return Verdict{
				Allowed:   false,
				Reason:    fmt.Sprintf("Action '%s' is blocked by agent guardrails", actionType),
				RiskLevel: riskLevel,
			}
		}
	}

	if requiresApproval[actionType] && !boolValue(guardrails["allow_high_risk"]) {
		return Verdict{
			Allowed:               false,
			RequiresHumanApproval: true,
			Reason:                fmt.Sprintf("Action '%s' requires human approval", actionType),
			RiskLevel:             riskLevel,
		}
	}

	for _, raw := range anySlice(guardrails["conditions"]) {
		condition, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if !e.evaluateCondition(condition, action, execCtx) {
			return Verdict{
				Allowed:   false,
				Reason:    fmt.Sprintf("Guardrail condition failed: %s", conditionName(condition)),
				RiskLevel: riskLevel,
			}
		}
	}

	return Verdict{Allowed: true, RiskLevel: riskLevel}
}

func conditionName(condition map[string]any) string {
	if name, ok := condition["name"].(string); ok && name != "" {
		return name
	}
	return "unknown"
}

func boolValue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// stringSlice coerces a JSON-decoded guardrail value into strings.
func stringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func anySlice(v any) []any {
	vals, _ := v.([]any)
	return vals
}
