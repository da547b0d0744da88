package safety

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/pkg/apa"
)

func testEngine() *Engine {
	return NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func guardedAgent(guardrails map[string]any) *ent.Agent {
	return &ent.Agent{ID: "agent-1", Name: "guarded", SafetyGuardrails: guardrails}
}

func TestClassifyRisk(t *testing.T) {
	engine := testEngine()

	tests := []struct {
		actionType string
		want       string
	}{
		{"data_deletion", apa.RiskCritical},
		{"financial_transaction", apa.RiskCritical},
		{"user_communication", apa.RiskHigh},
		{"data_modification", apa.RiskMedium},
		{"data_read", apa.RiskLow},
		{"calculation", apa.RiskLow},
		{"something_new", apa.RiskMedium},
		{"", apa.RiskMedium},
	}
	for _, tt := range tests {
		t.Run(tt.actionType, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.ClassifyRisk(tt.actionType))
		})
	}
}

func TestValidateAction_Allowed(t *testing.T) {
	engine := testEngine()

	verdict := engine.ValidateAction(guardedAgent(nil), &apa.Action{Type: "data_read"}, nil)

	assert.True(t, verdict.Allowed)
	assert.False(t, verdict.RequiresHumanApproval)
	assert.Equal(t, apa.RiskLow, verdict.RiskLevel)
}

func TestValidateAction_BlockedAction(t *testing.T) {
	engine := testEngine()
	agent := guardedAgent(map[string]any{
		"blocked_actions": []any{"send_email", "data_deletion"},
	})

	verdict := engine.ValidateAction(agent, &apa.Action{Type: "send_email"}, nil)

	assert.False(t, verdict.Allowed)
	assert.False(t, verdict.RequiresHumanApproval)
	assert.Contains(t, verdict.Reason, "blocked by agent guardrails")
}

func TestValidateAction_HighRiskRequiresApproval(t *testing.T) {
	engine := testEngine()

	verdict := engine.ValidateAction(guardedAgent(nil), &apa.Action{Type: "financial_transaction"}, nil)

	assert.False(t, verdict.Allowed)
	assert.True(t, verdict.RequiresHumanApproval)
	assert.Equal(t, apa.RiskCritical, verdict.RiskLevel)
}

func TestValidateAction_AllowHighRiskBypassesApproval(t *testing.T) {
	engine := testEngine()
	agent := guardedAgent(map[string]any{"allow_high_risk": true})

	verdict := engine.ValidateAction(agent, &apa.Action{Type: "user_communication"}, nil)

	assert.True(t, verdict.Allowed)
	assert.Equal(t, apa.RiskHigh, verdict.RiskLevel)
}

func TestValidateAction_BlockListWinsOverAllowHighRisk(t *testing.T) {
	engine := testEngine()
	agent := guardedAgent(map[string]any{
		"allow_high_risk": true,
		"blocked_actions": []any{"data_deletion"},
	})

	verdict := engine.ValidateAction(agent, &apa.Action{Type: "data_deletion"}, nil)

	assert.False(t, verdict.Allowed)
	assert.Contains(t, verdict.Reason, "blocked")
}

func TestValidateAction_ParameterCondition(t *testing.T) {
	engine := testEngine()
	agent := guardedAgent(map[string]any{
		"conditions": []any{
			map[string]any{
				"type":       "parameter",
				"name":       "amount_cap",
				"expression": "amount <= 1000",
			},
		},
	})

	allowed := engine.ValidateAction(agent, &apa.Action{
		Type:       "data_modification",
		Parameters: map[string]any{"amount": 500},
	}, nil)
	assert.True(t, allowed.Allowed)

	denied := engine.ValidateAction(agent, &apa.Action{
		Type:       "data_modification",
		Parameters: map[string]any{"amount": 5000},
	}, nil)
	assert.False(t, denied.Allowed)
	assert.Contains(t, denied.Reason, "amount_cap")
}

func TestValidateAction_ParameterConditionMissingVariableFails(t *testing.T) {
	engine := testEngine()
	agent := guardedAgent(map[string]any{
		"conditions": []any{
			map[string]any{
				"type":       "parameter",
				"name":       "amount_cap",
				"expression": "amount <= 1000",
			},
		},
	})

	verdict := engine.ValidateAction(agent, &apa.Action{Type: "data_modification"}, nil)

	assert.False(t, verdict.Allowed)
}

func TestValidateAction_ContextCondition(t *testing.T) {
	engine := testEngine()
	agent := guardedAgent(map[string]any{
		"conditions": []any{
			map[string]any{
				"type":   "context",
				"name":   "verified_customer",
				"key":    "customer_verified",
				"equals": true,
			},
		},
	})
	action := &apa.Action{Type: "data_modification"}

	verified := &apa.Context{Knowledge: map[string]any{"customer_verified": true}}
	assert.True(t, engine.ValidateAction(agent, action, verified).Allowed)

	unverified := &apa.Context{Knowledge: map[string]any{"customer_verified": false}}
	denied := engine.ValidateAction(agent, action, unverified)
	assert.False(t, denied.Allowed)
	assert.Contains(t, denied.Reason, "verified_customer")

	assert.False(t, engine.ValidateAction(agent, action, nil).Allowed)
}

func TestValidateAction_UnknownConditionTypePasses(t *testing.T) {
	engine := testEngine()
	agent := guardedAgent(map[string]any{
		"conditions": []any{
			map[string]any{"type": "time_window", "name": "business_hours"},
		},
	})

	verdict := engine.ValidateAction(agent, &apa.Action{Type: "calculation"}, nil)

	assert.True(t, verdict.Allowed)
}
