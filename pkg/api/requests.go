package api

// reasonRequest triggers a synchronous reasoning run for an agent.
type reasonRequest struct {
	Description string         `json:"description" binding:"required"`
	Parameters  map[string]any `json:"parameters"`
	ExecutionID string         `json:"execution_id"`
	// MaxIterations overrides the agent's default budget when > 0.
	MaxIterations *int `json:"max_iterations"`
}

// learnRequest submits manual learning feedback for an agent.
type learnRequest struct {
	TaskDescription string         `json:"task_description"`
	ActionTaken     map[string]any `json:"action_taken"`
	Outcome         string         `json:"outcome" binding:"required"`
	Success         bool           `json:"success"`
	ErrorMessage    string         `json:"error_message"`
	Suggestions     string         `json:"improvement_suggestions"`
}

// hitlRespondRequest records an operator decision on a pending approval.
type hitlRespondRequest struct {
	Decision  string `json:"decision" binding:"required"`
	Feedback  string `json:"feedback"`
	RespondBy string `json:"responded_by"`
}
