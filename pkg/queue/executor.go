package queue

import (
	"context"
	"log/slog"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/execution"
	"github.com/apa-platform/apacore/pkg/apa"
	"github.com/apa-platform/apacore/pkg/executor"
	"github.com/apa-platform/apacore/pkg/services"
)

// AgentRunExecutor adapts the ReAct executor to the queue's RunExecutor
// contract: it resolves the agent, shapes the task from the execution input,
// runs the loop, and maps the loop outcome onto the execution status enum.
type AgentRunExecutor struct {
	agents   *services.AgentService
	executor *executor.Executor
	logger   *slog.Logger
}

// NewAgentRunExecutor creates the adapter.
func NewAgentRunExecutor(agents *services.AgentService, exec *executor.Executor, logger *slog.Logger) *AgentRunExecutor {
	return &AgentRunExecutor{
		agents:   agents,
		executor: exec,
		logger:   logger.With("component", "run_executor"),
	}
}

// Execute drives one claimed execution to a terminal state.
func (a *AgentRunExecutor) Execute(ctx context.Context, exec *ent.Execution) *RunResult {
	agent, err := a.agents.GetActive(ctx, exec.AgentID)
	if err != nil {
		a.logger.Error("Cannot execute run: agent unavailable",
			"execution_id", exec.ID, "agent_id", exec.AgentID, "error", err)
		return &RunResult{
			Status:       execution.StatusFailed,
			ErrorMessage: err.Error(),
		}
	}

	task, maxIterations := TaskFromInput(exec.Input)
	result := a.executor.ExecuteTask(ctx, agent, exec.ID, task, maxIterations)
	return RunResultFrom(result)
}

// TaskFromInput shapes the task stored on the execution row. Returns the
// iteration budget from the input, or -1 for the agent default.
func TaskFromInput(input map[string]any) (apa.Task, int) {
	task := apa.Task{}
	if id, ok := input["id"].(string); ok {
		task.ID = id
	}
	if desc, ok := input["description"].(string); ok {
		task.Description = desc
	}
	if params, ok := input["parameters"].(map[string]any); ok {
		task.Parameters = params
	}

	maxIterations := -1
	switch v := input["max_iterations"].(type) {
	case float64:
		maxIterations = int(v)
	case int:
		maxIterations = v
	}
	return task, maxIterations
}

// RunResultFrom maps a loop outcome to the terminal execution status. Blocked
// and errored runs both land on failed; the distinction survives in the
// output payload and the trace.
func RunResultFrom(result *apa.ExecutionResult) *RunResult {
	out := &RunResult{
		Output: map[string]any{
			"status":     result.Status,
			"iterations": result.Iterations,
		},
	}
	if result.Output != nil {
		out.Output["result"] = result.Output
	}
	if result.Reason != "" {
		out.Output["reason"] = result.Reason
	}

	switch result.Status {
	case apa.StatusCompleted:
		out.Status = execution.StatusCompleted
	case apa.StatusTimeout:
		out.Status = execution.StatusTimeout
		out.ErrorMessage = result.Reason
	case apa.StatusCancelled:
		out.Status = execution.StatusCancelled
	default: // blocked, error
		out.Status = execution.StatusFailed
		out.ErrorMessage = result.Reason
	}
	return out
}
