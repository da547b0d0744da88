// Package executor implements the ReAct control loop that drives one
// (agent, execution, task) to a terminal state: reason, validate, act,
// observe, persist, update, repeat.
package executor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/hitlrequest"
	"github.com/apa-platform/apacore/pkg/apa"
	"github.com/apa-platform/apacore/pkg/memory"
	"github.com/apa-platform/apacore/pkg/safety"
	"github.com/apa-platform/apacore/pkg/services"
)

// Reasoner produces one ReAct step.
type Reasoner interface {
	Reason(ctx context.Context, agent *ent.Agent, task apa.Task, execCtx *apa.Context, availableTools []string, actions []*apa.Action, observations []apa.Observation) (*apa.ReasoningOutput, error)
}

// Approver opens an HITL request and blocks until it resolves.
type Approver interface {
	RequestHumanApproval(ctx context.Context, agent *ent.Agent, runID string, action *apa.Action, reason, riskLevel string) (*safety.Decision, error)
}

// ToolRunner executes tools by name.
type ToolRunner interface {
	Execute(ctx context.Context, name string, params map[string]any) (map[string]any, error)
	Available(ctx context.Context, agentTools []string) []string
}

// Executor drives the control loop. One executor instance serves many runs;
// per-run state lives on the stack of ExecuteTask. At most one ExecuteTask
// runs per execution id, enforced by single-dispatch upstream.
type Executor struct {
	executions *services.ExecutionService
	traces     *services.TraceService
	feedback   *services.FeedbackService
	reasoner   Reasoner
	safety     *safety.Engine
	approver   Approver
	contextMgr *memory.Manager
	tools      ToolRunner
	logger     *slog.Logger
}

// Config wires the executor's collaborators.
type Config struct {
	Executions *services.ExecutionService
	Traces     *services.TraceService
	Feedback   *services.FeedbackService
	Reasoner   Reasoner
	Safety     *safety.Engine
	Approver   Approver
	ContextMgr *memory.Manager
	Tools      ToolRunner
	Logger     *slog.Logger
}

// New creates an executor.
func New(cfg Config) *Executor {
	return &Executor{
		executions: cfg.Executions,
		traces:     cfg.Traces,
		feedback:   cfg.Feedback,
		reasoner:   cfg.Reasoner,
		safety:     cfg.Safety,
		approver:   cfg.Approver,
		contextMgr: cfg.ContextMgr,
		tools:      cfg.Tools,
		logger:     cfg.Logger.With("component", "agent_executor"),
	}
}

// runState is the per-run loop state.
type runState struct {
	actions      []*apa.Action
	observations []apa.Observation
	iteration    int
	status       string
	result       map[string]any
	reason       string
	errMsg       string
}

// ExecuteTask runs the ReAct loop for one execution until a terminal state.
// maxIterations < 0 means the agent's configured budget. The returned result
// describes how the loop ended; the execution row itself is finalized by the
// caller (worker or API handler) from that result.
func (e *Executor) ExecuteTask(ctx context.Context, agent *ent.Agent, executionID string, task apa.Task, maxIterations int) *apa.ExecutionResult {
	if maxIterations < 0 {
		maxIterations = agent.MaxIterations
	}

	logger := e.logger.With("agent_id", agent.ID, "execution_id", executionID)
	logger.Info("Starting task execution",
		"task_description", task.Description, "max_iterations", maxIterations)

	execCtx := e.contextMgr.LoadContext(ctx, agent.ID, executionID, task)
	for k, v := range e.contextMgr.SharedContext(executionID) {
		execCtx.Knowledge[k] = v
	}
	defer e.contextMgr.ClearSharedContext(executionID)

	availableTools := e.availableTools(ctx, agent)

	state := &runState{status: "running"}

	for state.iteration < maxIterations {
		cancelled, err := e.executions.IsCancelled(ctx, executionID)
		if err != nil {
			e.failRun(ctx, agent, executionID, task, state, nil, err)
			break
		}
		if cancelled {
			e.cancelRun(ctx, agent, executionID, state)
			break
		}

		step, err := e.reasoner.Reason(ctx, agent, task, execCtx, availableTools, state.actions, state.observations)
		if err != nil {
			e.failRun(ctx, agent, executionID, task, state, nil, err)
			break
		}
		action := step.Action

		if action.IsFinish() {
			if err := e.storeTrace(ctx, agent.ID, executionID, state.iteration, step, action,
				apa.Observation{"message": "Task completed"}); err != nil {
				e.failRun(ctx, agent, executionID, task, state, action, err)
				break
			}
			state.status = apa.StatusCompleted
			state.result = action.Result
			break
		}

		verdict := e.safety.ValidateAction(agent, action, execCtx)
		if !verdict.Allowed {
			if verdict.RequiresHumanApproval && e.approver != nil {
				decision, err := e.approver.RequestHumanApproval(ctx, agent, executionID, action, verdict.Reason, verdict.RiskLevel)
				if err != nil {
					e.failRun(ctx, agent, executionID, task, state, action, err)
					break
				}
				if decision.Status != string(hitlrequest.StatusApproved) {
					state.status = apa.StatusBlocked
					state.reason = verdict.Reason
					e.storeTrace(ctx, agent.ID, executionID, state.iteration, step, action, apa.Observation{
						"blocked":         true,
						"reason":          verdict.Reason,
						"hitl_request_id": decision.RequestID,
						"hitl_status":     decision.Status,
					})
					logger.Info("Run blocked by HITL decision",
						"request_id", decision.RequestID, "hitl_status", decision.Status)
					break
				}
				logger.Info("Action approved by human", "request_id", decision.RequestID,
					"action_type", action.Type)
			} else {
				state.status = apa.StatusBlocked
				state.reason = verdict.Reason
				e.storeTrace(ctx, agent.ID, executionID, state.iteration, step, action, apa.Observation{
					"blocked": true,
					"reason":  verdict.Reason,
				})
				logger.Info("Run blocked by guardrails", "action_type", action.Type,
					"reason", verdict.Reason)
				break
			}
		}

		observation := e.executeAction(ctx, action)

		if err := e.storeTrace(ctx, agent.ID, executionID, state.iteration, step, action, observation); err != nil {
			e.failRun(ctx, agent, executionID, task, state, action, err)
			break
		}

		state.actions = append(state.actions, action)
		state.observations = append(state.observations, observation)
		state.iteration++

		e.contextMgr.UpdateContext(execCtx, action, observation)

		if agent.EnableMemory {
			_, err := e.contextMgr.StoreMemory(ctx, agent.ID,
				fmt.Sprintf("Action: %s - Result: %v", action.Type, observation["status"]),
				"episodic",
				map[string]any{
					"action":      action,
					"observation": observation,
					"task_id":     task.ID,
				}, nil)
			if err != nil {
				logger.Warn("Failed to store step memory", "error", err)
			}
		}
	}

	if state.iteration >= maxIterations && state.status == "running" {
		state.status = apa.StatusTimeout
		state.reason = fmt.Sprintf("Maximum iterations (%d) exceeded", maxIterations)
	}

	if state.status == apa.StatusCompleted && agent.EnableLearning {
		e.storeOutcomeFeedback(ctx, agent.ID, executionID, task, state, "success", true, "")
	}

	logger.Info("Task execution finished", "status", state.status,
		"iterations", state.iteration, "actions_taken", len(state.actions))

	return &apa.ExecutionResult{
		ExecutionID: executionID,
		Status:      state.status,
		Output:      state.result,
		Iterations:  state.iteration,
		Reason:      firstNonEmpty(state.reason, state.errMsg),
	}
}

// availableTools resolves the tool names offered to the reasoner. Agents with
// tools disabled still get the finish action.
func (e *Executor) availableTools(ctx context.Context, agent *ent.Agent) []string {
	if !agent.EnableTools {
		return []string{apa.ActionFinish}
	}
	names := e.tools.Available(ctx, agent.Tools)
	return append(names, apa.ActionFinish)
}

// executeAction runs the action's tool and shapes the result into an
// observation. Tool failures are structured observations, never loop errors.
func (e *Executor) executeAction(ctx context.Context, action *apa.Action) apa.Observation {
	result, err := e.tools.Execute(ctx, action.Type, action.Parameters)
	if err != nil {
		return apa.Observation{
			"status":      "error",
			"action_type": action.Type,
			"error":       err.Error(),
			"timestamp":   time.Now().Format(time.RFC3339),
		}
	}

	// Registry-shaped failures (unknown tool, declared-tool errors) carry
	// their own status and pass through so the model sees the details.
	if status, ok := result["status"].(string); ok && status == "error" {
		obs := apa.Observation{
			"action_type": action.Type,
			"timestamp":   time.Now().Format(time.RFC3339),
		}
		for k, v := range result {
			obs[k] = v
		}
		return obs
	}

	return apa.Observation{
		"status":      "success",
		"action_type": action.Type,
		"result":      result,
		"timestamp":   time.Now().Format(time.RFC3339),
	}
}

// cancelRun records the cooperative cancellation observed at an iteration
// boundary. The execution row is already cancelled; only the trace is added.
func (e *Executor) cancelRun(ctx context.Context, agent *ent.Agent, executionID string, state *runState) {
	state.status = apa.StatusCancelled
	state.reason = "execution cancelled"
	e.storeTrace(ctx, agent.ID, executionID, state.iteration,
		&apa.ReasoningOutput{Thought: "Execution cancelled"},
		lastAction(state), apa.Observation{"cancelled": true})
	e.logger.Info("Run cancelled at iteration boundary",
		"execution_id", executionID, "iteration", state.iteration)
}

// failRun records an unrecoverable loop error: a trace with the error
// observation, and learning feedback when enabled.
func (e *Executor) failRun(ctx context.Context, agent *ent.Agent, executionID string, task apa.Task, state *runState, attempted *apa.Action, cause error) {
	state.status = apa.StatusError
	state.errMsg = cause.Error()

	if attempted == nil {
		attempted = lastAction(state)
	}
	e.storeTrace(ctx, agent.ID, executionID, state.iteration,
		&apa.ReasoningOutput{Thought: "Error occurred during execution", Reflection: "Execution failed"},
		attempted, apa.Observation{"error": cause.Error()})

	if agent.EnableLearning {
		e.storeOutcomeFeedback(ctx, agent.ID, executionID, task, state, "failure", false, cause.Error())
	}
	e.logger.Error("Run failed", "execution_id", executionID, "error", cause)
}

func (e *Executor) storeTrace(ctx context.Context, agentID, runID string, stepIndex int, step *apa.ReasoningOutput, action *apa.Action, observation apa.Observation) error {
	_, err := e.traces.Append(ctx, services.AppendInput{
		RunID:       runID,
		AgentID:     agentID,
		StepIndex:   stepIndex,
		Thought:     step.Thought,
		Action:      actionMap(action),
		Observation: observation,
		Reflection:  step.Reflection,
		TokensUsed:  step.TokensUsed,
		LatencyMS:   int(step.LatencyMS),
	})
	if err != nil {
		e.logger.Error("Failed to store reasoning trace",
			"run_id", runID, "step_index", stepIndex, "error", err)
	}
	return err
}

func (e *Executor) storeOutcomeFeedback(ctx context.Context, agentID, runID string, task apa.Task, state *runState, outcome string, success bool, errMsg string) {
	_, err := e.feedback.Record(ctx, services.FeedbackInput{
		AgentID:         agentID,
		RunID:           runID,
		FeedbackType:    "execution_outcome",
		TaskDescription: task.Description,
		ActionTaken:     actionMap(lastAction(state)),
		Outcome:         outcome,
		Success:         success,
		ErrorMessage:    errMsg,
		Metadata:        map[string]any{},
	})
	if err != nil {
		e.logger.Warn("Failed to record learning feedback", "run_id", runID, "error", err)
	}
}

func lastAction(state *runState) *apa.Action {
	if len(state.actions) == 0 {
		return &apa.Action{}
	}
	return state.actions[len(state.actions)-1]
}

// actionMap converts an action to the JSON shape stored on trace and
// feedback rows.
func actionMap(action *apa.Action) map[string]any {
	if action == nil {
		return map[string]any{}
	}
	m := map[string]any{"type": action.Type}
	if action.Description != "" {
		m["description"] = action.Description
	}
	if action.Parameters != nil {
		m["parameters"] = action.Parameters
	}
	if action.Result != nil {
		m["result"] = action.Result
	}
	if action.Type == "" {
		m = map[string]any{}
	}
	return m
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
