package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apa-platform/apacore/pkg/apa"
	"github.com/apa-platform/apacore/pkg/queue"
	"github.com/apa-platform/apacore/pkg/services"
)

// reasonHandler runs a task through the agent's reasoning loop synchronously
// and returns the terminal result. The execution row is created already
// claimed by this pod so queue workers never pick it up.
func (s *Server) reasonHandler(c *gin.Context) {
	agentID := c.Param("id")

	var req reasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	agent, err := s.agents.GetActive(ctx, agentID)
	if err != nil {
		serviceError(c, err)
		return
	}

	task := apa.Task{
		Description: req.Description,
		Parameters:  req.Parameters,
	}
	exec, err := s.executions.CreateRunning(ctx, services.CreateInput{
		ID:      req.ExecutionID,
		AgentID: agentID,
		Input: map[string]any{
			"description": req.Description,
			"parameters":  req.Parameters,
		},
		Metadata: map[string]any{"trigger": "api"},
	}, s.podID)
	if err != nil {
		serviceError(c, err)
		return
	}
	task.ID = exec.ID

	maxIterations := -1
	if req.MaxIterations != nil {
		maxIterations = *req.MaxIterations
	}

	result := s.executor.ExecuteTask(ctx, agent, exec.ID, task, maxIterations)

	run := queue.RunResultFrom(result)
	if err := s.executions.Complete(ctx, exec.ID, services.TerminalUpdate{
		Status:       run.Status,
		Output:       run.Output,
		ErrorMessage: run.ErrorMessage,
	}); err != nil {
		s.logger.Error("Failed to record terminal state for synchronous run",
			"execution_id", exec.ID, "error", err)
	}

	c.JSON(http.StatusOK, reasonResponse{
		AgentID:     agentID,
		ExecutionID: exec.ID,
		Result:      result,
	})
}

// reasoningTraceHandler returns traces for an agent, optionally scoped to one
// run. Run-scoped traces come back in step order; agent-wide traces newest
// first.
func (s *Server) reasoningTraceHandler(c *gin.Context) {
	agentID := c.Param("id")
	runID := c.Query("run_id")
	limit := queryInt(c, "limit", 50)

	ctx := c.Request.Context()
	if _, err := s.agents.Get(ctx, agentID); err != nil {
		serviceError(c, err)
		return
	}

	var (
		traces []traceEntry
		err    error
	)
	if runID != "" {
		rows, listErr := s.traces.ListByRun(ctx, runID, limit)
		err = listErr
		for _, row := range rows {
			traces = append(traces, toTraceEntry(row))
		}
	} else {
		rows, listErr := s.traces.ListByAgent(ctx, agentID, limit)
		err = listErr
		for _, row := range rows {
			traces = append(traces, toTraceEntry(row))
		}
	}
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, traceListResponse{
		AgentID: agentID,
		RunID:   runID,
		Count:   len(traces),
		Traces:  traces,
	})
}

// memoryHandler returns an agent's stored memories, newest first.
func (s *Server) memoryHandler(c *gin.Context) {
	agentID := c.Param("id")
	memoryType := c.Query("memory_type")
	limit := queryInt(c, "limit", 20)

	ctx := c.Request.Context()
	if _, err := s.agents.Get(ctx, agentID); err != nil {
		serviceError(c, err)
		return
	}

	rows, err := s.memories.List(ctx, agentID, memoryType, limit)
	if err != nil {
		serviceError(c, err)
		return
	}

	memories := make([]memoryEntry, 0, len(rows))
	for _, row := range rows {
		memories = append(memories, toMemoryEntry(row))
	}

	c.JSON(http.StatusOK, memoryListResponse{
		AgentID:    agentID,
		MemoryType: memoryType,
		Count:      len(memories),
		Memories:   memories,
	})
}

// learnHandler records manual learning feedback for an agent.
func (s *Server) learnHandler(c *gin.Context) {
	agentID := c.Param("id")

	var req learnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.agents.Get(ctx, agentID); err != nil {
		serviceError(c, err)
		return
	}

	fb, err := s.feedback.Record(ctx, services.FeedbackInput{
		AgentID:         agentID,
		FeedbackType:    "manual",
		TaskDescription: req.TaskDescription,
		ActionTaken:     req.ActionTaken,
		Outcome:         req.Outcome,
		Success:         req.Success,
		ErrorMessage:    req.ErrorMessage,
		Suggestions:     req.Suggestions,
		Metadata:        map[string]any{"source": "user"},
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, learnResponse{
		FeedbackID: fb.ID,
		AgentID:    agentID,
		Status:     "stored",
	})
}

// queryInt parses an integer query parameter, falling back to def on absence
// or garbage.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
