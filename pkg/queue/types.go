// Package queue provides the worker pool that claims pending executions and
// drives them to a terminal state.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/execution"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no pending executions are in the queue.
	ErrNoRunsAvailable = errors.New("no executions available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor drives one claimed execution to a terminal state.
//
// The executor writes intermediate state (reasoning traces, memories, HITL
// rows, learning feedback) progressively during the run. The worker only
// handles claiming, heartbeat, and the terminal status update.
type RunExecutor interface {
	Execute(ctx context.Context, exec *ent.Execution) *RunResult
}

// RunResult is the terminal state of one run as the worker records it.
type RunResult struct {
	Status       execution.Status // completed, failed, cancelled, timeout
	Output       map[string]any
	ErrorMessage string
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
