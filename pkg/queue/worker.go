package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/execution"
	"github.com/apa-platform/apacore/pkg/config"
	"github.com/apa-platform/apacore/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes executions.
type Worker struct {
	id          string
	podID       string
	client      *ent.Client
	config      *config.QueueConfig
	runExecutor RunExecutor
	executions  *services.ExecutionService
	pool        RunRegistry
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for run registration.
type RunRegistry interface {
	RegisterRun(executionID string, cancel context.CancelFunc)
	UnregisterRun(executionID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, runExecutor RunExecutor, pool RunRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		runExecutor:  runExecutor,
		executions:   services.NewExecutionService(client),
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing execution", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an execution, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Execution.Query().
		Where(execution.StatusEQ(execution.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active executions: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	// 2. Claim next execution
	exec, err := w.claimNextExecution(ctx)
	if err != nil {
		return err
	}

	log := slog.With("execution_id", exec.ID, "agent_id", exec.AgentID, "worker_id", w.id)
	log.Info("Execution claimed")

	w.setStatus(WorkerStatusWorking, exec.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create run context with timeout
	runCtx, cancelRun := context.WithTimeout(ctx, w.config.ExecutionTimeout)
	defer cancelRun()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterRun(exec.ID, cancelRun)
	defer w.pool.UnregisterRun(exec.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, exec.ID)

	// 6. Execute the run
	result := w.runExecutor.Execute(runCtx, exec)

	// 6a. Nil-guard: synthesize a safe result if the executor returned nil
	if result == nil {
		switch {
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			result = &RunResult{
				Status:       execution.StatusTimeout,
				ErrorMessage: fmt.Sprintf("execution timed out after %v", w.config.ExecutionTimeout),
			}
		case errors.Is(runCtx.Err(), context.Canceled):
			result = &RunResult{
				Status:       execution.StatusCancelled,
				ErrorMessage: context.Canceled.Error(),
			}
		default:
			result = &RunResult{
				Status:       execution.StatusFailed,
				ErrorMessage: "executor returned nil result",
			}
		}
	}

	// 7. Stop heartbeat
	cancelHeartbeat()

	// 8. Write terminal status (background context — the run ctx may be
	// cancelled). Conditional on still-running so a concurrent cancel wins.
	err = w.executions.Complete(context.Background(), exec.ID, services.TerminalUpdate{
		Status:       result.Status,
		Output:       result.Output,
		ErrorMessage: result.ErrorMessage,
	})
	if err != nil {
		log.Error("Failed to update execution terminal status", "error", err)
		return err
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Execution processing complete", "status", result.Status)
	return nil
}

// claimNextExecution atomically claims the next pending execution using
// FOR UPDATE SKIP LOCKED. FIFO by created_at.
func (w *Worker) claimNextExecution(ctx context.Context) (*ent.Execution, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exec, err := tx.Execution.Query().
		Where(execution.StatusEQ(execution.StatusPending)).
		Order(ent.Asc(execution.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query pending execution: %w", err)
	}

	// Claim: set running, pod_id, started_at, last_interaction_at
	now := time.Now()
	exec, err = exec.Update().
		SetStatus(execution.StatusRunning).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return exec, nil
}

// runHeartbeat periodically updates last_interaction_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, executionID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.executions.Heartbeat(ctx, executionID); err != nil {
				slog.Warn("Heartbeat update failed", "execution_id", executionID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
