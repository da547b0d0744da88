package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/apa-platform/apacore/ent"
	"github.com/apa-platform/apacore/ent/execution"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned executions.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running executions with stale heartbeats and
// marks them as failed (terminal; runs are not resumable).
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Execution.Query().
		Where(
			execution.StatusEQ(execution.StatusRunning),
			execution.LastInteractionAtNotNil(),
			execution.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned executions: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned executions", "count", len(orphans))

	recovered := 0
	for _, exec := range orphans {
		if err := p.recoverOrphanedExecution(ctx, exec); err != nil {
			slog.Error("Failed to recover orphaned execution",
				"execution_id", exec.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedExecution marks a single orphaned execution as failed.
func (p *WorkerPool) recoverOrphanedExecution(ctx context.Context, exec *ent.Execution) error {
	log := slog.With("execution_id", exec.ID, "old_pod_id", exec.PodID)

	now := time.Now()
	lastHeartbeat := "unknown"
	if exec.LastInteractionAt != nil {
		lastHeartbeat = exec.LastInteractionAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if exec.PodID != nil {
		podID = *exec.PodID
	}

	// Conditional on still-running so a late terminal write from the owning
	// pod is never overwritten.
	n, err := p.client.Execution.Update().
		Where(execution.IDEQ(exec.ID), execution.StatusEQ(execution.StatusRunning)).
		SetStatus(execution.StatusFailed).
		SetCompletedAt(now).
		SetErrorMessage(fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark execution as failed: %w", err)
	}
	if n > 0 {
		log.Warn("Orphaned execution marked as failed", "last_heartbeat", lastHeartbeat)
	}
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of executions owned by
// this pod that were running when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Execution.Query().
		Where(
			execution.StatusEQ(execution.StatusRunning),
			execution.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, exec := range orphans {
		err := exec.Update().
			SetStatus(execution.StatusFailed).
			SetCompletedAt(now).
			SetErrorMessage(fmt.Sprintf("Orphaned: pod %s restarted while execution was in progress", podID)).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan",
				"execution_id", exec.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan recovered", "execution_id", exec.ID)
	}

	return nil
}
