// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/apa-platform/apacore/pkg/config"
	"github.com/apa-platform/apacore/pkg/safety"
	"github.com/apa-platform/apacore/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes terminal executions (and their traces) past retention
//   - Removes resolved HITL requests past their retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config     *config.RetentionConfig
	executions *services.ExecutionService
	hitl       *safety.HITL

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	executions *services.ExecutionService,
	hitl *safety.HITL,
) *Service {
	return &Service{
		config:     cfg,
		executions: executions,
		hitl:       hitl,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"execution_retention_days", s.config.ExecutionRetentionDays,
		"hitl_retention", s.config.HITLRetention,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeOldExecutions(ctx)
	s.purgeResolvedHITLRequests(ctx)
}

func (s *Service) purgeOldExecutions(_ context.Context) {
	count, err := s.executions.PurgeOldExecutions(context.Background(), s.config.ExecutionRetentionDays)
	if err != nil {
		slog.Error("Retention: execution purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged expired executions", "count", count)
	}
}

func (s *Service) purgeResolvedHITLRequests(_ context.Context) {
	count, err := s.hitl.PurgeResolvedRequests(context.Background(), s.config.HITLRetention)
	if err != nil {
		slog.Error("Retention: hitl purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged resolved hitl requests", "count", count)
	}
}
