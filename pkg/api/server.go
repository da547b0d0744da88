// Package api exposes the HTTP surface of the execution core: the
// synchronous reasoning entry point, trace/memory/feedback reads, the HITL
// operator endpoints, cancellation, and health.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/apa-platform/apacore/pkg/database"
	"github.com/apa-platform/apacore/pkg/executor"
	"github.com/apa-platform/apacore/pkg/queue"
	"github.com/apa-platform/apacore/pkg/safety"
	"github.com/apa-platform/apacore/pkg/services"
)

// Server wires the HTTP handlers to the service layer.
type Server struct {
	podID      string
	db         *database.Client
	agents     *services.AgentService
	executions *services.ExecutionService
	traces     *services.TraceService
	memories   *services.MemoryService
	feedback   *services.FeedbackService
	hitl       *safety.HITL
	executor   *executor.Executor
	pool       *queue.WorkerPool
	logger     *slog.Logger

	httpServer *http.Server
}

// ServerConfig carries the server's collaborators.
type ServerConfig struct {
	PodID      string
	DB         *database.Client
	Agents     *services.AgentService
	Executions *services.ExecutionService
	Traces     *services.TraceService
	Memories   *services.MemoryService
	Feedback   *services.FeedbackService
	HITL       *safety.HITL
	Executor   *executor.Executor
	Pool       *queue.WorkerPool
	Logger     *slog.Logger
}

// NewServer creates the API server.
func NewServer(cfg ServerConfig) *Server {
	return &Server{
		podID:      cfg.PodID,
		db:         cfg.DB,
		agents:     cfg.Agents,
		executions: cfg.Executions,
		traces:     cfg.Traces,
		memories:   cfg.Memories,
		feedback:   cfg.Feedback,
		hitl:       cfg.HITL,
		executor:   cfg.Executor,
		pool:       cfg.Pool,
		logger:     cfg.Logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders(), s.requestLogger())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/agents/:id/reason", s.reasonHandler)
		v1.GET("/agents/:id/reasoning-trace", s.reasoningTraceHandler)
		v1.GET("/agents/:id/memory", s.memoryHandler)
		v1.POST("/agents/:id/learn", s.learnHandler)

		v1.GET("/hitl/pending", s.hitlPendingHandler)
		v1.POST("/hitl/:id/respond", s.hitlRespondHandler)
		v1.GET("/hitl/stats", s.hitlStatsHandler)

		v1.POST("/executions/:id/cancel", s.cancelExecutionHandler)

		v1.GET("/health", s.healthHandler)
	}

	return router
}

// Start begins serving on the given port. Blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("HTTP server listening", "port", port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
