// apacore server — exposes the agent reasoning HTTP API and runs the queue
// workers that drive asynchronous executions.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/apa-platform/apacore/pkg/api"
	"github.com/apa-platform/apacore/pkg/cleanup"
	"github.com/apa-platform/apacore/pkg/config"
	"github.com/apa-platform/apacore/pkg/database"
	"github.com/apa-platform/apacore/pkg/executor"
	"github.com/apa-platform/apacore/pkg/memory"
	"github.com/apa-platform/apacore/pkg/queue"
	"github.com/apa-platform/apacore/pkg/reasoning"
	"github.com/apa-platform/apacore/pkg/safety"
	"github.com/apa-platform/apacore/pkg/services"
	"github.com/apa-platform/apacore/pkg/tools"
	"github.com/apa-platform/apacore/pkg/vector"
	"github.com/apa-platform/apacore/pkg/version"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	envFile := flag.String("env-file",
		os.Getenv("ENV_FILE"),
		"Path to optional .env file")
	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			slog.Warn("Could not load .env file, continuing with existing environment",
				"path", *envFile, "error", err)
		} else {
			slog.Info("Loaded environment", "path", *envFile)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	podID := resolvePodID()
	slog.Info("Starting apacore", "version", version.Full(), "pod_id", podID)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs migrations on startup)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Domain services
	agentService := services.NewAgentService(dbClient.Client)
	executionService := services.NewExecutionService(dbClient.Client)
	traceService := services.NewTraceService(dbClient.Client)
	memoryService := services.NewMemoryService(dbClient.Client)
	feedbackService := services.NewFeedbackService(dbClient.Client)
	toolService := services.NewToolService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Vector store for memory retrieval. Failure degrades to
	// recency-based retrieval rather than blocking startup.
	var index memory.VectorIndex
	vectorStore, err := vector.NewStoreFromConfig(cfg.Vector, cfg.Reasoning.OpenAIAPIKey)
	if err != nil {
		slog.Error("Failed to initialize vector store; memory retrieval degrades to recency", "error", err)
	} else {
		if err := vectorStore.Init(ctx); err != nil {
			slog.Error("Failed to initialize vector collection; memory retrieval degrades to recency", "error", err)
		} else {
			index = vectorStore
			defer func() {
				if err := vectorStore.Close(); err != nil {
					slog.Error("Error closing vector store", "error", err)
				}
			}()
			slog.Info("Vector store initialized", "backend", vectorStore.BackendName())
		}
	}

	// 6. Reasoning, safety, memory, tools
	reasoningEngine := reasoning.NewEngine(cfg.Reasoning, logger)
	safetyEngine := safety.NewEngine(logger)
	hitl := safety.NewHITL(dbClient.Client, cfg.Safety, logger)
	contextManager := memory.NewManager(memoryService, index, logger)
	toolRegistry := tools.NewRegistry(toolService)

	agentExecutor := executor.New(executor.Config{
		Executions: executionService,
		Traces:     traceService,
		Feedback:   feedbackService,
		Reasoner:   reasoningEngine,
		Safety:     safetyEngine,
		Approver:   hitl,
		ContextMgr: contextManager,
		Tools:      toolRegistry,
		Logger:     logger,
	})

	// 7. Background retention cleanup
	cleanupService := cleanup.NewService(cfg.Retention, executionService, hitl)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. Worker pool for queued executions
	runExecutor := queue.NewAgentRunExecutor(agentService, agentExecutor, logger)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, runExecutor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. HTTP server
	httpServer := api.NewServer(api.ServerConfig{
		PodID:      podID,
		DB:         dbClient,
		Agents:     agentService,
		Executions: executionService,
		Traces:     traceService,
		Memories:   memoryService,
		Feedback:   feedbackService,
		HITL:       hitl,
		Executor:   agentExecutor,
		Pool:       workerPool,
		Logger:     logger,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(cfg.HTTPPort); err != nil {
			errCh <- err
		}
	}()

	slog.Info("apacore started successfully",
		"pod_id", podID,
		"http_port", cfg.HTTPPort,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: workers finish active runs, then the HTTP
	// server drains.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
