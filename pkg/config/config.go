// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the full service configuration.
type Config struct {
	HTTPPort  string
	Queue     *QueueConfig
	Reasoning *ReasoningConfig
	Vector    *VectorConfig
	Safety    *SafetyConfig
	Retention *RetentionConfig
}

// QueueConfig controls the worker pool that processes pending executions.
type QueueConfig struct {
	WorkerCount             int
	MaxConcurrentRuns       int
	PollInterval            time.Duration
	PollIntervalJitter      time.Duration
	ExecutionTimeout        time.Duration
	HeartbeatInterval       time.Duration
	OrphanDetectionInterval time.Duration
	OrphanThreshold         time.Duration
	GracefulShutdownTimeout time.Duration
}

// ReasoningConfig configures LLM provider access.
type ReasoningConfig struct {
	DefaultProvider  string
	OpenAIAPIKey     string
	AnthropicAPIKey  string
	DisableMock      bool
	IterationTimeout time.Duration
}

// Vector backend names.
const (
	VectorBackendLocal   = "local"
	VectorBackendManaged = "managed"
)

// VectorConfig configures the vector store and embedder.
type VectorConfig struct {
	Backend            string
	Path               string
	Collection         string
	QdrantHost         string
	QdrantPort         int
	QdrantAPIKey       string
	QdrantUseTLS       bool
	EmbeddingModel     string
	EmbeddingDimension int
}

// HITL modes: "wait" blocks the run until a human responds or the timeout
// elapses; "autoreject" answers immediately without human input.
const (
	HITLModeWait       = "wait"
	HITLModeAutoReject = "autoreject"
)

// SafetyConfig configures the safety engine and HITL protocol.
type SafetyConfig struct {
	ApprovalTimeout  time.Duration
	HITLMode         string
	HITLPollInterval time.Duration
}

// RetentionConfig controls background data retention.
type RetentionConfig struct {
	ExecutionRetentionDays int
	HITLRetention          time.Duration
	CleanupInterval        time.Duration
}

// LoadFromEnv builds the configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	queue, err := loadQueueConfig()
	if err != nil {
		return nil, err
	}
	vector, err := loadVectorConfig()
	if err != nil {
		return nil, err
	}
	safety, err := loadSafetyConfig()
	if err != nil {
		return nil, err
	}
	retention, err := loadRetentionConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		Queue:    queue,
		Reasoning: &ReasoningConfig{
			DefaultProvider:  getEnv("REASONING_PROVIDER", "openai"),
			OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
			AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
			DisableMock:      getEnvBool("REASONING_DISABLE_MOCK", false),
			IterationTimeout: getEnvDuration("REASONING_ITERATION_TIMEOUT", 120*time.Second),
		},
		Vector:    vector,
		Safety:    safety,
		Retention: retention,
	}, nil
}

func loadRetentionConfig() (*RetentionConfig, error) {
	days, err := getEnvInt("RETENTION_EXECUTION_DAYS", 90)
	if err != nil {
		return nil, err
	}
	return &RetentionConfig{
		ExecutionRetentionDays: days,
		HITLRetention:          getEnvDuration("RETENTION_HITL", 720*time.Hour),
		CleanupInterval:        getEnvDuration("CLEANUP_INTERVAL", time.Hour),
	}, nil
}

func loadQueueConfig() (*QueueConfig, error) {
	workers, err := getEnvInt("QUEUE_WORKER_COUNT", 4)
	if err != nil {
		return nil, err
	}
	maxConcurrent, err := getEnvInt("QUEUE_MAX_CONCURRENT_RUNS", 20)
	if err != nil {
		return nil, err
	}
	return &QueueConfig{
		WorkerCount:             workers,
		MaxConcurrentRuns:       maxConcurrent,
		PollInterval:            getEnvDuration("QUEUE_POLL_INTERVAL", 2*time.Second),
		PollIntervalJitter:      getEnvDuration("QUEUE_POLL_INTERVAL_JITTER", 500*time.Millisecond),
		ExecutionTimeout:        getEnvDuration("QUEUE_EXECUTION_TIMEOUT", 30*time.Minute),
		HeartbeatInterval:       getEnvDuration("QUEUE_HEARTBEAT_INTERVAL", 15*time.Second),
		OrphanDetectionInterval: getEnvDuration("QUEUE_ORPHAN_DETECTION_INTERVAL", time.Minute),
		OrphanThreshold:         getEnvDuration("QUEUE_ORPHAN_THRESHOLD", 2*time.Minute),
		GracefulShutdownTimeout: getEnvDuration("QUEUE_SHUTDOWN_TIMEOUT", 60*time.Second),
	}, nil
}

func loadVectorConfig() (*VectorConfig, error) {
	backend := getEnv("VECTOR_BACKEND", VectorBackendLocal)
	if backend != VectorBackendLocal && backend != VectorBackendManaged {
		return nil, fmt.Errorf("invalid VECTOR_BACKEND %q: must be %q or %q",
			backend, VectorBackendLocal, VectorBackendManaged)
	}
	qdrantPort, err := getEnvInt("QDRANT_PORT", 6334)
	if err != nil {
		return nil, err
	}
	dimension, err := getEnvInt("EMBEDDING_DIMENSION", 1536)
	if err != nil {
		return nil, err
	}
	return &VectorConfig{
		Backend:            backend,
		Path:               os.Getenv("VECTOR_PATH"),
		Collection:         getEnv("VECTOR_COLLECTION", "agent_memory"),
		QdrantHost:         getEnv("QDRANT_HOST", "localhost"),
		QdrantPort:         qdrantPort,
		QdrantAPIKey:       os.Getenv("QDRANT_API_KEY"),
		QdrantUseTLS:       getEnvBool("QDRANT_USE_TLS", false),
		EmbeddingModel:     getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		EmbeddingDimension: dimension,
	}, nil
}

func loadSafetyConfig() (*SafetyConfig, error) {
	timeoutSecs, err := getEnvInt("APPROVAL_TIMEOUT_SECONDS", 3600)
	if err != nil {
		return nil, err
	}
	mode := getEnv("HITL_MODE", HITLModeWait)
	if mode != HITLModeWait && mode != HITLModeAutoReject {
		return nil, fmt.Errorf("invalid HITL_MODE %q: must be %q or %q",
			mode, HITLModeWait, HITLModeAutoReject)
	}
	return &SafetyConfig{
		ApprovalTimeout:  time.Duration(timeoutSecs) * time.Second,
		HITLMode:         mode,
		HITLPollInterval: getEnvDuration("HITL_POLL_INTERVAL", 3*time.Second),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
