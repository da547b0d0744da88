package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	assert.Equal(t, 2*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, "openai", cfg.Reasoning.DefaultProvider)
	assert.False(t, cfg.Reasoning.DisableMock)
	assert.Equal(t, VectorBackendLocal, cfg.Vector.Backend)
	assert.Equal(t, "agent_memory", cfg.Vector.Collection)
	assert.Equal(t, 1536, cfg.Vector.EmbeddingDimension)
	assert.Equal(t, "text-embedding-3-small", cfg.Vector.EmbeddingModel)
	assert.Equal(t, time.Hour, cfg.Safety.ApprovalTimeout)
	assert.Equal(t, HITLModeWait, cfg.Safety.HITLMode)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("QUEUE_WORKER_COUNT", "2")
	t.Setenv("VECTOR_BACKEND", "managed")
	t.Setenv("QDRANT_HOST", "qdrant.internal")
	t.Setenv("APPROVAL_TIMEOUT_SECONDS", "60")
	t.Setenv("HITL_MODE", "autoreject")
	t.Setenv("REASONING_DISABLE_MOCK", "true")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, VectorBackendManaged, cfg.Vector.Backend)
	assert.Equal(t, "qdrant.internal", cfg.Vector.QdrantHost)
	assert.Equal(t, time.Minute, cfg.Safety.ApprovalTimeout)
	assert.Equal(t, HITLModeAutoReject, cfg.Safety.HITLMode)
	assert.True(t, cfg.Reasoning.DisableMock)
}

func TestLoadFromEnv_InvalidBackend(t *testing.T) {
	t.Setenv("VECTOR_BACKEND", "pinecone")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VECTOR_BACKEND")
}

func TestLoadFromEnv_InvalidInt(t *testing.T) {
	t.Setenv("QUEUE_WORKER_COUNT", "many")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUEUE_WORKER_COUNT")
}
