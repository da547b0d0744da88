package vector

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keywordEmbedder produces deterministic vectors: one axis per known keyword.
// Texts sharing keywords land close together under cosine similarity.
type keywordEmbedder struct {
	keywords []string
}

func (e *keywordEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, len(e.keywords))
	lower := strings.ToLower(text)
	for i, kw := range e.keywords {
		if strings.Contains(lower, kw) {
			vec[i] = 1
		}
	}
	return vec, nil
}

func (e *keywordEmbedder) Dimension() int { return len(e.keywords) }

type failingEmbedder struct{ dim int }

func (e *failingEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, assert.AnError
}

func (e *failingEmbedder) Dimension() int { return e.dim }

func newTestStore(t *testing.T, embedder Embedder) *Store {
	t.Helper()
	backend, err := NewChromemBackend("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	store := NewStore(backend, embedder, "agent_memory", 4)
	require.NoError(t, store.Init(context.Background()))
	return store
}

func TestStore_IndexAndSearchRanksBestFirst(t *testing.T) {
	embedder := &keywordEmbedder{keywords: []string{"invoice", "refund", "report", "deploy"}}
	store := newTestStore(t, embedder)
	ctx := context.Background()

	require.NoError(t, store.Index(ctx, "m1", "issued a refund for invoice 42", nil, map[string]any{"agent_id": "a1"}))
	require.NoError(t, store.Index(ctx, "m2", "generated the weekly report", nil, map[string]any{"agent_id": "a1"}))
	require.NoError(t, store.Index(ctx, "m3", "deployed the staging cluster", nil, map[string]any{"agent_id": "a1"}))

	hits, err := store.Search(ctx, "customer wants a refund on an invoice", 2, nil)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "m1", hits[0].ID)
	assert.Equal(t, "issued a refund for invoice 42", hits[0].Content)
	assert.Greater(t, hits[0].Score, 0.9)
}

func TestStore_SearchFiltersByMetadata(t *testing.T) {
	embedder := &keywordEmbedder{keywords: []string{"invoice", "refund", "report", "deploy"}}
	store := newTestStore(t, embedder)
	ctx := context.Background()

	require.NoError(t, store.Index(ctx, "m1", "refund processed", nil, map[string]any{"agent_id": "a1"}))
	require.NoError(t, store.Index(ctx, "m2", "refund rejected", nil, map[string]any{"agent_id": "a2"}))

	hits, err := store.Search(ctx, "refund", 5, map[string]any{"agent_id": "a2"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "m2", hits[0].ID)
}

func TestStore_SearchEmptyCollection(t *testing.T) {
	embedder := &keywordEmbedder{keywords: []string{"a", "b", "c", "d"}}
	store := newTestStore(t, embedder)

	hits, err := store.Search(context.Background(), "anything", 5, nil)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestStore_TopKClampedToCollectionSize(t *testing.T) {
	embedder := &keywordEmbedder{keywords: []string{"invoice", "refund", "report", "deploy"}}
	store := newTestStore(t, embedder)
	ctx := context.Background()

	require.NoError(t, store.Index(ctx, "m1", "invoice filed", nil, nil))

	hits, err := store.Search(ctx, "invoice", 10, nil)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestStore_Delete(t *testing.T) {
	embedder := &keywordEmbedder{keywords: []string{"invoice", "refund", "report", "deploy"}}
	store := newTestStore(t, embedder)
	ctx := context.Background()

	require.NoError(t, store.Index(ctx, "m1", "invoice filed", nil, nil))
	require.NoError(t, store.Delete(ctx, "m1"))

	hits, err := store.Search(ctx, "invoice", 5, nil)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestStore_CollectionStats(t *testing.T) {
	embedder := &keywordEmbedder{keywords: []string{"invoice", "refund", "report", "deploy"}}
	store := newTestStore(t, embedder)
	ctx := context.Background()

	stats, err := store.CollectionStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, "chromem", stats.Backend)

	require.NoError(t, store.Index(ctx, "m1", "invoice filed", nil, nil))
	require.NoError(t, store.Index(ctx, "m2", "refund processed", nil, nil))

	stats, err = store.CollectionStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
}

func TestStore_ZeroVectorFallback(t *testing.T) {
	store := newTestStore(t, nil)
	ctx := context.Background()

	// Writes land even without an embedder.
	require.NoError(t, store.Index(ctx, "m1", "remembered without embeddings", nil, nil))

	// Failing embedders degrade the same way.
	backend, err := NewChromemBackend("")
	require.NoError(t, err)
	failing := NewStore(backend, &failingEmbedder{dim: 4}, "agent_memory", 4)
	require.NoError(t, failing.Init(ctx))
	require.NoError(t, failing.Index(ctx, "m2", "still stored", nil, nil))
}
