package vector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apa-platform/apacore/pkg/config"
)

// Store composes an embedder and a backend into the memory index used by the
// context manager. The embedder is optional: without one (or when it fails)
// documents are indexed under a zero vector so writes still land and the
// caller degrades to recency-based retrieval.
type Store struct {
	backend    Backend
	embedder   Embedder
	collection string
	dimension  int
}

// NewStore creates a store over the given backend. embedder may be nil.
func NewStore(backend Backend, embedder Embedder, collection string, dimension int) *Store {
	if embedder != nil {
		dimension = embedder.Dimension()
	}
	return &Store{
		backend:    backend,
		embedder:   embedder,
		collection: collection,
		dimension:  dimension,
	}
}

// NewStoreFromConfig builds the backend named by cfg.Backend and wraps it.
// The embedder is created only when an OpenAI key is available; without one
// the store runs in zero-vector mode.
func NewStoreFromConfig(cfg *config.VectorConfig, openAIKey string) (*Store, error) {
	var backend Backend
	var err error
	switch cfg.Backend {
	case config.VectorBackendLocal:
		backend, err = NewChromemBackend(cfg.Path)
	case config.VectorBackendManaged:
		backend, err = NewQdrantBackend(QdrantConfig{
			Host:   cfg.QdrantHost,
			Port:   cfg.QdrantPort,
			APIKey: cfg.QdrantAPIKey,
			UseTLS: cfg.QdrantUseTLS,
		})
	default:
		return nil, fmt.Errorf("unknown vector backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	var embedder Embedder
	if openAIKey != "" {
		embedder, err = NewOpenAIEmbedder(openAIKey, cfg.EmbeddingModel, cfg.EmbeddingDimension)
		if err != nil {
			return nil, err
		}
	} else {
		slog.Warn("No embedding API key configured; vector store runs in zero-vector mode")
	}

	return NewStore(backend, embedder, cfg.Collection, cfg.EmbeddingDimension), nil
}

// Embed returns the embedding for text, falling back to a zero vector when
// the embedder is missing or fails. The width is always the configured
// dimension, so callers can persist the vector alongside the document.
func (s *Store) Embed(ctx context.Context, text string) []float32 {
	if s.embedder == nil {
		return make([]float32, s.dimension)
	}
	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		slog.Warn("Embedding failed, using zero vector", "error", err)
		return make([]float32, s.dimension)
	}
	return vec
}

// Init ensures the collection exists.
func (s *Store) Init(ctx context.Context) error {
	return s.backend.EnsureCollection(ctx, s.collection, s.dimension)
}

// Index upserts content under id, generating an embedding when the caller
// does not supply one. The content is carried in the metadata so search hits
// can surface it without a relational read.
func (s *Store) Index(ctx context.Context, id, content string, embedding []float32, metadata map[string]any) error {
	if embedding == nil {
		embedding = s.Embed(ctx, content)
	}
	merged := make(map[string]any, len(metadata)+1)
	for k, v := range metadata {
		merged[k] = v
	}
	merged["content"] = content
	return s.backend.Upsert(ctx, s.collection, id, embedding, merged)
}

// Search embeds the query and returns the topK most similar documents.
func (s *Store) Search(ctx context.Context, query string, topK int, filter map[string]any) ([]Result, error) {
	if topK <= 0 {
		topK = 5
	}
	return s.backend.Search(ctx, s.collection, s.Embed(ctx, query), topK, filter)
}

// Delete removes a document by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, s.collection, id)
}

// Stats summarizes the collection for health and diagnostics.
type Stats struct {
	Count   int    `json:"count"`
	Backend string `json:"backend"`
}

// CollectionStats returns the document count and backend identity.
func (s *Store) CollectionStats(ctx context.Context) (Stats, error) {
	count, err := s.backend.Count(ctx, s.collection)
	if err != nil {
		return Stats{Backend: s.backend.Name()}, err
	}
	return Stats{Count: count, Backend: s.backend.Name()}, nil
}

// BackendName identifies the underlying backend.
func (s *Store) BackendName() string { return s.backend.Name() }

// Close releases backend resources.
func (s *Store) Close() error { return s.backend.Close() }
