// Package vector provides semantic memory indexing over pluggable backends.
//
// The split mirrors the rest of the memory path: an Embedder turns text into
// vectors, a Backend stores and searches them, and Store composes the two.
// The vector index is best-effort; the relational memory rows remain the
// source of truth.
package vector

import "context"

// Result is a single search hit.
type Result struct {
	ID       string
	Content  string
	Score    float64
	Metadata map[string]any
}

// Backend is a vector storage backend.
type Backend interface {
	// Upsert adds or replaces a document with a pre-computed embedding.
	Upsert(ctx context.Context, collection, id string, vector []float32, metadata map[string]any) error

	// Search returns the topK most similar documents, optionally restricted
	// by exact-match metadata filters. Scores are backend-native.
	Search(ctx context.Context, collection string, vector []float32, topK int, filter map[string]any) ([]Result, error)

	// Delete removes a document by id.
	Delete(ctx context.Context, collection, id string) error

	// Count returns the number of documents in the collection.
	Count(ctx context.Context, collection string) (int, error)

	// EnsureCollection creates the collection if it does not exist.
	EnsureCollection(ctx context.Context, collection string, dimension int) error

	// Name identifies the backend.
	Name() string

	// Close releases backend resources.
	Close() error
}

// Embedder turns text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}
