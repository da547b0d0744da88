package vector

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/philippgille/chromem-go"
)

// ChromemBackend stores vectors in-process using chromem-go, with optional
// gob file persistence. This is the "local" backend: no external services,
// cosine similarity, memory-bound.
type ChromemBackend struct {
	db          *chromem.DB
	persistPath string

	mu          sync.RWMutex
	collections map[string]*chromem.Collection

	// Embeddings are pre-computed by the store's embedder; chromem's own
	// embedding hook must never fire.
	embeddingFunc chromem.EmbeddingFunc
}

// NewChromemBackend creates the local backend. persistPath empty means
// in-memory only.
func NewChromemBackend(persistPath string) (*ChromemBackend, error) {
	var db *chromem.DB

	if persistPath != "" {
		if err := os.MkdirAll(persistPath, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create persist directory: %w", err)
		}
		dbPath := filepath.Join(persistPath, "vectors.gob")
		if _, err := os.Stat(dbPath); err == nil {
			loaded, err := chromem.NewPersistentDB(dbPath, false)
			if err != nil {
				slog.Warn("Failed to load existing vector database, creating new",
					"path", dbPath, "error", err)
				db = chromem.NewDB()
			} else {
				slog.Info("Loaded vector database from file", "path", dbPath)
				db = loaded
			}
		} else {
			db = chromem.NewDB()
			slog.Info("Created new vector database", "path", dbPath)
		}
	} else {
		db = chromem.NewDB()
	}

	return &ChromemBackend{
		db:          db,
		persistPath: persistPath,
		collections: make(map[string]*chromem.Collection),
		embeddingFunc: func(ctx context.Context, text string) ([]float32, error) {
			return nil, fmt.Errorf("embedding requested from backend; vectors must be pre-computed")
		},
	}, nil
}

func (b *ChromemBackend) getCollection(name string) (*chromem.Collection, error) {
	b.mu.RLock()
	if col, ok := b.collections[name]; ok {
		b.mu.RUnlock()
		return col, nil
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	if col, ok := b.collections[name]; ok {
		return col, nil
	}

	col, err := b.db.GetOrCreateCollection(name, nil, b.embeddingFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to get/create collection %q: %w", name, err)
	}
	b.collections[name] = col
	return col, nil
}

// Upsert adds or replaces a document with a pre-computed embedding.
func (b *ChromemBackend) Upsert(ctx context.Context, collection, id string, vector []float32, metadata map[string]any) error {
	col, err := b.getCollection(collection)
	if err != nil {
		return err
	}

	strMetadata := make(map[string]string, len(metadata))
	for k, v := range metadata {
		strMetadata[k] = fmt.Sprint(v)
	}
	content := ""
	if c, ok := metadata["content"].(string); ok {
		content = c
	}

	doc := chromem.Document{
		ID:        id,
		Content:   content,
		Metadata:  strMetadata,
		Embedding: vector,
	}
	if err := col.AddDocuments(ctx, []chromem.Document{doc}, runtime.NumCPU()); err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	if err := b.persist(); err != nil {
		slog.Warn("Failed to persist vector database after upsert", "error", err)
	}
	return nil
}

// Search returns the topK most similar documents.
func (b *ChromemBackend) Search(ctx context.Context, collection string, vector []float32, topK int, filter map[string]any) ([]Result, error) {
	col, err := b.getCollection(collection)
	if err != nil {
		return nil, err
	}

	// chromem rejects nResults greater than the document count.
	if count := col.Count(); topK > count {
		topK = count
	}
	if topK == 0 {
		return nil, nil
	}

	var where map[string]string
	if len(filter) > 0 {
		where = make(map[string]string, len(filter))
		for k, v := range filter {
			where[k] = fmt.Sprint(v)
		}
	}

	hits, err := col.QueryEmbedding(ctx, vector, topK, where, nil)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	out := make([]Result, 0, len(hits))
	for _, h := range hits {
		metadata := make(map[string]any, len(h.Metadata))
		for k, v := range h.Metadata {
			metadata[k] = v
		}
		out = append(out, Result{
			ID:       h.ID,
			Content:  h.Content,
			Score:    float64(h.Similarity),
			Metadata: metadata,
		})
	}
	return out, nil
}

// Delete removes a document by id.
func (b *ChromemBackend) Delete(ctx context.Context, collection, id string) error {
	col, err := b.getCollection(collection)
	if err != nil {
		return err
	}
	if err := col.Delete(ctx, nil, nil, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if err := b.persist(); err != nil {
		slog.Warn("Failed to persist vector database after delete", "error", err)
	}
	return nil
}

// Count returns the number of documents in the collection.
func (b *ChromemBackend) Count(ctx context.Context, collection string) (int, error) {
	col, err := b.getCollection(collection)
	if err != nil {
		return 0, err
	}
	return col.Count(), nil
}

// EnsureCollection creates the collection if missing. chromem creates
// collections lazily, so this just forces creation.
func (b *ChromemBackend) EnsureCollection(ctx context.Context, collection string, dimension int) error {
	_, err := b.getCollection(collection)
	return err
}

// Name identifies the backend.
func (b *ChromemBackend) Name() string { return "chromem" }

// Close persists the database if persistence is enabled.
func (b *ChromemBackend) Close() error { return b.persist() }

func (b *ChromemBackend) persist() error {
	if b.persistPath == "" {
		return nil
	}
	dbPath := filepath.Join(b.persistPath, "vectors.gob")
	//nolint:staticcheck // Export is deprecated but ExportToFile is not in all versions
	if err := b.db.Export(dbPath, false, ""); err != nil {
		return fmt.Errorf("failed to persist database: %w", err)
	}
	return nil
}

var _ Backend = (*ChromemBackend)(nil)
