package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient text search over memory content and trace thoughts,
// which Ent schemas cannot express.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_memory_items_content_gin
		ON memory_items USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create memory content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_reasoning_traces_thought_gin
		ON reasoning_traces USING gin(to_tsvector('english', thought))`)
	if err != nil {
		return fmt.Errorf("failed to create trace thought GIN index: %w", err)
	}

	return nil
}
