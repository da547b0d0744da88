package database

import (
	"context"
	"os"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/apa-platform/apacore/ent/memoryitem"
	"github.com/apa-platform/apacore/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	client := NewClientFromEnt(entClient, db)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearch_MemoryContent(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	client := NewClientFromEnt(entClient, db)
	ctx := context.Background()

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, CreateGINIndexes(ctx, drv))

	_, err := client.MemoryItem.Create().
		SetID("mem-1").
		SetAgentID("agent-1").
		SetMemoryType(memoryitem.MemoryTypeEpisodic).
		SetContent("Refund issued to customer after invoice dispute").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.MemoryItem.Create().
		SetID("mem-2").
		SetAgentID("agent-1").
		SetMemoryType(memoryitem.MemoryTypeSemantic).
		SetContent("Weekly report generation takes ten minutes").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT memory_id FROM memory_items
		WHERE to_tsvector('english', content) @@ to_tsquery('english', $1)`,
		"refund & invoice",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		results = append(results, id)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []string{"mem-1"}, results)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	for _, key := range envKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "apacore", cfg.User)
		assert.Equal(t, "apacore", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_USER", "admin")
		t.Setenv("DB_NAME", "production")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "production", cfg.Database)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("DB_PORT", "invalid")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}
