package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateVectorIndexes creates the pgvector extension and approximate-nearest-
// neighbor indexes for the interaction and summary embedding columns.
// Ent schema annotations can't express `vector` column types or `ivfflat`
// index methods, so this runs as a post-migration hook.
func CreateVectorIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}

	indexes := []struct{ name, table, column string }{
		{"idx_interactions_embedding", "interactions", "embedding"},
		{"idx_daily_summaries_embedding", "daily_summaries", "embedding"},
		{"idx_weekly_summaries_embedding", "weekly_summaries", "embedding"},
		{"idx_monthly_summaries_embedding", "monthly_summaries", "embedding"},
	}
	for _, idx := range indexes {
		stmt := fmt.Sprintf(
			`CREATE INDEX IF NOT EXISTS %s ON %s USING ivfflat (%s vector_cosine_ops) WITH (lists = 100)`,
			idx.name, idx.table, idx.column,
		)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

// ConvertEmbeddingColumnsToVector retypes the embedding columns Ent's
// auto-migration creates as bytea (field.Bytes has no vector equivalent in
// Ent's schema DSL) into pgvector's vector(768). Production deployments
// never call this (the hand-written SQL migrations declare the columns as
// vector(768) from the start) but entClient.Schema.Create (used by tests
// for speed) needs this step before CreateVectorIndexes can run.
func ConvertEmbeddingColumnsToVector(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}

	tables := []string{"interactions", "daily_summaries", "weekly_summaries", "monthly_summaries"}
	for _, table := range tables {
		stmt := fmt.Sprintf(
			`ALTER TABLE %s ALTER COLUMN embedding TYPE vector(768) USING NULL::vector(768)`,
			table,
		)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to convert %s.embedding to vector: %w", table, err)
		}
	}

	return nil
}
