package memory

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
)

// SimilarInteraction is one row of a semantic search result.
type SimilarInteraction struct {
	ID         string
	Distance   float64
	UserMsg    string
	AssistResp string
}

// BackfillInteractionEmbedding writes embedding for an already-persisted
// interaction (POST /admin/backfill-embeddings). Goes through raw
// SQL rather than the generated Ent setter; see the package doc.
func (s *Store) BackfillInteractionEmbedding(ctx context.Context, interactionID string, embedding []float32) error {
	vec := pgvector.NewVector(embedding)
	_, err := s.db.ExecContext(ctx,
		"UPDATE interactions SET embedding = $1 WHERE id = $2", vec, interactionID)
	if err != nil {
		return fmt.Errorf("backfill interaction embedding: %w", err)
	}
	return nil
}

// SetInteractionEmbedding writes the embedding computed at store time (the
// store node computes this synchronously; backfill is for historical rows).
func (s *Store) SetInteractionEmbedding(ctx context.Context, interactionID string, embedding []float32) error {
	return s.BackfillInteractionEmbedding(ctx, interactionID, embedding)
}

// SetSummaryEmbedding writes embedding for the given summary tier's table.
func (s *Store) SetSummaryEmbedding(ctx context.Context, table string, id int, embedding []float32) error {
	if table != "daily_summaries" && table != "weekly_summaries" && table != "monthly_summaries" {
		return fmt.Errorf("set summary embedding: unknown table %q", table)
	}
	vec := pgvector.NewVector(embedding)
	query := fmt.Sprintf("UPDATE %s SET embedding = $1 WHERE id = $2", table)
	if _, err := s.db.ExecContext(ctx, query, vec, id); err != nil {
		return fmt.Errorf("set %s embedding: %w", table, err)
	}
	return nil
}

// ListInteractionsMissingEmbedding returns ids of interactions with no
// embedding yet, for the admin backfill job.
func (s *Store) ListInteractionsMissingEmbedding(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_message, assistant_response FROM interactions WHERE embedding IS NULL ORDER BY timestamp ASC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("list interactions missing embedding: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id, userMsg, assistResp string
		if err := rows.Scan(&id, &userMsg, &assistResp); err != nil {
			return nil, fmt.Errorf("scan interaction row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SemanticSearchInteractions returns the k nearest interactions to embedding
// by cosine distance, via pgvector's `<=>` operator and the ivfflat index
// created by CreateVectorIndexes.
func (s *Store) SemanticSearchInteractions(ctx context.Context, embedding []float32, k int) ([]SimilarInteraction, error) {
	if k <= 0 {
		k = 5
	}
	vec := pgvector.NewVector(embedding)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_message, assistant_response, embedding <=> $1 AS distance
		 FROM interactions
		 WHERE embedding IS NOT NULL
		 ORDER BY embedding <=> $1
		 LIMIT $2`, vec, k)
	if err != nil {
		return nil, fmt.Errorf("semantic search interactions: %w", err)
	}
	defer rows.Close()

	var results []SimilarInteraction
	for rows.Next() {
		var r SimilarInteraction
		if err := rows.Scan(&r.ID, &r.UserMsg, &r.AssistResp, &r.Distance); err != nil {
			return nil, fmt.Errorf("scan similarity row: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// SimilarSummary is one row of a summary semantic search result.
type SimilarSummary struct {
	ID       int
	Distance float64
	Content  string
}

// SemanticSearchDailySummaries mirrors SemanticSearchInteractions over the
// daily_summaries table, used when the retriever widens its search past the
// recent interaction window.
func (s *Store) SemanticSearchDailySummaries(ctx context.Context, embedding []float32, k int) ([]SimilarSummary, error) {
	if k <= 0 {
		k = 5
	}
	vec := pgvector.NewVector(embedding)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, embedding <=> $1 AS distance
		 FROM daily_summaries
		 WHERE embedding IS NOT NULL
		 ORDER BY embedding <=> $1
		 LIMIT $2`, vec, k)
	if err != nil {
		return nil, fmt.Errorf("semantic search daily summaries: %w", err)
	}
	defer rows.Close()

	var results []SimilarSummary
	for rows.Next() {
		var r SimilarSummary
		if err := rows.Scan(&r.ID, &r.Content, &r.Distance); err != nil {
			return nil, fmt.Errorf("scan similarity row: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
