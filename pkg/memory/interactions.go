package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/alex/ent"
	"github.com/codeready-toolchain/alex/ent/interaction"
	"github.com/google/uuid"
)

// RecordInteractionParams is the input to RecordInteraction.
type RecordInteractionParams struct {
	UserID            string
	Timestamp         time.Time
	UserMessage       string
	AssistantResponse string
	Intent            *string
	ComplexityScore   float64
	ModelUsed         *string
	Topics            []string
}

// RecordInteraction persists one completed turn, lazily creating the owning
// User and Day, then links extracted topics as Concepts.
func (s *Store) RecordInteraction(ctx context.Context, p RecordInteractionParams) (*ent.Interaction, error) {
	if p.UserMessage == "" {
		return nil, NewValidationError("user_message", "required")
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now()
	}

	usr, err := s.EnsureUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	d, err := s.EnsureDay(ctx, p.Timestamp)
	if err != nil {
		return nil, err
	}

	builder := s.client.Interaction.Create().
		SetID(uuid.New().String()).
		SetTimestamp(p.Timestamp).
		SetUserMessage(p.UserMessage).
		SetAssistantResponse(p.AssistantResponse).
		SetComplexityScore(p.ComplexityScore).
		SetUser(usr).
		SetDay(d)
	if p.Intent != nil {
		builder = builder.SetIntent(*p.Intent)
	}
	if p.ModelUsed != nil {
		builder = builder.SetModelUsed(*p.ModelUsed)
	}

	in, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create interaction: %w", err)
	}

	if len(p.Topics) > 0 {
		if err := s.LinkConceptsToInteraction(ctx, in.ID, p.Topics); err != nil {
			return in, fmt.Errorf("link concepts (interaction %s persisted): %w", in.ID, err)
		}
	}
	return in, nil
}

// nonEmbeddingInteractionFields is every Interaction column except
// "embedding"; see the package doc on why this matters.
var nonEmbeddingInteractionFields = []string{
	interaction.FieldID,
	interaction.FieldTimestamp,
	interaction.FieldUserMessage,
	interaction.FieldAssistantResponse,
	interaction.FieldIntent,
	interaction.FieldComplexityScore,
	interaction.FieldModelUsed,
}

// GetInteraction fetches a single interaction by id.
func (s *Store) GetInteraction(ctx context.Context, id string) (*ent.Interaction, error) {
	in, err := s.client.Interaction.Query().
		Where(interaction.IDEQ(id)).
		Select(nonEmbeddingInteractionFields...).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get interaction: %w", err)
	}
	return in, nil
}

// ListInteractionsFilter narrows ListInteractions for the debug endpoint.
type ListInteractionsFilter struct {
	Intent string
	Since  *time.Time
	Until  *time.Time
	Limit  int
	Offset int
}

// ListInteractions returns interactions newest-first, for the
// GET /debug/interactions endpoint.
func (s *Store) ListInteractions(ctx context.Context, f ListInteractionsFilter) ([]*ent.Interaction, error) {
	q := s.client.Interaction.Query()
	if f.Intent != "" {
		q = q.Where(interaction.IntentEQ(f.Intent))
	}
	if f.Since != nil {
		q = q.Where(interaction.TimestampGTE(*f.Since))
	}
	if f.Until != nil {
		q = q.Where(interaction.TimestampLT(*f.Until))
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	results, err := q.
		Select(nonEmbeddingInteractionFields...).
		Order(ent.Desc(interaction.FieldTimestamp)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	return results, nil
}

// ListInteractionsForDay returns all interactions recorded on the calendar
// date containing t, used by the retriever's temporal sub-query and the
// daily summarizer tier's unit-of-work selection.
func (s *Store) ListInteractionsForDay(ctx context.Context, t time.Time) ([]*ent.Interaction, error) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	results, err := s.client.Interaction.Query().
		Select(nonEmbeddingInteractionFields...).
		Where(interaction.TimestampGTE(start), interaction.TimestampLT(end)).
		Order(ent.Asc(interaction.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interactions for day: %w", err)
	}
	return results, nil
}

// ListInteractionsSince returns interactions at or after t, newest-last,
// used by the retriever's recency window.
func (s *Store) ListInteractionsSince(ctx context.Context, t time.Time, limit int) ([]*ent.Interaction, error) {
	if limit <= 0 {
		limit = 20
	}
	results, err := s.client.Interaction.Query().
		Select(nonEmbeddingInteractionFields...).
		Where(interaction.TimestampGTE(t)).
		Order(ent.Desc(interaction.FieldTimestamp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interactions since: %w", err)
	}
	return results, nil
}
