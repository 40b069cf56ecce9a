package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/alex/ent"
	"github.com/codeready-toolchain/alex/ent/codechange"
	"github.com/google/uuid"
)

// RecordCodeChangeParams is the input to RecordCodeChange.
type RecordCodeChangeParams struct {
	UserID               string
	Timestamp            time.Time
	FilesModified        []string
	Description          string
	Reasoning            string
	ChangeType           string
	CommitSHA            *string
	RelatedInteractionID *string
	Topics               []string
}

// RecordCodeChange persists one self-modify tool-loop outcome: any loop
// that completed with at least one successful write gets a CodeChange row.
func (s *Store) RecordCodeChange(ctx context.Context, p RecordCodeChangeParams) (*ent.CodeChange, error) {
	if len(p.FilesModified) == 0 {
		return nil, NewValidationError("files_modified", "required, non-empty")
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now()
	}
	if p.ChangeType == "" {
		p.ChangeType = "feature"
	}

	usr, err := s.EnsureUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	d, err := s.EnsureDay(ctx, p.Timestamp)
	if err != nil {
		return nil, err
	}

	builder := s.client.CodeChange.Create().
		SetID(uuid.New().String()).
		SetTimestamp(p.Timestamp).
		SetFilesModified(p.FilesModified).
		SetDescription(p.Description).
		SetReasoning(p.Reasoning).
		SetChangeType(codechange.ChangeType(p.ChangeType)).
		SetUser(usr).
		SetDay(d)
	if p.CommitSHA != nil {
		builder = builder.SetCommitSha(*p.CommitSHA)
	}
	if p.RelatedInteractionID != nil {
		builder = builder.SetRelatedInteractionID(*p.RelatedInteractionID)
	}

	cc, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create code change: %w", err)
	}

	if len(p.Topics) > 0 {
		if err := s.LinkConceptsToCodeChange(ctx, cc.ID, p.Topics); err != nil {
			return cc, fmt.Errorf("link concepts (code change %s persisted): %w", cc.ID, err)
		}
	}
	return cc, nil
}
