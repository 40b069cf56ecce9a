// Package memory is the hybrid memory engine: the Ent-backed persistence
// layer for interactions, concepts, and the three summary tiers.
//
// Embedding columns are declared as field.Bytes in ent/schema but physically
// stored as pgvector's native `vector(768)` type by the hand-written SQL
// migrations (pkg/database/migrations), not by Ent's own DDL. Ent's
// generated scanner does not understand the vector wire format, so every
// query in this package that touches an entity with an embedding column
// explicitly narrows its Select() to the non-embedding fields; embedding
// reads and writes go exclusively through the raw-SQL helpers in
// semantic.go.
package memory

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"

	"github.com/codeready-toolchain/alex/ent"
	"github.com/codeready-toolchain/alex/ent/day"
	"github.com/codeready-toolchain/alex/ent/user"
)

// Store is the entry point for all memory reads and writes. Most operations
// go through the generated Ent client; embedding columns go through the raw
// *sql.DB handle instead (see the package doc).
type Store struct {
	client *ent.Client
	db     *stdsql.DB
}

// NewStore wraps an Ent client and the raw database handle backing it;
// database.Client satisfies this shape via its embedded *ent.Client and DB().
func NewStore(client *ent.Client, db *stdsql.DB) *Store {
	return &Store{client: client, db: db}
}

// EnsureUser returns the User row for id, creating it lazily on first
// reference.
func (s *Store) EnsureUser(ctx context.Context, id string) (*ent.User, error) {
	if id == "" {
		return nil, NewValidationError("user_id", "required")
	}

	existing, err := s.client.User.Query().Where(user.IDEQ(id)).Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query user: %w", err)
	}

	created, err := s.client.User.Create().
		SetID(id).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race; the row exists now.
			return s.client.User.Query().Where(user.IDEQ(id)).Only(ctx)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// EnsureDay returns the Day row for the calendar date containing t
// (truncated to midnight UTC), creating it lazily.
func (s *Store) EnsureDay(ctx context.Context, t time.Time) (*ent.Day, error) {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.client.Day.Query().Where(day.DateEQ(midnight)).Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query day: %w", err)
	}

	// Use the ISO week-year (not the calendar year) for "year" so the
	// (year, iso_week) index groups correctly across the Dec/Jan boundary;
	// monthly grouping below re-derives the calendar year separately.
	isoYear, isoWeek := midnight.ISOWeek()
	created, err := s.client.Day.Create().
		SetDate(midnight).
		SetYear(isoYear).
		SetMonth(int(midnight.Month())).
		SetDayOfMonth(midnight.Day()).
		SetIsoWeek(isoWeek).
		SetWeekday(int(midnight.Weekday())).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.Day.Query().Where(day.DateEQ(midnight)).Only(ctx)
		}
		return nil, fmt.Errorf("create day: %w", err)
	}
	return created, nil
}
