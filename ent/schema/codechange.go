package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CodeChange is an append-only record of a file modification performed by
// the self-modify responder's tool loop. Links to any Concepts derived from
// modified file paths.
type CodeChange struct {
	ent.Schema
}

// Fields of the CodeChange.
func (CodeChange) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Time("timestamp").
			Immutable().
			Default(time.Now),
		field.JSON("files_modified", []string{}).
			Immutable(),
		field.Text("description").
			Immutable(),
		field.Text("reasoning").
			Immutable(),
		field.Enum("change_type").
			Values("feature", "bugfix", "refactor", "test", "other").
			Default("feature").
			Immutable(),
		field.String("commit_sha").
			Optional().
			Nillable().
			Immutable(),
		field.String("related_interaction_id").
			Optional().
			Nillable().
			Immutable(),
	}
}

// Edges of the CodeChange.
func (CodeChange) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("code_changes").
			Unique().
			Required().
			Immutable(),
		edge.From("day", Day.Type).
			Ref("code_changes").
			Unique().
			Required().
			Immutable(),
		edge.To("concepts", Concept.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CodeChange.
func (CodeChange) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("change_type"),
	}
}
