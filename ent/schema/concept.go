package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Concept is a topic extracted from interactions and code changes. Created on
// first mention; never deleted. mention_count is monotonically nondecreasing.
type Concept struct {
	ent.Schema
}

// Fields of the Concept.
func (Concept) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique(),
		field.String("normalized_name").
			Comment("lower-cased, punctuation-stripped form used for matching"),
		field.Time("first_mentioned").
			Default(time.Now).
			Immutable(),
		field.Int("mention_count").
			Default(0).
			NonNegative(),
	}
}

// Edges of the Concept.
func (Concept) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("interactions", Interaction.Type).
			Ref("concepts"),
		edge.From("code_changes", CodeChange.Type).
			Ref("concepts"),
	}
}

// Indexes of the Concept.
func (Concept) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
		index.Fields("normalized_name"),
	}
}
