package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DailySummary compresses one day's interactions. Upsert semantics: exactly
// zero or one row per date, later runs overwrite.
type DailySummary struct {
	ent.Schema
}

// Fields of the DailySummary.
func (DailySummary) Fields() []ent.Field {
	return []ent.Field{
		field.Time("date").
			Immutable(),
		field.Text("content"),
		field.JSON("key_topics", []string{}).
			Optional(),
		field.Int("source_count").
			Default(0).
			NonNegative().
			Comment("number of Interactions compressed into this summary"),
		field.String("model_used"),
		field.Bytes("embedding").
			Optional().
			Nillable(),
		field.Time("generated_at").
			Default(time.Now),
	}
}

// Edges of the DailySummary.
func (DailySummary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("day", Day.Type).
			Ref("daily_summary").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DailySummary.
func (DailySummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date").Unique(),
	}
}
