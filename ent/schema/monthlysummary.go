package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MonthlySummary compresses a calendar month's WeeklySummaries, keyed by
// (year, month). Upsert semantics: exactly zero or one row per key.
type MonthlySummary struct {
	ent.Schema
}

// Fields of the MonthlySummary.
func (MonthlySummary) Fields() []ent.Field {
	return []ent.Field{
		field.Int("year").
			Immutable(),
		field.Int("month").
			Immutable(),
		field.Text("content"),
		field.JSON("key_themes", []string{}).
			Optional(),
		field.Int("source_count").
			Default(0).
			NonNegative().
			Comment("number of WeeklySummaries compressed into this summary"),
		field.Int("total_interactions").
			Optional().
			Nillable(),
		field.String("model_used"),
		field.Bytes("embedding").
			Optional().
			Nillable(),
		field.Time("generated_at").
			Default(time.Now),
	}
}

// Indexes of the MonthlySummary.
func (MonthlySummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("year", "month").Unique(),
	}
}
