package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WeeklySummary compresses a week's DailySummaries, keyed by ISO (year, week).
// Upsert semantics: exactly zero or one row per key.
type WeeklySummary struct {
	ent.Schema
}

// Fields of the WeeklySummary.
func (WeeklySummary) Fields() []ent.Field {
	return []ent.Field{
		field.Int("year").
			Immutable(),
		field.Int("week").
			Immutable().
			Comment("ISO-8601 week number"),
		field.Text("content"),
		field.JSON("key_themes", []string{}).
			Optional(),
		field.Int("source_count").
			Default(0).
			NonNegative().
			Comment("number of DailySummaries compressed into this summary"),
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

// Indexes of the WeeklySummary.
func (WeeklySummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("year", "week").Unique(),
	}
}
