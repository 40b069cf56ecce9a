package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Day is the time-tree root for summaries: a calendar date that exists iff
// anything is recorded on it. Created lazily; unique per date.
type Day struct {
	ent.Schema
}

// Fields of the Day.
func (Day) Fields() []ent.Field {
	return []ent.Field{
		field.Time("date").
			Immutable().
			Comment("calendar date, truncated to midnight in the server reference zone"),
		field.Int("year").Immutable(),
		field.Int("month").Immutable(),
		field.Int("day_of_month").Immutable(),
		field.Int("iso_week").Immutable().
			Comment("ISO-8601 week number"),
		field.Int("weekday").Immutable().
			Comment("time.Weekday value, 0=Sunday"),
	}
}

// Edges of the Day.
func (Day) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("interactions", Interaction.Type),
		edge.To("code_changes", CodeChange.Type),
		edge.To("daily_summary", DailySummary.Type).
			Unique(),
	}
}

// Indexes of the Day.
func (Day) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date").Unique(),
		index.Fields("year", "iso_week"),
		index.Fields("year", "month"),
	}
}
