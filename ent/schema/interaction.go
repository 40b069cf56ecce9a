package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Interaction is one completed turn. Immutable after write other than the
// backfilled embedding column. Linked to zero or more Concepts by
// co-occurrence of extracted topics.
type Interaction struct {
	ent.Schema
}

// Fields of the Interaction.
func (Interaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Time("timestamp").
			Immutable().
			Default(time.Now),
		field.Text("user_message").
			Immutable(),
		field.Text("assistant_response").
			Immutable(),
		field.String("intent").
			Optional().
			Nillable().
			Immutable(),
		field.Float("complexity_score").
			Default(0).
			Immutable().
			Comment("in [0,1]"),
		field.String("model_used").
			Optional().
			Nillable().
			Immutable(),
		field.Bytes("embedding").
			Optional().
			Nillable().
			Comment("768-dim float32 vector, backfillable; see CreateVectorIndexes migration hook"),
	}
}

// Edges of the Interaction.
func (Interaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("interactions").
			Unique().
			Required().
			Immutable(),
		edge.From("day", Day.Type).
			Ref("interactions").
			Unique().
			Required().
			Immutable(),
		edge.To("concepts", Concept.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Interaction.
func (Interaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("intent"),
	}
}
