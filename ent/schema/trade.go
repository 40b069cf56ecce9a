package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Trade is the append-only audit record of a confirmed, submitted order.
// The full audit shape is persisted, populated with whatever is known at
// confirmation time (see pkg/trading.Ledger.ConfirmTrade).
type Trade struct {
	ent.Schema
}

// Fields of the Trade.
func (Trade) Fields() []ent.Field {
	return []ent.Field{
		field.String("trade_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("symbol").
			Immutable(),
		field.Enum("action").
			Values("buy", "sell").
			Immutable(),
		field.Float("quantity").
			Immutable(),
		field.Float("price").
			Optional().
			Nillable().
			Comment("fill price when reported synchronously by the brokerage; null otherwise"),
		field.Enum("instrument_type").
			Values("equity", "option").
			Immutable(),
		field.String("option_symbol").
			Optional().
			Nillable().
			Immutable(),
		field.String("account").
			Immutable(),
		field.Enum("mode").
			Values("sandbox", "live").
			Immutable(),
		field.String("order_id").
			Immutable(),
		field.String("status").
			Immutable(),
	}
}

// Indexes of the Trade.
func (Trade) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trade_id").Unique(),
		index.Fields("user_id", "timestamp"),
	}
}
