package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/alex/ent"
	"github.com/codeready-toolchain/alex/ent/trade"
	"github.com/codeready-toolchain/alex/pkg/trading"
)

// RecordTradeParams is the input to RecordTrade, carrying the full audit
// shape (see ent/schema/trade.go).
type RecordTradeParams struct {
	TradeID        string
	UserID         string
	Symbol         string
	Action         string
	Quantity       float64
	Price          *float64
	InstrumentType string
	OptionSymbol   *string
	Account        string
	Mode           string
	OrderID        string
	Status         string
}

// RecordTrade appends the audit row for a confirmed, submitted order.
func (s *Store) RecordTrade(ctx context.Context, p RecordTradeParams) (*ent.Trade, error) {
	if p.TradeID == "" {
		return nil, NewValidationError("trade_id", "required")
	}
	if p.OrderID == "" {
		return nil, NewValidationError("order_id", "required")
	}

	builder := s.client.Trade.Create().
		SetTradeID(p.TradeID).
		SetUserID(p.UserID).
		SetTimestamp(time.Now()).
		SetSymbol(p.Symbol).
		SetAction(trade.Action(p.Action)).
		SetQuantity(p.Quantity).
		SetInstrumentType(trade.InstrumentType(p.InstrumentType)).
		SetAccount(p.Account).
		SetMode(trade.Mode(p.Mode)).
		SetOrderID(p.OrderID).
		SetStatus(p.Status)
	if p.Price != nil {
		builder = builder.SetPrice(*p.Price)
	}
	if p.OptionSymbol != nil {
		builder = builder.SetOptionSymbol(*p.OptionSymbol)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record trade: %w", err)
	}
	return t, nil
}

// RecordConfirmedTrade adapts pkg/trading.Store's boundary to RecordTrade,
// so a *Store can be passed directly to trading.New without pkg/trading
// depending on pkg/memory.
func (s *Store) RecordConfirmedTrade(ctx context.Context, t trading.ConfirmedTrade) error {
	_, err := s.RecordTrade(ctx, RecordTradeParams{
		TradeID:        t.TradeID,
		UserID:         t.UserID,
		Symbol:         t.Symbol,
		Action:         t.Action,
		Quantity:       t.Quantity,
		Price:          t.Price,
		InstrumentType: t.InstrumentType,
		OptionSymbol:   t.OptionSymbol,
		Account:        t.Account,
		Mode:           t.Mode,
		OrderID:        t.OrderID,
		Status:         t.Status,
	})
	return err
}

// ListTradesForUser returns trade audit rows newest-first.
func (s *Store) ListTradesForUser(ctx context.Context, userID string, limit int) ([]*ent.Trade, error) {
	if limit <= 0 {
		limit = 50
	}
	results, err := s.client.Trade.Query().
		Where(trade.UserIDEQ(userID)).
		Order(ent.Desc(trade.FieldTimestamp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	return results, nil
}
