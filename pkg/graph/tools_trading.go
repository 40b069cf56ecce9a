package graph

import (
	"context"

	"github.com/codeready-toolchain/alex/pkg/toolloop"
	"github.com/codeready-toolchain/alex/pkg/trading"
)

// tradeCallRecorder collects every successful confirm_trade call's
// trade_id, so the trade responder can aggregate executed trade_ids for
// audit after the loop.
type tradeCallRecorder struct {
	executed []string
}

// tradingCatalog adapts a *trading.Ledger's four operations into a
// toolloop.Catalog for the trade responder.
func tradingCatalog(ledger *trading.Ledger, userID string, rec *tradeCallRecorder) toolloop.Catalog {
	return toolloop.Catalog{
		{
			Name:        "place_order_dry_run",
			Description: "Validate and stage a brokerage order for confirmation. Does not execute.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"symbol":          map[string]any{"type": "string"},
					"action":          map[string]any{"type": "string", "enum": []string{"buy", "sell"}},
					"quantity":        map[string]any{"type": "integer"},
					"order_type":      map[string]any{"type": "string", "enum": []string{"market", "limit"}},
					"limit_price":     map[string]any{"type": "number"},
					"instrument_type": map[string]any{"type": "string", "enum": []string{"equity", "option"}},
					"option_symbol":   map[string]any{"type": "string"},
				},
				"required": []string{"symbol", "action", "quantity"},
			},
			Handler: func(ctx context.Context, args map[string]any) (any, error) {
				req := trading.OrderRequest{
					Symbol:         stringArg(args, "symbol"),
					Action:         stringArg(args, "action"),
					Quantity:       intArg(args, "quantity", 0),
					OrderType:      stringArg(args, "order_type"),
					InstrumentType: stringArg(args, "instrument_type"),
					OptionSymbol:   stringArg(args, "option_symbol"),
					UserID:         userID,
				}
				if v, ok := args["limit_price"].(float64); ok {
					req.LimitPrice = &v
				}
				return ledger.PlaceOrderDryRun(ctx, req)
			},
		},
		{
			Name:        "close_position_dry_run",
			Description: "Validate and stage an order closing all or part of an existing position.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"symbol":   map[string]any{"type": "string"},
					"quantity": map[string]any{"type": "integer"},
				},
				"required": []string{"symbol"},
			},
			Handler: func(ctx context.Context, args map[string]any) (any, error) {
				symbol := stringArg(args, "symbol")
				var quantity *int
				if v, ok := args["quantity"].(float64); ok {
					q := int(v)
					quantity = &q
				}
				return ledger.ClosePositionDryRun(ctx, symbol, quantity, userID)
			},
		},
		{
			Name:        "confirm_trade",
			Description: "Execute a previously staged trade_id exactly once. Only call after the user explicitly confirms.",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{"trade_id": map[string]any{"type": "string"}},
				"required":   []string{"trade_id"},
			},
			Handler: func(ctx context.Context, args map[string]any) (any, error) {
				tradeID := stringArg(args, "trade_id")
				result, err := ledger.ConfirmTrade(ctx, tradeID)
				if err != nil {
					return nil, err
				}
				rec.executed = append(rec.executed, tradeID)
				return result, nil
			},
		},
		{
			Name:        "cancel_pending_trade",
			Description: "Cancel a staged trade_id without executing it.",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{"trade_id": map[string]any{"type": "string"}},
				"required":   []string{"trade_id"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				return ledger.CancelPendingTrade(stringArg(args, "trade_id"))
			},
		},
	}
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}
