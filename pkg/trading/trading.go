// Package trading is the confirmed-trade two-phase state machine and its
// brokerage client: validate an order via dry-run, hold it pending under a
// trade_id, and execute it exactly once on confirm_trade.
//
// The pending map is guarded by a single mutex held only around reads and
// writes of the map itself, never across network I/O; removing the entry
// before the submit call is what makes execution exactly-once.
package trading

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/alex/pkg/apperrors"
)

// DefaultTTL is how long a staged trade stays confirmable.
const DefaultTTL = 300 * time.Second

// PendingTrade is a validated, not-yet-executed order held in the ledger.
type PendingTrade struct {
	TradeID        string
	AccountNumber  string
	Symbol         string
	Action         string // "buy" or "sell"
	Quantity       int
	OrderType      string // "market" or "limit"
	LimitPrice     *float64
	InstrumentType string // "equity" or "option"
	OptionSymbol   string
	Description    string
	OrderPayload   map[string]any
	UserID         string
	CreatedAt      time.Time
}

func (p PendingTrade) isExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(p.CreatedAt) > ttl
}

// Ledger is the process-local PendingTrade map plus the brokerage client it
// drives. One Ledger per process; in a multi-instance deployment pending
// trades are not visible across instances.
type Ledger struct {
	mu      sync.Mutex
	pending map[string]PendingTrade
	ttl     time.Duration
	client  Client
	store   Store
}

// Store is the subset of pkg/memory.Store the ledger needs to persist a
// confirmed trade's audit row.
type Store interface {
	RecordConfirmedTrade(ctx context.Context, t ConfirmedTrade) error
}

// ConfirmedTrade is the audit-row shape persisted on every successful
// confirm_trade.
type ConfirmedTrade struct {
	TradeID        string
	UserID         string
	Timestamp      time.Time
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

// New builds a Ledger with the default 300s TTL. Pass ttl=0 to use the
// default.
func New(client Client, store Store, ttl time.Duration) *Ledger {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Ledger{pending: make(map[string]PendingTrade), ttl: ttl, client: client, store: store}
}

// cleanupExpired removes expired entries. Must be called with mu held.
func (l *Ledger) cleanupExpired(now time.Time) {
	for id, p := range l.pending {
		if p.isExpired(now, l.ttl) {
			delete(l.pending, id)
		}
	}
}

// OrderRequest is the input to PlaceOrderDryRun.
type OrderRequest struct {
	Symbol         string
	Action         string // "buy" or "sell"
	Quantity       int
	OrderType      string // "market" or "limit", default "market"
	LimitPrice     *float64
	InstrumentType string // "equity" or "option", default "equity"
	OptionSymbol   string
	UserID         string
}

// DryRunResult is place_order_dry_run / close_position_dry_run's output.
type DryRunResult struct {
	TradeID              string
	Mode                 string
	Description          string
	RequiresConfirmation bool
	ExpiresInSeconds     int
}

func validateOrder(req OrderRequest) error {
	switch req.Action {
	case "buy", "sell":
	default:
		return &apperrors.TradeValidationError{Reason: "action must be 'buy' or 'sell'"}
	}
	if req.OrderType == "" {
		req.OrderType = "market"
	}
	switch req.OrderType {
	case "market", "limit":
	default:
		return &apperrors.TradeValidationError{Reason: "order_type must be 'market' or 'limit'"}
	}
	if req.OrderType == "limit" && req.LimitPrice == nil {
		return &apperrors.TradeValidationError{Reason: "limit price required for limit orders"}
	}
	if req.Quantity <= 0 {
		return &apperrors.TradeValidationError{Reason: "quantity must be positive"}
	}
	if req.InstrumentType == "" {
		req.InstrumentType = "equity"
	}
	switch req.InstrumentType {
	case "equity", "option":
	default:
		return &apperrors.TradeValidationError{Reason: "instrument_type must be 'equity' or 'option'"}
	}
	if req.InstrumentType == "option" && req.OptionSymbol == "" {
		return &apperrors.TradeValidationError{Reason: "option_symbol required for option orders"}
	}
	return nil
}

// PlaceOrderDryRun validates an order against the brokerage without
// executing it, then stores it as pending under a fresh trade_id.
func (l *Ledger) PlaceOrderDryRun(ctx context.Context, req OrderRequest) (*DryRunResult, error) {
	if req.OrderType == "" {
		req.OrderType = "market"
	}
	if req.InstrumentType == "" {
		req.InstrumentType = "equity"
	}
	if err := validateOrder(req); err != nil {
		return nil, err
	}

	now := time.Now()
	l.mu.Lock()
	l.cleanupExpired(now)
	l.mu.Unlock()

	account, err := l.client.GetPrimaryAccount(ctx)
	if err != nil {
		return nil, fmt.Errorf("get primary account: %w", err)
	}

	legSymbol := req.Symbol
	orderAction := "Sell to Close"
	if req.Action == "buy" {
		orderAction = "Buy to Open"
	}
	if req.InstrumentType == "option" {
		legSymbol = req.OptionSymbol
	}

	instrument := "Equity"
	if req.InstrumentType == "option" {
		instrument = "Equity Option"
	}

	payload := map[string]any{
		"time-in-force": "Day",
		"order-type":    orderTypeLabel(req.OrderType),
		"legs": []map[string]any{
			{
				"action":          orderAction,
				"symbol":          legSymbol,
				"quantity":        req.Quantity,
				"instrument-type": instrument,
			},
		},
	}
	if req.OrderType == "limit" && req.LimitPrice != nil {
		payload["price"] = fmt.Sprintf("%v", *req.LimitPrice)
		priceEffect := "Credit"
		if req.Action == "buy" {
			priceEffect = "Debit"
		}
		payload["price-effect"] = priceEffect
	}

	if err := l.client.SubmitOrderDryRun(ctx, account.AccountNumber, payload); err != nil {
		return nil, fmt.Errorf("dry run validation: %w", err)
	}

	tradeID := uuid.New().String()[:8]
	description := describeOrder(req)

	pending := PendingTrade{
		TradeID:        tradeID,
		AccountNumber:  account.AccountNumber,
		Symbol:         req.Symbol,
		Action:         req.Action,
		Quantity:       req.Quantity,
		OrderType:      req.OrderType,
		LimitPrice:     req.LimitPrice,
		InstrumentType: req.InstrumentType,
		OptionSymbol:   req.OptionSymbol,
		Description:    description,
		OrderPayload:   payload,
		UserID:         req.UserID,
		CreatedAt:      now,
	}

	l.mu.Lock()
	l.pending[tradeID] = pending
	l.mu.Unlock()

	return &DryRunResult{
		TradeID:              tradeID,
		Mode:                 l.client.Mode(),
		Description:          description,
		RequiresConfirmation: true,
		ExpiresInSeconds:     int(l.ttl.Seconds()),
	}, nil
}

// ClosePositionDryRun validates closing (all or part of) an existing
// position, reusing PlaceOrderDryRun for the actual validation.
func (l *Ledger) ClosePositionDryRun(ctx context.Context, symbol string, quantity *int, userID string) (*DryRunResult, error) {
	positions, err := l.client.GetPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}

	var found *Position
	for i := range positions {
		if positions[i].Symbol == symbol || positions[i].UnderlyingSymbol == symbol {
			found = &positions[i]
			break
		}
	}
	if found == nil {
		return nil, &apperrors.TradeValidationError{Reason: fmt.Sprintf("no position found for %s", symbol)}
	}

	posQty := found.Quantity
	if posQty < 0 {
		posQty = -posQty
	}
	closeQty := posQty
	if quantity != nil {
		closeQty = *quantity
	}
	if closeQty > posQty {
		return nil, &apperrors.TradeValidationError{
			Reason: fmt.Sprintf("cannot close %d shares, position only has %d", closeQty, posQty),
		}
	}

	action := "sell"
	if found.Quantity < 0 {
		action = "buy"
	}

	instrumentType := "equity"
	optionSymbol := ""
	if found.InstrumentType == "option" {
		instrumentType = "option"
		optionSymbol = found.Symbol
	}

	closeSymbol := symbol
	if instrumentType == "option" && found.UnderlyingSymbol != "" {
		closeSymbol = found.UnderlyingSymbol
	}

	return l.PlaceOrderDryRun(ctx, OrderRequest{
		Symbol:         closeSymbol,
		Action:         action,
		Quantity:       closeQty,
		OrderType:      "market",
		InstrumentType: instrumentType,
		OptionSymbol:   optionSymbol,
		UserID:         userID,
	})
}

// ConfirmResult is confirm_trade's output.
type ConfirmResult struct {
	TradeID     string
	Mode        string
	Description string
	Executed    bool
	OrderID     string
	Status      string
}

// ConfirmTrade executes a previously validated trade exactly once: the
// entry is removed from the pending map BEFORE the brokerage submit call,
// so a concurrent or retried confirm can never double-submit. On submit
// failure the entry is not restored.
func (l *Ledger) ConfirmTrade(ctx context.Context, tradeID string) (*ConfirmResult, error) {
	now := time.Now()

	l.mu.Lock()
	l.cleanupExpired(now)
	pending, ok := l.pending[tradeID]
	if ok {
		if pending.isExpired(now, l.ttl) {
			delete(l.pending, tradeID)
			l.mu.Unlock()
			return nil, &apperrors.TradeExpiredError{TradeID: tradeID}
		}
		delete(l.pending, tradeID)
	}
	l.mu.Unlock()

	if !ok {
		return nil, &apperrors.TradeNotFoundError{TradeID: tradeID}
	}

	submitted, err := l.client.SubmitOrder(ctx, pending.AccountNumber, pending.OrderPayload)
	if err != nil {
		return nil, fmt.Errorf("submit order %s: %w", tradeID, err)
	}

	var price *float64
	var optionSymbol *string
	if pending.OptionSymbol != "" {
		optionSymbol = &pending.OptionSymbol
	}

	mode := "live"
	if l.client.IsSandbox() {
		mode = "sandbox"
	}

	if l.store != nil {
		err := l.store.RecordConfirmedTrade(ctx, ConfirmedTrade{
			TradeID:        tradeID,
			UserID:         pending.UserID,
			Timestamp:      time.Now(),
			Symbol:         pending.Symbol,
			Action:         pending.Action,
			Quantity:       float64(pending.Quantity),
			Price:          price,
			InstrumentType: pending.InstrumentType,
			OptionSymbol:   optionSymbol,
			Account:        pending.AccountNumber,
			Mode:           mode,
			OrderID:        submitted.OrderID,
			Status:         submitted.Status,
		})
		if err != nil {
			return nil, fmt.Errorf("trade %s executed but audit write failed: %w", tradeID, err)
		}
	}

	return &ConfirmResult{
		TradeID:     tradeID,
		Mode:        l.client.Mode(),
		Description: pending.Description,
		Executed:    true,
		OrderID:     submitted.OrderID,
		Status:      submitted.Status,
	}, nil
}

// PendingTradeIDs returns the ids of currently staged, unexpired trades.
func (l *Ledger) PendingTradeIDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cleanupExpired(time.Now())
	ids := make([]string, 0, len(l.pending))
	for id := range l.pending {
		ids = append(ids, id)
	}
	return ids
}

// CancelResult is cancel_pending_trade's output.
type CancelResult struct {
	TradeID     string
	Cancelled   bool
	Description string
}

// CancelPendingTrade removes a pending trade without executing it.
func (l *Ledger) CancelPendingTrade(tradeID string) (*CancelResult, error) {
	l.mu.Lock()
	pending, ok := l.pending[tradeID]
	if ok {
		delete(l.pending, tradeID)
	}
	l.mu.Unlock()

	if !ok {
		return nil, &apperrors.TradeNotFoundError{TradeID: tradeID}
	}
	return &CancelResult{TradeID: tradeID, Cancelled: true, Description: pending.Description}, nil
}

func orderTypeLabel(orderType string) string {
	if orderType == "limit" {
		return "Limit"
	}
	return "Market"
}

func describeOrder(req OrderRequest) string {
	priceStr := " @ market"
	if req.LimitPrice != nil {
		priceStr = fmt.Sprintf(" @ $%v", *req.LimitPrice)
	}
	symbol := req.Symbol
	if req.InstrumentType == "option" {
		symbol = req.OptionSymbol
	}
	return fmt.Sprintf("%s %d %s%s", actionUpper(req.Action), req.Quantity, symbol, priceStr)
}

func actionUpper(action string) string {
	if action == "buy" {
		return "BUY"
	}
	return "SELL"
}
