package trading_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/codeready-toolchain/alex/pkg/apperrors"
	"github.com/codeready-toolchain/alex/pkg/trading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu       sync.Mutex
	recorded []trading.ConfirmedTrade
}

func (f *fakeStore) RecordConfirmedTrade(_ context.Context, t trading.ConfirmedTrade) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded = append(f.recorded, t)
	return nil
}

func TestPlaceOrderDryRun_ValidatesAndReturnsPendingTradeID(t *testing.T) {
	client := trading.NewStubClient()
	store := &fakeStore{}
	ledger := trading.New(client, store, 0)

	result, err := ledger.PlaceOrderDryRun(context.Background(), trading.OrderRequest{
		Symbol: "AAPL", Action: "buy", Quantity: 10, UserID: "u1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.TradeID)
	assert.True(t, result.RequiresConfirmation)
	assert.Equal(t, "SANDBOX", result.Mode)
	assert.Equal(t, 1, client.DryRunCalls)
}

func TestPlaceOrderDryRun_RejectsInvalidAction(t *testing.T) {
	ledger := trading.New(trading.NewStubClient(), &fakeStore{}, 0)
	_, err := ledger.PlaceOrderDryRun(context.Background(), trading.OrderRequest{
		Symbol: "AAPL", Action: "hold", Quantity: 10,
	})
	var validationErr *apperrors.TradeValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestPlaceOrderDryRun_RejectsLimitOrderWithoutPrice(t *testing.T) {
	ledger := trading.New(trading.NewStubClient(), &fakeStore{}, 0)
	_, err := ledger.PlaceOrderDryRun(context.Background(), trading.OrderRequest{
		Symbol: "AAPL", Action: "buy", Quantity: 10, OrderType: "limit",
	})
	var validationErr *apperrors.TradeValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestConfirmTrade_ExecutesExactlyOnce(t *testing.T) {
	client := trading.NewStubClient()
	store := &fakeStore{}
	ledger := trading.New(client, store, 0)

	dryRun, err := ledger.PlaceOrderDryRun(context.Background(), trading.OrderRequest{
		Symbol: "AAPL", Action: "buy", Quantity: 10, UserID: "u1",
	})
	require.NoError(t, err)

	result, err := ledger.ConfirmTrade(context.Background(), dryRun.TradeID)
	require.NoError(t, err)
	assert.True(t, result.Executed)
	assert.Equal(t, 1, client.SubmitCalls)
	require.Len(t, store.recorded, 1)
	assert.Equal(t, dryRun.TradeID, store.recorded[0].TradeID)

	// Second confirm of the same trade_id must fail: exactly-once.
	_, err = ledger.ConfirmTrade(context.Background(), dryRun.TradeID)
	var notFound *apperrors.TradeNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, 1, client.SubmitCalls)
}

func TestConfirmTrade_UnknownTradeIDFails(t *testing.T) {
	ledger := trading.New(trading.NewStubClient(), &fakeStore{}, 0)
	_, err := ledger.ConfirmTrade(context.Background(), "nonexistent")
	var notFound *apperrors.TradeNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestConfirmTrade_ExpiredTradeFails(t *testing.T) {
	client := trading.NewStubClient()
	ledger := trading.New(client, &fakeStore{}, 10*time.Millisecond)

	dryRun, err := ledger.PlaceOrderDryRun(context.Background(), trading.OrderRequest{
		Symbol: "AAPL", Action: "buy", Quantity: 10,
	})
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)

	_, err = ledger.ConfirmTrade(context.Background(), dryRun.TradeID)
	var expired *apperrors.TradeExpiredError
	assert.ErrorAs(t, err, &expired)
	assert.Equal(t, 0, client.SubmitCalls)
}

func TestConfirmTrade_SubmitFailureDoesNotReviveTrade(t *testing.T) {
	client := trading.NewStubClient()
	client.SubmitErr = errors.New("brokerage unavailable")
	ledger := trading.New(client, &fakeStore{}, 0)

	dryRun, err := ledger.PlaceOrderDryRun(context.Background(), trading.OrderRequest{
		Symbol: "AAPL", Action: "buy", Quantity: 10,
	})
	require.NoError(t, err)

	_, err = ledger.ConfirmTrade(context.Background(), dryRun.TradeID)
	assert.Error(t, err)

	// The trade was removed before submit, even though submit failed: no
	// retry is possible under the remove-before-submit discipline.
	_, err = ledger.ConfirmTrade(context.Background(), dryRun.TradeID)
	var notFound *apperrors.TradeNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCancelPendingTrade_RemovesWithoutExecuting(t *testing.T) {
	client := trading.NewStubClient()
	ledger := trading.New(client, &fakeStore{}, 0)

	dryRun, err := ledger.PlaceOrderDryRun(context.Background(), trading.OrderRequest{
		Symbol: "AAPL", Action: "buy", Quantity: 10,
	})
	require.NoError(t, err)

	cancelResult, err := ledger.CancelPendingTrade(dryRun.TradeID)
	require.NoError(t, err)
	assert.True(t, cancelResult.Cancelled)
	assert.Equal(t, 0, client.SubmitCalls)

	_, err = ledger.ConfirmTrade(context.Background(), dryRun.TradeID)
	var notFound *apperrors.TradeNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestClosePositionDryRun_ClosesEntirePositionByDefault(t *testing.T) {
	client := trading.NewStubClient()
	client.Positions = []trading.Position{
		{Symbol: "AAPL", Quantity: 25, InstrumentType: "equity"},
	}
	ledger := trading.New(client, &fakeStore{}, 0)

	result, err := ledger.ClosePositionDryRun(context.Background(), "AAPL", nil, "u1")
	require.NoError(t, err)
	assert.Contains(t, result.Description, "SELL")
	assert.Contains(t, result.Description, "25")
}

func TestClosePositionDryRun_NoPositionFails(t *testing.T) {
	ledger := trading.New(trading.NewStubClient(), &fakeStore{}, 0)
	_, err := ledger.ClosePositionDryRun(context.Background(), "TSLA", nil, "u1")
	var validationErr *apperrors.TradeValidationError
	assert.ErrorAs(t, err, &validationErr)
}
