package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/alex/pkg/memory"
	testdb "github.com/codeready-toolchain/alex/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *memory.Store {
	t.Helper()
	client := testdb.NewTestClient(t)
	return memory.NewStore(client.Client, client.DB())
}

func TestStore_RecordInteraction(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	t.Run("creates user and day lazily, links concepts", func(t *testing.T) {
		intent := "chat"
		in, err := store.RecordInteraction(ctx, memory.RecordInteractionParams{
			UserID:            "alice",
			Timestamp:         time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC),
			UserMessage:       "what's the weather",
			AssistantResponse: "sunny",
			Intent:            &intent,
			ComplexityScore:   0.1,
			Topics:            []string{"Weather", "weather!"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, in.ID)
		assert.Equal(t, "chat", *in.Intent)

		concepts, err := store.CooccurringConcepts(ctx, []string{"weather"}, 10)
		require.NoError(t, err)
		assert.Empty(t, concepts, "a topic only ever co-occurring with itself has no co-occurring concepts")
	})

	t.Run("rejects empty user message", func(t *testing.T) {
		_, err := store.RecordInteraction(ctx, memory.RecordInteractionParams{UserID: "alice"})
		assert.Error(t, err)
	})
}

func TestStore_DailySummaryUpsertIsIdempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	first, err := store.UpsertDailySummary(ctx, memory.UpsertDailySummaryParams{
		Date: date, Content: "first pass", SourceCount: 3, ModelUsed: "flash",
	})
	require.NoError(t, err)

	second, err := store.UpsertDailySummary(ctx, memory.UpsertDailySummaryParams{
		Date: date, Content: "second pass", SourceCount: 5, ModelUsed: "flash",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "upsert must update the single row per date, not create a second one")
	assert.Equal(t, "second pass", second.Content)
	assert.Equal(t, 5, second.SourceCount)

	fetched, err := store.GetDailySummary(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "second pass", fetched.Content)
}

func TestStore_ListUnsummarizedDays(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)

	_, err := store.RecordInteraction(ctx, memory.RecordInteractionParams{
		UserID: "bob", Timestamp: day, UserMessage: "hi", AssistantResponse: "hello",
	})
	require.NoError(t, err)

	unsummarized, err := store.ListUnsummarizedDays(ctx, 10)
	require.NoError(t, err)
	require.Len(t, unsummarized, 1)
	assert.True(t, unsummarized[0].Equal(time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)))

	_, err = store.UpsertDailySummary(ctx, memory.UpsertDailySummaryParams{
		Date: day, Content: "summarized", SourceCount: 1, ModelUsed: "flash",
	})
	require.NoError(t, err)

	unsummarized, err = store.ListUnsummarizedDays(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, unsummarized)
}

func TestStore_RecordTrade(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	price := 123.45
	tr, err := store.RecordTrade(ctx, memory.RecordTradeParams{
		TradeID: "trd_1", UserID: "alice", Symbol: "AAPL", Action: "buy",
		Quantity: 10, Price: &price, InstrumentType: "equity",
		Account: "acct_1", Mode: "sandbox", OrderID: "ord_1", Status: "filled",
	})
	require.NoError(t, err)
	assert.Equal(t, "trd_1", tr.TradeID)

	trades, err := store.ListTradesForUser(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "AAPL", trades[0].Symbol)
}

func TestStore_SemanticSearchInteractions(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	in, err := store.RecordInteraction(ctx, memory.RecordInteractionParams{
		UserID: "alice", UserMessage: "tell me about go channels", AssistantResponse: "...",
	})
	require.NoError(t, err)

	embedding := make([]float32, 768)
	embedding[0] = 1
	require.NoError(t, store.SetInteractionEmbedding(ctx, in.ID, embedding))

	results, err := store.SemanticSearchInteractions(ctx, embedding, 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, in.ID, results[0].ID)
	assert.InDelta(t, 0, results[0].Distance, 1e-6)
}
