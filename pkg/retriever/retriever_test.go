package retriever_test

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/alex/pkg/llm"
	"github.com/codeready-toolchain/alex/pkg/memory"
	"github.com/codeready-toolchain/alex/pkg/retriever"
	testdb "github.com/codeready-toolchain/alex/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRetriever(t *testing.T) (*retriever.Retriever, *memory.Store, *llm.StubAdapter) {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := memory.NewStore(client.Client, client.DB())
	stub := llm.NewStubAdapter()
	r := retriever.New(store, stub, retriever.DefaultConfig())
	return r, store, stub
}

func TestRetriever_TemporalFallsBackToRecentInteractions(t *testing.T) {
	r, store, _ := setupRetriever(t)
	ctx := context.Background()
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	_, err := store.RecordInteraction(ctx, memory.RecordInteractionParams{
		UserID: "alice", Timestamp: now, UserMessage: "hello there", AssistantResponse: "hi",
	})
	require.NoError(t, err)

	mc := r.Retrieve(ctx, now, "short msg", nil, nil)
	assert.Empty(t, mc.DailySummary, "no daily summary exists yet")
	require.Len(t, mc.RelevantInteractions, 1)
	assert.Equal(t, "hello there", mc.RelevantInteractions[0].UserMessage)
}

func TestRetriever_PrefersDailySummaryWhenPresent(t *testing.T) {
	r, store, _ := setupRetriever(t)
	ctx := context.Background()
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	_, err := store.UpsertDailySummary(ctx, memory.UpsertDailySummaryParams{
		Date: now, Content: "a quiet day", SourceCount: 2, ModelUsed: "flash",
	})
	require.NoError(t, err)

	mc := r.Retrieve(ctx, now, "short", nil, nil)
	assert.Equal(t, "a quiet day", mc.DailySummary)
}

func TestRetriever_SemanticSkippedForShortMessages(t *testing.T) {
	r, _, stub := setupRetriever(t)
	ctx := context.Background()
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	stub.EmbedVector = make([]float32, 768)
	mc := r.Retrieve(ctx, now, "hi", nil, nil)
	assert.Empty(t, mc.RelevantInteractions)
}

func TestRetriever_CooccurrenceEmptyForUnknownTopics(t *testing.T) {
	r, _, _ := setupRetriever(t)
	ctx := context.Background()
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	mc := r.Retrieve(ctx, now, "a message long enough to embed", []string{"unseen-topic"}, nil)
	assert.Empty(t, mc.RelatedConcepts)
}

func TestSelectSummaryLevel(t *testing.T) {
	today := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		d    time.Time
		want retriever.SummaryLevel
	}{
		{"today", today, retriever.LevelRawInteractions},
		{"yesterday", today.AddDate(0, 0, -1), retriever.LevelRawInteractions},
		{"five days ago", today.AddDate(0, 0, -5), retriever.LevelDailySummary},
		{"three weeks ago", today.AddDate(0, 0, -20), retriever.LevelWeeklySummary},
		{"four months ago", today.AddDate(0, -4, 0), retriever.LevelMonthlySummary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retriever.SelectSummaryLevel(tt.d, today))
		})
	}
}
