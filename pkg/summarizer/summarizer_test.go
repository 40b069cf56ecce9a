package summarizer_test

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/alex/pkg/llm"
	"github.com/codeready-toolchain/alex/pkg/memory"
	"github.com/codeready-toolchain/alex/pkg/summarizer"
	testdb "github.com/codeready-toolchain/alex/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPipeline(t *testing.T) (*summarizer.Pipeline, *memory.Store, *llm.StubAdapter) {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := memory.NewStore(client.Client, client.DB())
	stub := llm.NewStubAdapter()
	p := summarizer.New(store, stub, summarizer.DefaultConfig())
	return p, store, stub
}

func TestRunDaily_SummarizesUnsummarizedDayAndIsIdempotent(t *testing.T) {
	p, store, stub := setupPipeline(t)
	ctx := context.Background()
	day := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

	_, err := store.RecordInteraction(ctx, memory.RecordInteractionParams{
		UserID: "alice", Timestamp: day, UserMessage: "how do I deploy", AssistantResponse: "run the pipeline",
	})
	require.NoError(t, err)

	stub.ChatResponses = []llm.ChatResponse{
		{Text: "SUMMARY: talked about deploys\nKEY_TOPICS: deploy, pipeline"},
	}

	result, err := p.RunDaily(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Completed)
	assert.Empty(t, result.Errors)

	ds, err := store.GetDailySummary(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, "talked about deploys", ds.Content)
	assert.Equal(t, []string{"deploy", "pipeline"}, ds.KeyTopics)

	// Idempotence: re-running with no new interactions selects nothing.
	second, err := p.RunDaily(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Processed)
	assert.Equal(t, 0, second.Completed)
}

func TestRunWeekly_SummarizesWeekWithDailySummaries(t *testing.T) {
	p, store, stub := setupPipeline(t)
	ctx := context.Background()
	day := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC) // a Monday

	_, err := store.UpsertDailySummary(ctx, memory.UpsertDailySummaryParams{
		Date: day, Content: "quiet day", SourceCount: 2, ModelUsed: "flash",
	})
	require.NoError(t, err)

	stub.ChatResponses = []llm.ChatResponse{
		{Text: "SUMMARY: a quiet week\nKEY_THEMES: rest"},
	}

	result, err := p.RunWeekly(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Completed)

	year, week := day.ISOWeek()
	ws, err := store.GetWeeklySummary(ctx, year, week)
	require.NoError(t, err)
	assert.Equal(t, "a quiet week", ws.Content)
	assert.Equal(t, []string{"rest"}, ws.KeyThemes)
}

func TestRunMonthly_NoUnsummarizedWeeksSkipsCleanly(t *testing.T) {
	p, _, _ := setupPipeline(t)
	ctx := context.Background()

	result, err := p.RunMonthly(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 0, result.Completed)
}

func TestRunAll_RunsTiersSequentially(t *testing.T) {
	p, store, stub := setupPipeline(t)
	ctx := context.Background()
	day := time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)

	_, err := store.RecordInteraction(ctx, memory.RecordInteractionParams{
		UserID: "bob", Timestamp: day, UserMessage: "status update please", AssistantResponse: "all green",
	})
	require.NoError(t, err)

	stub.ChatResponses = []llm.ChatResponse{
		{Text: "SUMMARY: status check\nKEY_TOPICS: status"},
		{Text: "SUMMARY: week recap\nKEY_THEMES: status"},
	}

	result, err := p.RunAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Daily.Completed)
	assert.Equal(t, 1, result.Weekly.Completed)
	assert.Equal(t, 0, result.Monthly.Completed) // no unsummarized month yet this run
}
