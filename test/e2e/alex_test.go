package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/alex/pkg/llm"
)

func classifyJSON(intent string, complexity float64) string {
	return `{"intent": "` + intent + `", "complexity_score": ` + strconv.FormatFloat(complexity, 'f', -1, 64) + `, "topics": [], "entities": []}`
}

func postJSON(t *testing.T, url string, body any, out any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// TestHealth_ReportsStoreStatus exercises GET /health against a real
// Postgres connection.
func TestHealth_ReportsStoreStatus(t *testing.T) {
	app := NewTestApp(t)

	var health struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	resp := getJSON(t, app.BaseURL+"/health", &health)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", health.Status)
	assert.NotEmpty(t, health.Version)
}

// TestChat_SimpleRoundTrip_PersistsInteraction: a simple chat turn routes
// to Flash and is durably recorded, visible through the debug interactions
// endpoint.
func TestChat_SimpleRoundTrip_PersistsInteraction(t *testing.T) {
	model := llm.NewStubAdapter()
	model.ChatResponses = []llm.ChatResponse{
		{Text: classifyJSON("chat", 0.1)},
		{Text: "Hello! How can I help you today?"},
	}
	app := NewTestApp(t, WithModel(model))

	var chatResp struct {
		Response  string `json:"response"`
		SessionID string `json:"session_id"`
		Metadata  struct {
			Cortex    string `json:"cortex"`
			ModelUsed string `json:"model_used"`
		} `json:"metadata"`
	}
	resp := postJSON(t, app.BaseURL+"/api/v1/chat", map[string]string{
		"message": "hi",
		"user_id": "u1",
	}, &chatResp)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hello! How can I help you today?", chatResp.Response)
	assert.Equal(t, "flash", chatResp.Metadata.Cortex)
	assert.NotEmpty(t, chatResp.SessionID)

	var interactions []struct {
		UserMessage       string `json:"user_message"`
		AssistantResponse string `json:"assistant_response"`
	}
	debugResp := getJSON(t, app.BaseURL+"/api/v1/debug/interactions", &interactions)
	require.Equal(t, http.StatusOK, debugResp.StatusCode)
	require.Len(t, interactions, 1)
	assert.Equal(t, "hi", interactions[0].UserMessage)
	assert.Equal(t, "Hello! How can I help you today?", interactions[0].AssistantResponse)
}

// TestChat_ComplexPlanning_RoutesToPro: high-complexity planning turns land
// on the Pro responder.
func TestChat_ComplexPlanning_RoutesToPro(t *testing.T) {
	model := llm.NewStubAdapter()
	model.ChatResponses = []llm.ChatResponse{
		{Text: classifyJSON("task_planning", 0.85)},
		{Text: "Here is a step-by-step plan."},
	}
	app := NewTestApp(t, WithModel(model))

	var chatResp struct {
		Metadata struct {
			Cortex          string  `json:"cortex"`
			ComplexityScore float64 `json:"complexity_score"`
		} `json:"metadata"`
	}
	resp := postJSON(t, app.BaseURL+"/api/v1/chat", map[string]string{
		"message": "help me plan a multi-step migration",
		"user_id": "u1",
	}, &chatResp)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pro", chatResp.Metadata.Cortex)
	assert.Equal(t, 0.85, chatResp.Metadata.ComplexityScore)
}

// TestSummarizeDaily_CompletesAfterChat exercises the summarization
// pipeline reacting to a recorded interaction, driven through
// POST /api/v1/tasks/summarize_daily.
func TestSummarizeDaily_CompletesAfterChat(t *testing.T) {
	model := llm.NewStubAdapter()
	model.ChatResponses = []llm.ChatResponse{
		{Text: classifyJSON("chat", 0.1)},
		{Text: "Sure, here's the info."},
		{Text: "KEY_TOPICS: go, testing\nA day of light conversation."},
	}
	app := NewTestApp(t, WithModel(model), WithClock(func() time.Time {
		return time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	}))

	postJSON(t, app.BaseURL+"/api/v1/chat", map[string]string{
		"message": "what's the weather like",
		"user_id": "u1",
	}, nil)

	var result struct {
		Status    string `json:"status"`
		Processed int    `json:"processed"`
		Completed int    `json:"completed"`
	}
	resp := postJSON(t, app.BaseURL+"/api/v1/tasks/summarize_daily", map[string]string{}, &result)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", result.Status)
}

// TestTrade_HappyPath: a staged trade confirmed in a second turn executes
// exactly once, and the pending entry is gone afterwards.
func TestTrade_HappyPath(t *testing.T) {
	model := llm.NewStubAdapter()
	model.ChatResponses = []llm.ChatResponse{
		{Text: classifyJSON("trade", 0.2)},
		{Text: classifyJSON("trade", 0.2)},
	}
	model.ChatToolsResponses = []llm.ChatToolsResponse{
		{ToolCalls: []llm.ToolCall{{Name: "place_order_dry_run", Arguments: map[string]any{
			"symbol": "AAPL", "action": "buy", "quantity": 10, "order_type": "market",
		}}}},
		{Text: "Staged: BUY 10 AAPL @ market. Confirm?"},
		{ToolCalls: []llm.ToolCall{{Name: "confirm_trade", Arguments: map[string]any{"trade_id": "patched-below"}}}},
		{Text: "Executed."},
	}
	app := NewTestApp(t, WithModel(model), WithTradingTTL(300*time.Second))

	var first struct {
		Response string `json:"response"`
		Metadata struct {
			Cortex string `json:"cortex"`
		} `json:"metadata"`
	}
	resp := postJSON(t, app.BaseURL+"/api/v1/chat", map[string]string{
		"message": "buy 10 AAPL at market",
		"user_id": "u1",
	}, &first)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "trade", first.Metadata.Cortex)
	assert.Contains(t, first.Response, "Confirm")
	assert.Equal(t, 0, app.Trading.SubmitCalls)

	// A live model would echo back the trade_id it was handed in the dry-run
	// tool result; the scripted one can't, so patch it in before the confirm
	// turn runs.
	pending := app.Ledger.PendingTradeIDs()
	require.Len(t, pending, 1)
	model.ChatToolsResponses[2].ToolCalls[0].Arguments["trade_id"] = pending[0]

	var second struct {
		Response string `json:"response"`
	}
	resp2 := postJSON(t, app.BaseURL+"/api/v1/chat", map[string]any{
		"message": "confirm",
		"user_id": "u1",
		"conversation_history": []map[string]string{
			{"role": "user", "content": "buy 10 AAPL at market"},
			{"role": "assistant", "content": first.Response},
		},
	}, &second)
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Equal(t, "Executed.", second.Response)
	assert.Equal(t, 1, app.Trading.SubmitCalls)
	assert.Empty(t, app.Ledger.PendingTradeIDs())
}

// TestTrade_Expiry: a pending trade that sits past the TTL is rejected
// rather than executed, and never reaches the brokerage client.
func TestTrade_Expiry(t *testing.T) {
	model := llm.NewStubAdapter()
	model.ChatResponses = []llm.ChatResponse{
		{Text: classifyJSON("trade", 0.2)},
		{Text: classifyJSON("trade", 0.2)},
	}
	model.ChatToolsResponses = []llm.ChatToolsResponse{
		{ToolCalls: []llm.ToolCall{{Name: "place_order_dry_run", Arguments: map[string]any{
			"symbol": "AAPL", "action": "buy", "quantity": 10, "order_type": "market",
		}}}},
		{Text: "Staged: BUY 10 AAPL @ market. Confirm?"},
		{ToolCalls: []llm.ToolCall{{Name: "confirm_trade", Arguments: map[string]any{"trade_id": "patched-below"}}}},
		{Text: "That trade has expired; stage it again if you still want it."},
	}
	app := NewTestApp(t, WithModel(model), WithTradingTTL(50*time.Millisecond))

	var first struct {
		Response string `json:"response"`
	}
	postJSON(t, app.BaseURL+"/api/v1/chat", map[string]string{
		"message": "buy 10 AAPL at market",
		"user_id": "u1",
	}, &first)

	pending := app.Ledger.PendingTradeIDs()
	require.Len(t, pending, 1)
	model.ChatToolsResponses[2].ToolCalls[0].Arguments["trade_id"] = pending[0]

	time.Sleep(100 * time.Millisecond)

	var second struct {
		Response string `json:"response"`
	}
	resp := postJSON(t, app.BaseURL+"/api/v1/chat", map[string]any{
		"message": "confirm",
		"user_id": "u1",
		"conversation_history": []map[string]string{
			{"role": "user", "content": "buy 10 AAPL at market"},
			{"role": "assistant", "content": first.Response},
		},
	}, &second)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, second.Response, "expired")
	assert.Equal(t, 0, app.Trading.SubmitCalls)
}
