package api

import (
	"time"

	"github.com/codeready-toolchain/alex/pkg/database"
)

// ChatResponse is returned by POST /api/v1/chat.
type ChatResponse struct {
	Response  string               `json:"response"`
	SessionID string               `json:"session_id"`
	Metadata  ChatResponseMetadata `json:"metadata"`
}

// ChatResponseMetadata mirrors graph.ResponseMetadata in the wire shape.
type ChatResponseMetadata struct {
	Intent          string  `json:"intent"`
	ComplexityScore float64 `json:"complexity_score"`
	ModelUsed       string  `json:"model_used"`
	LatencyMS       int64   `json:"latency_ms"`
	Cortex          string  `json:"cortex"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Store   *database.HealthStatus `json:"store,omitempty"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MemoryTodayResponse is returned by GET /memory/today.
type MemoryTodayResponse struct {
	DailySummary         string   `json:"daily_summary,omitempty"`
	WeeklySummary        string   `json:"weekly_summary,omitempty"`
	RelevantInteractions []string `json:"relevant_interactions,omitempty"`
	RelatedConcepts      []string `json:"related_concepts,omitempty"`
	RelatedProjects      []string `json:"related_projects,omitempty"`
}

// InteractionDebugEntry is one row of GET /debug/interactions.
type InteractionDebugEntry struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	UserMessage       string    `json:"user_message"`
	AssistantResponse string    `json:"assistant_response"`
	Intent            string    `json:"intent,omitempty"`
	ComplexityScore   float64   `json:"complexity_score"`
	ModelUsed         string    `json:"model_used,omitempty"`
}

// SemanticSearchMatch is one row of GET /debug/semantic-search.
type SemanticSearchMatch struct {
	ID                string  `json:"id"`
	Similarity        float64 `json:"similarity"`
	UserMessage       string  `json:"user_message"`
	AssistantResponse string  `json:"assistant_response"`
}

// SummariesDebugResponse is returned by GET /debug/summaries.
type SummariesDebugResponse struct {
	Daily   *SummaryDebugEntry `json:"daily,omitempty"`
	Weekly  *SummaryDebugEntry `json:"weekly,omitempty"`
	Monthly *SummaryDebugEntry `json:"monthly,omitempty"`
}

// SummaryDebugEntry is one tier's current-period summary, if any.
type SummaryDebugEntry struct {
	Key         string   `json:"key"`
	Content     string   `json:"content"`
	Labels      []string `json:"labels,omitempty"`
	SourceCount int      `json:"source_count"`
}

// UnsummarizedDebugResponse is returned by GET /debug/unsummarized.
type UnsummarizedDebugResponse struct {
	Days   []string `json:"days"`
	Weeks  []string `json:"weeks"`
	Months []string `json:"months"`
}

// BackfillEmbeddingsResponse is returned by POST /admin/backfill-embeddings.
type BackfillEmbeddingsResponse struct {
	Attempted int      `json:"attempted"`
	Succeeded int      `json:"succeeded"`
	Errors    []string `json:"errors,omitempty"`
}
