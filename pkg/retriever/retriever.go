// Package retriever composes the hybrid memory engine's temporal, semantic,
// co-occurrence, and project sub-queries into a single MemoryContext for the
// turn graph's retrieve_memory node.
//
// Each sub-query is independently fail-soft: a failure is logged at
// slog.Warn and yields a zero value rather than aborting the others, so a
// degraded store never poisons the whole turn.
package retriever

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/alex/ent"
	"github.com/codeready-toolchain/alex/pkg/llm"
	"github.com/codeready-toolchain/alex/pkg/memory"
)

// RelevantInteraction is a memory-context interaction entry, trimmed to the
// fields a responder prompt actually needs.
type RelevantInteraction struct {
	ID                string
	Timestamp         time.Time
	UserMessage       string
	AssistantResponse string
}

// MemoryContext is the transient, per-turn aggregate of what the memory
// engine surfaced for one user message: summaries, similar past
// interactions, co-occurring concepts, and matched projects.
type MemoryContext struct {
	DailySummary         string
	WeeklySummary        string
	RelevantInteractions []RelevantInteraction
	RelatedConcepts      []string
	RelatedProjects      []string
}

// Config tunes the retriever's fixed thresholds.
type Config struct {
	SemanticTopK            int
	SemanticSimilarityFloor float64 // minimum cosine similarity for a match
	CooccurrenceLimit       int
	ProjectLimit            int
	RecentInteractionCap    int
	EmbeddingModel          string
}

// DefaultConfig: top-K 5, similarity floor 0.7 (i.e. cosine distance
// ≤ 0.3), co-occurrence cap 10, project cap 5, recent-interaction cap 5.
func DefaultConfig() Config {
	return Config{
		SemanticTopK:            5,
		SemanticSimilarityFloor: 0.7,
		CooccurrenceLimit:       10,
		ProjectLimit:            5,
		RecentInteractionCap:    5,
		EmbeddingModel:          "embedding",
	}
}

// Retriever composes pkg/memory sub-queries into a MemoryContext.
type Retriever struct {
	store  *memory.Store
	model  llm.Adapter
	config Config
}

// New builds a Retriever over store, using model for the semantic
// sub-query's embed call.
func New(store *memory.Store, model llm.Adapter, config Config) *Retriever {
	return &Retriever{store: store, model: model, config: config}
}

// Retrieve runs all four sub-queries for a turn's user message, extracted
// topics, and extracted entities, composing the results into a
// MemoryContext. No individual sub-query failure aborts the others.
func (r *Retriever) Retrieve(ctx context.Context, now time.Time, userMessage string, topics, entities []string) MemoryContext {
	var mc MemoryContext

	mc.DailySummary, mc.RelevantInteractions = r.temporal(ctx, now)
	mc.RelevantInteractions = append(mc.RelevantInteractions, r.semantic(ctx, userMessage)...)
	mc.WeeklySummary = r.weekly(ctx, now)
	mc.RelatedConcepts = r.cooccurrence(ctx, topics)
	mc.RelatedProjects = r.projects(ctx, entities)

	return mc
}

// temporal reads today's DailySummary, or failing that, up to
// RecentInteractionCap interactions recorded today.
func (r *Retriever) temporal(ctx context.Context, now time.Time) (string, []RelevantInteraction) {
	ds, err := r.store.GetDailySummary(ctx, now)
	if err == nil {
		return ds.Content, nil
	}
	if err != memory.ErrNotFound {
		slog.Warn("retriever: temporal daily summary lookup failed", "error", err)
		return "", nil
	}

	ins, err := r.store.ListInteractionsForDay(ctx, now)
	if err != nil {
		slog.Warn("retriever: temporal recent-interactions lookup failed", "error", err)
		return "", nil
	}
	cap := r.config.RecentInteractionCap
	if cap <= 0 {
		cap = 5
	}
	if len(ins) > cap {
		ins = ins[len(ins)-cap:]
	}
	return "", toRelevant(ins)
}

// weekly reads the current ISO week's WeeklySummary, if any.
func (r *Retriever) weekly(ctx context.Context, now time.Time) string {
	year, week := now.ISOWeek()
	ws, err := r.store.GetWeeklySummary(ctx, year, week)
	if err == nil {
		return ws.Content
	}
	if err != memory.ErrNotFound {
		slog.Warn("retriever: weekly summary lookup failed", "error", err)
	}
	return ""
}

// semantic embeds the user message and returns its nearest
// neighbors by cosine distance, only when the message is long enough to
// carry semantic signal and only above the configured similarity floor.
func (r *Retriever) semantic(ctx context.Context, userMessage string) []RelevantInteraction {
	if len(userMessage) <= 10 {
		return nil
	}
	embedding, err := r.model.Embed(ctx, r.config.EmbeddingModel, userMessage)
	if err != nil {
		slog.Warn("retriever: embed failed", "error", err)
		return nil
	}
	if len(embedding) == 0 {
		return nil
	}

	matches, err := r.store.SemanticSearchInteractions(ctx, embedding, r.config.SemanticTopK)
	if err != nil {
		slog.Warn("retriever: semantic search failed", "error", err)
		return nil
	}

	// Distance is 1 - cosine_similarity for pgvector's <=> operator on
	// normalized vectors; a similarity floor of 0.7 means distance ≤ 0.3.
	distanceCeiling := 1 - r.config.SemanticSimilarityFloor
	var out []RelevantInteraction
	for _, m := range matches {
		if m.Distance > distanceCeiling {
			continue
		}
		out = append(out, RelevantInteraction{
			ID:                m.ID,
			UserMessage:       m.UserMsg,
			AssistantResponse: m.AssistResp,
		})
	}
	return out
}

// cooccurrence returns concepts co-mentioned with the supplied topics.
func (r *Retriever) cooccurrence(ctx context.Context, topics []string) []string {
	if len(topics) == 0 {
		return nil
	}
	limit := r.config.CooccurrenceLimit
	if limit <= 0 {
		limit = 10
	}
	concepts, err := r.store.CooccurringConcepts(ctx, topics, limit)
	if err != nil {
		slog.Warn("retriever: co-occurrence lookup failed", "error", err)
		return nil
	}
	names := make([]string, len(concepts))
	for i, c := range concepts {
		names[i] = c.Name
	}
	return names
}

// projects substring-matches extracted entities against project
// name/description (normalized first; see projects.go).
func (r *Retriever) projects(ctx context.Context, entities []string) []string {
	if len(entities) == 0 {
		return nil
	}
	all, err := r.store.ListProjects(ctx)
	if err != nil {
		slog.Warn("retriever: project lookup failed", "error", err)
		return nil
	}
	limit := r.config.ProjectLimit
	if limit <= 0 {
		limit = 5
	}
	return matchProjects(all, entities, limit)
}

func toRelevant(ins []*ent.Interaction) []RelevantInteraction {
	out := make([]RelevantInteraction, len(ins))
	for i, in := range ins {
		out[i] = RelevantInteraction{
			ID:                in.ID,
			Timestamp:         in.Timestamp,
			UserMessage:       in.UserMessage,
			AssistantResponse: in.AssistantResponse,
		}
	}
	return out
}
