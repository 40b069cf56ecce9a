// Package summarizer is the recursive summarization pipeline: three tiers
// (daily, weekly, monthly), each selecting unsummarized units, compressing
// them via a generative model, and upserting the result.
//
// Runs are triggered by the task endpoints or the server's background
// ticker. Selection predicates become false once a unit's row is upserted,
// so overlapping runs cost at most one wasted computation per unit and
// never produce duplicate rows.
package summarizer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codeready-toolchain/alex/pkg/llm"
	"github.com/codeready-toolchain/alex/pkg/memory"
)

// Tier identifies one of the three summarization stages.
type Tier string

const (
	TierDaily   Tier = "daily"
	TierWeekly  Tier = "weekly"
	TierMonthly Tier = "monthly"
)

// Result reports one tier's run, matching the POST /tasks/summarize_*
// response shape.
type Result struct {
	Tier      Tier     `json:"tier"`
	Processed int      `json:"processed"`
	Completed int      `json:"completed"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors,omitempty"`
}

// AllResult nests per-tier results for the _all variant.
type AllResult struct {
	Daily   Result `json:"daily"`
	Weekly  Result `json:"weekly"`
	Monthly Result `json:"monthly"`
}

// Pipeline runs the three-tier batch job over a memory.Store.
type Pipeline struct {
	store  *memory.Store
	model  llm.Adapter
	config Config
}

// New builds a Pipeline.
func New(store *memory.Store, model llm.Adapter, config Config) *Pipeline {
	return &Pipeline{store: store, model: model, config: config}
}

// RunAll runs the daily, weekly, and monthly tiers strictly sequentially,
// so each tier sees the prior tier's new rows.
func (p *Pipeline) RunAll(ctx context.Context) (AllResult, error) {
	daily, err := p.RunDaily(ctx)
	if err != nil {
		return AllResult{Daily: daily}, fmt.Errorf("daily tier: %w", err)
	}
	weekly, err := p.RunWeekly(ctx)
	if err != nil {
		return AllResult{Daily: daily, Weekly: weekly}, fmt.Errorf("weekly tier: %w", err)
	}
	monthly, err := p.RunMonthly(ctx)
	if err != nil {
		return AllResult{Daily: daily, Weekly: weekly, Monthly: monthly}, fmt.Errorf("monthly tier: %w", err)
	}
	return AllResult{Daily: daily, Weekly: weekly, Monthly: monthly}, nil
}

// embedAndAttach embeds content and writes it onto the just-upserted summary
// row; failure here is logged and does not fail the whole unit, since the
// summary text itself already landed.
func (p *Pipeline) embedAndAttach(ctx context.Context, table string, id int, content string) {
	embedding, err := p.model.Embed(ctx, p.config.EmbeddingModel, content)
	if err != nil {
		slog.Warn("summarizer: embed failed", "table", table, "id", id, "error", err)
		return
	}
	if len(embedding) == 0 {
		return
	}
	if err := p.store.SetSummaryEmbedding(ctx, table, id, embedding); err != nil {
		slog.Warn("summarizer: set embedding failed", "table", table, "id", id, "error", err)
	}
}

func chatText(ctx context.Context, model llm.Adapter, modelName, prompt string) (string, error) {
	resp, err := model.Chat(ctx, llm.ChatRequest{
		Model:       modelName,
		Messages:    []llm.Message{{Role: "user", Content: prompt}},
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
