package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeready-toolchain/alex/pkg/memory"
)

// RunDaily compresses up to Config.DailyBatchCap unsummarized days: dates
// with at least one Interaction and no DailySummary. Re-running with no new
// interactions selects nothing and writes nothing.
func (p *Pipeline) RunDaily(ctx context.Context) (Result, error) {
	result := Result{Tier: TierDaily}

	dates, err := p.store.ListUnsummarizedDays(ctx, p.config.DailyBatchCap)
	if err != nil {
		return result, fmt.Errorf("list unsummarized days: %w", err)
	}

	for _, date := range dates {
		result.Processed++

		interactions, err := p.store.ListInteractionsForDay(ctx, date)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: load interactions: %v", date.Format("2006-01-02"), err))
			continue
		}
		if len(interactions) == 0 {
			result.Skipped++
			continue
		}

		var b strings.Builder
		for _, in := range interactions {
			fmt.Fprintf(&b, "User: %s\nAssistant: %s\n\n",
				truncate(in.UserMessage, userMessageBudget),
				truncate(in.AssistantResponse, assistantResponseBudget))
		}
		prompt := dailyPrompt(date.Format("2006-01-02"), b.String())

		text, err := chatText(ctx, p.model, p.config.FlashModel, prompt)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: model call: %v", date.Format("2006-01-02"), err))
			continue
		}

		parsedResp := parseModelResponse(text)
		summary, err := p.store.UpsertDailySummary(ctx, memory.UpsertDailySummaryParams{
			Date:        date,
			Content:     parsedResp.Summary,
			KeyTopics:   parsedResp.Labels,
			SourceCount: len(interactions),
			ModelUsed:   p.config.FlashModel,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: upsert: %v", date.Format("2006-01-02"), err))
			continue
		}

		p.embedAndAttach(ctx, "daily_summaries", summary.ID, parsedResp.Summary)
		result.Completed++
		slog.Info("summarizer: daily tier completed unit", "date", date.Format("2006-01-02"), "source_count", len(interactions))
	}

	return result, nil
}

func dailyPrompt(date, transcript string) string {
	return fmt.Sprintf(`Summarize the following conversation transcript from %s.
Produce a concise SUMMARY paragraph, then a KEY_TOPICS: line with a comma-separated list of topics.

%s`, date, transcript)
}
