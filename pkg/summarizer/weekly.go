package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeready-toolchain/alex/pkg/memory"
)

// RunWeekly compresses up to Config.WeeklyBatchCap unsummarized ISO weeks:
// weeks with at least one DailySummary and no WeeklySummary.
func (p *Pipeline) RunWeekly(ctx context.Context) (Result, error) {
	result := Result{Tier: TierWeekly}

	keys, err := p.store.ListUnsummarizedWeeks(ctx, p.config.WeeklyBatchCap)
	if err != nil {
		return result, fmt.Errorf("list unsummarized weeks: %w", err)
	}

	for _, key := range keys {
		year, week := key[0], key[1]
		result.Processed++

		dailies, err := p.store.ListDailySummariesInWeek(ctx, year, week)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%d-W%02d: load daily summaries: %v", year, week, err))
			continue
		}
		if len(dailies) == 0 {
			result.Skipped++
			continue
		}

		var b strings.Builder
		total := 0
		for _, ds := range dailies {
			fmt.Fprintf(&b, "%s: %s\n\n", ds.Date.Format("2006-01-02"), truncate(ds.Content, dailySummaryBudget))
			total += ds.SourceCount
		}
		prompt := weeklyPrompt(fmt.Sprintf("%d-W%02d", year, week), b.String())

		text, err := chatText(ctx, p.model, p.config.FlashModel, prompt)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%d-W%02d: model call: %v", year, week, err))
			continue
		}

		parsedResp := parseModelResponse(text)
		summary, err := p.store.UpsertWeeklySummary(ctx, memory.UpsertWeeklySummaryParams{
			Year:              year,
			Week:              week,
			Content:           parsedResp.Summary,
			KeyThemes:         parsedResp.Labels,
			SourceCount:       len(dailies),
			TotalInteractions: &total,
			ModelUsed:         p.config.FlashModel,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%d-W%02d: upsert: %v", year, week, err))
			continue
		}

		p.embedAndAttach(ctx, "weekly_summaries", summary.ID, parsedResp.Summary)
		result.Completed++
		slog.Info("summarizer: weekly tier completed unit", "year", year, "week", week, "source_count", len(dailies))
	}

	return result, nil
}

func weeklyPrompt(weekID, transcript string) string {
	return fmt.Sprintf(`Summarize the following daily summaries from week %s.
Produce a concise SUMMARY paragraph, then a KEY_THEMES: line with a comma-separated list of themes.

%s`, weekID, transcript)
}
