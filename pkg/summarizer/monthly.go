package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/codeready-toolchain/alex/pkg/memory"
)

// RunMonthly compresses up to Config.MonthlyBatchCap unsummarized calendar
// months: months with at least one WeeklySummary and no MonthlySummary.
// Uses the slower, higher-quality model.
func (p *Pipeline) RunMonthly(ctx context.Context) (Result, error) {
	result := Result{Tier: TierMonthly}

	keys, err := p.store.ListUnsummarizedMonths(ctx, p.config.MonthlyBatchCap)
	if err != nil {
		return result, fmt.Errorf("list unsummarized months: %w", err)
	}

	for _, key := range keys {
		year, month := key[0], key[1]
		result.Processed++

		weeklies, err := p.weeksInMonth(ctx, year, month)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%d-%02d: load weekly summaries: %v", year, month, err))
			continue
		}
		if len(weeklies) == 0 {
			result.Skipped++
			continue
		}

		var b strings.Builder
		total := 0
		for _, ws := range weeklies {
			fmt.Fprintf(&b, "W%02d: %s\n\n", ws.Week, truncate(ws.Content, weeklySummaryBudget))
			if ws.TotalInteractions != nil {
				total += *ws.TotalInteractions
			}
		}
		monthID := fmt.Sprintf("%04d-%02d", year, month)
		prompt := monthlyPrompt(monthID, b.String())

		text, err := chatText(ctx, p.model, p.config.ProModel, prompt)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: model call: %v", monthID, err))
			continue
		}

		parsedResp := parseModelResponse(text)
		summary, err := p.store.UpsertMonthlySummary(ctx, memory.UpsertMonthlySummaryParams{
			Year:              year,
			Month:             month,
			Content:           parsedResp.Summary,
			KeyThemes:         parsedResp.Labels,
			SourceCount:       len(weeklies),
			TotalInteractions: &total,
			ModelUsed:         p.config.ProModel,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: upsert: %v", monthID, err))
			continue
		}

		p.embedAndAttach(ctx, "monthly_summaries", summary.ID, parsedResp.Summary)
		result.Completed++
		slog.Info("summarizer: monthly tier completed unit", "year", year, "month", month, "source_count", len(weeklies))
	}

	return result, nil
}

// weeksInMonth finds the WeeklySummary rows whose ISO week's Thursday falls
// in (year, month), the inverse of ListUnsummarizedMonths' own approximation,
// kept consistent with it so selection and source-loading agree.
func (p *Pipeline) weeksInMonth(ctx context.Context, year, month int) ([]*weeklySummaryView, error) {
	// Scan a generous ISO-week range around the target month; at most 6
	// weeks can have a Thursday landing in any calendar month.
	var out []*weeklySummaryView
	for _, probeYear := range []int{year - 1, year, year + 1} {
		for week := 1; week <= 53; week++ {
			ws, err := p.store.GetWeeklySummary(ctx, probeYear, week)
			if err != nil {
				continue
			}
			thursday := thursdayOfISOWeek(probeYear, week)
			if thursday.Year() == year && int(thursday.Month()) == month {
				out = append(out, &weeklySummaryView{
					Week:              week,
					Content:           ws.Content,
					TotalInteractions: ws.TotalInteractions,
				})
			}
		}
	}
	return out, nil
}

// thursdayOfISOWeek returns the date of the Thursday in ISO (year, week),
// mirroring pkg/memory.ListUnsummarizedMonths' own approximation so
// selection and source-loading stay consistent with each other.
func thursdayOfISOWeek(year, week int) time.Time {
	jan1 := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	_, jan1ISOWeek := jan1.ISOWeek()
	offsetWeeks := week - jan1ISOWeek
	return jan1.AddDate(0, 0, offsetWeeks*7)
}

type weeklySummaryView struct {
	Week              int
	Content           string
	TotalInteractions *int
}

func monthlyPrompt(monthID, transcript string) string {
	return fmt.Sprintf(`Summarize the following weekly summaries from %s.
Produce a concise SUMMARY paragraph, then a KEY_THEMES: line with a comma-separated list of themes.

%s`, monthID, transcript)
}
