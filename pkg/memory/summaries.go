package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/alex/ent"
	"github.com/codeready-toolchain/alex/ent/dailysummary"
	"github.com/codeready-toolchain/alex/ent/day"
	"github.com/codeready-toolchain/alex/ent/monthlysummary"
	"github.com/codeready-toolchain/alex/ent/weeklysummary"
)

var nonEmbeddingDailyFields = []string{
	dailysummary.FieldID, dailysummary.FieldDate, dailysummary.FieldContent,
	dailysummary.FieldKeyTopics, dailysummary.FieldSourceCount,
	dailysummary.FieldModelUsed, dailysummary.FieldGeneratedAt,
}

var nonEmbeddingWeeklyFields = []string{
	weeklysummary.FieldID, weeklysummary.FieldYear, weeklysummary.FieldWeek,
	weeklysummary.FieldContent, weeklysummary.FieldKeyThemes,
	weeklysummary.FieldSourceCount, weeklysummary.FieldTotalInteractions,
	weeklysummary.FieldModelUsed, weeklysummary.FieldGeneratedAt,
}

var nonEmbeddingMonthlyFields = []string{
	monthlysummary.FieldID, monthlysummary.FieldYear, monthlysummary.FieldMonth,
	monthlysummary.FieldContent, monthlysummary.FieldKeyThemes,
	monthlysummary.FieldSourceCount, monthlysummary.FieldTotalInteractions,
	monthlysummary.FieldModelUsed, monthlysummary.FieldGeneratedAt,
}

// UpsertDailySummaryParams is the input to UpsertDailySummary.
type UpsertDailySummaryParams struct {
	Date        time.Time
	Content     string
	KeyTopics   []string
	SourceCount int
	ModelUsed   string
}

// UpsertDailySummary writes or overwrites the DailySummary for Date:
// exactly zero or one row exists per date, and later runs overwrite it.
func (s *Store) UpsertDailySummary(ctx context.Context, p UpsertDailySummaryParams) (*ent.DailySummary, error) {
	midnight := time.Date(p.Date.Year(), p.Date.Month(), p.Date.Day(), 0, 0, 0, 0, time.UTC)

	d, err := s.EnsureDay(ctx, midnight)
	if err != nil {
		return nil, err
	}

	existing, err := s.client.DailySummary.Query().Where(dailysummary.DateEQ(midnight)).Only(ctx)
	switch {
	case err == nil:
		updated, err := existing.Update().
			SetContent(p.Content).
			SetKeyTopics(p.KeyTopics).
			SetSourceCount(p.SourceCount).
			SetModelUsed(p.ModelUsed).
			SetGeneratedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update daily summary: %w", err)
		}
		return updated, nil
	case ent.IsNotFound(err):
		created, err := s.client.DailySummary.Create().
			SetDate(midnight).
			SetContent(p.Content).
			SetKeyTopics(p.KeyTopics).
			SetSourceCount(p.SourceCount).
			SetModelUsed(p.ModelUsed).
			SetGeneratedAt(time.Now()).
			SetDay(d).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create daily summary: %w", err)
		}
		return created, nil
	default:
		return nil, fmt.Errorf("query daily summary: %w", err)
	}
}

// GetDailySummary fetches the DailySummary for date, if any.
func (s *Store) GetDailySummary(ctx context.Context, date time.Time) (*ent.DailySummary, error) {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	ds, err := s.client.DailySummary.Query().
		Where(dailysummary.DateEQ(midnight)).
		Select(nonEmbeddingDailyFields...).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get daily summary: %w", err)
	}
	return ds, nil
}

// ListDailySummariesInWeek returns the DailySummaries within the ISO
// (year, week), the weekly tier's source units.
func (s *Store) ListDailySummariesInWeek(ctx context.Context, year, week int) ([]*ent.DailySummary, error) {
	days, err := s.client.Day.Query().Where(day.YearEQ(year), day.IsoWeekEQ(week)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query days in week: %w", err)
	}
	var results []*ent.DailySummary
	for _, d := range days {
		ds, err := s.client.DailySummary.Query().
			Where(dailysummary.DateEQ(d.Date)).
			Select(nonEmbeddingDailyFields...).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("query daily summary for day: %w", err)
		}
		results = append(results, ds)
	}
	return results, nil
}

// ListUnsummarizedDays returns calendar dates that have interactions but no
// DailySummary yet: the daily tier's selection rule, also surfaced by
// GET /debug/unsummarized.
func (s *Store) ListUnsummarizedDays(ctx context.Context, limit int) ([]time.Time, error) {
	if limit <= 0 {
		limit = 30
	}
	days, err := s.client.Day.Query().
		Where(day.HasInteractions(), day.Not(day.HasDailySummary())).
		Order(ent.Asc(day.FieldDate)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unsummarized days: %w", err)
	}
	dates := make([]time.Time, len(days))
	for i, d := range days {
		dates[i] = d.Date
	}
	return dates, nil
}

// UpsertWeeklySummaryParams is the input to UpsertWeeklySummary.
type UpsertWeeklySummaryParams struct {
	Year              int
	Week              int
	Content           string
	KeyThemes         []string
	SourceCount       int
	TotalInteractions *int
	ModelUsed         string
}

// UpsertWeeklySummary writes or overwrites the WeeklySummary keyed by
// (Year, Week).
func (s *Store) UpsertWeeklySummary(ctx context.Context, p UpsertWeeklySummaryParams) (*ent.WeeklySummary, error) {
	existing, err := s.client.WeeklySummary.Query().
		Where(weeklysummary.YearEQ(p.Year), weeklysummary.WeekEQ(p.Week)).
		Only(ctx)
	builder := func() *ent.WeeklySummaryUpdateOne {
		u := existing.Update().
			SetContent(p.Content).
			SetKeyThemes(p.KeyThemes).
			SetSourceCount(p.SourceCount).
			SetModelUsed(p.ModelUsed).
			SetGeneratedAt(time.Now())
		if p.TotalInteractions != nil {
			u = u.SetTotalInteractions(*p.TotalInteractions)
		}
		return u
	}
	switch {
	case err == nil:
		updated, err := builder().Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update weekly summary: %w", err)
		}
		return updated, nil
	case ent.IsNotFound(err):
		c := s.client.WeeklySummary.Create().
			SetYear(p.Year).
			SetWeek(p.Week).
			SetContent(p.Content).
			SetKeyThemes(p.KeyThemes).
			SetSourceCount(p.SourceCount).
			SetModelUsed(p.ModelUsed).
			SetGeneratedAt(time.Now())
		if p.TotalInteractions != nil {
			c = c.SetTotalInteractions(*p.TotalInteractions)
		}
		created, err := c.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create weekly summary: %w", err)
		}
		return created, nil
	default:
		return nil, fmt.Errorf("query weekly summary: %w", err)
	}
}

// GetWeeklySummary fetches the WeeklySummary for (year, week), if any.
func (s *Store) GetWeeklySummary(ctx context.Context, year, week int) (*ent.WeeklySummary, error) {
	ws, err := s.client.WeeklySummary.Query().
		Where(weeklysummary.YearEQ(year), weeklysummary.WeekEQ(week)).
		Select(nonEmbeddingWeeklyFields...).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get weekly summary: %w", err)
	}
	return ws, nil
}

// ListUnsummarizedWeeks returns (year, week) keys that have at least one
// DailySummary but no WeeklySummary yet.
func (s *Store) ListUnsummarizedWeeks(ctx context.Context, limit int) ([][2]int, error) {
	if limit <= 0 {
		limit = 12
	}
	days, err := s.client.Day.Query().Where(day.HasDailySummary()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query days with daily summaries: %w", err)
	}

	seen := map[[2]int]bool{}
	var keys [][2]int
	for _, d := range days {
		key := [2]int{d.Year, d.IsoWeek}
		if seen[key] {
			continue
		}
		seen[key] = true
		_, err := s.client.WeeklySummary.Query().
			Where(weeklysummary.YearEQ(key[0]), weeklysummary.WeekEQ(key[1])).
			Only(ctx)
		if err != nil && ent.IsNotFound(err) {
			keys = append(keys, key)
		} else if err != nil {
			return nil, fmt.Errorf("query weekly summary existence: %w", err)
		}
		if len(keys) >= limit {
			break
		}
	}
	return keys, nil
}

// UpsertMonthlySummaryParams is the input to UpsertMonthlySummary.
type UpsertMonthlySummaryParams struct {
	Year              int
	Month             int
	Content           string
	KeyThemes         []string
	SourceCount       int
	TotalInteractions *int
	ModelUsed         string
}

// UpsertMonthlySummary writes or overwrites the MonthlySummary keyed by
// (Year, Month).
func (s *Store) UpsertMonthlySummary(ctx context.Context, p UpsertMonthlySummaryParams) (*ent.MonthlySummary, error) {
	existing, err := s.client.MonthlySummary.Query().
		Where(monthlysummary.YearEQ(p.Year), monthlysummary.MonthEQ(p.Month)).
		Only(ctx)
	switch {
	case err == nil:
		u := existing.Update().
			SetContent(p.Content).
			SetKeyThemes(p.KeyThemes).
			SetSourceCount(p.SourceCount).
			SetModelUsed(p.ModelUsed).
			SetGeneratedAt(time.Now())
		if p.TotalInteractions != nil {
			u = u.SetTotalInteractions(*p.TotalInteractions)
		}
		updated, err := u.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update monthly summary: %w", err)
		}
		return updated, nil
	case ent.IsNotFound(err):
		c := s.client.MonthlySummary.Create().
			SetYear(p.Year).
			SetMonth(p.Month).
			SetContent(p.Content).
			SetKeyThemes(p.KeyThemes).
			SetSourceCount(p.SourceCount).
			SetModelUsed(p.ModelUsed).
			SetGeneratedAt(time.Now())
		if p.TotalInteractions != nil {
			c = c.SetTotalInteractions(*p.TotalInteractions)
		}
		created, err := c.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create monthly summary: %w", err)
		}
		return created, nil
	default:
		return nil, fmt.Errorf("query monthly summary: %w", err)
	}
}

// GetMonthlySummary fetches the MonthlySummary for (year, month), if any.
func (s *Store) GetMonthlySummary(ctx context.Context, year, month int) (*ent.MonthlySummary, error) {
	ms, err := s.client.MonthlySummary.Query().
		Where(monthlysummary.YearEQ(year), monthlysummary.MonthEQ(month)).
		Select(nonEmbeddingMonthlyFields...).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get monthly summary: %w", err)
	}
	return ms, nil
}

// ListUnsummarizedMonths returns (year, month) keys with at least one
// WeeklySummary but no MonthlySummary yet.
func (s *Store) ListUnsummarizedMonths(ctx context.Context, limit int) ([][2]int, error) {
	if limit <= 0 {
		limit = 6
	}
	weeks, err := s.client.WeeklySummary.Query().Select(weeklysummary.FieldYear, weeklysummary.FieldWeek).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query weekly summaries: %w", err)
	}

	seenMonths := map[[2]int]bool{}
	var keys [][2]int
	for _, w := range weeks {
		// Approximate the ISO week's calendar month via its Thursday
		// (ISO weeks belong to the month containing their Thursday).
		jan1 := time.Date(w.Year, 1, 1, 0, 0, 0, 0, time.UTC)
		_, jan1ISOWeek := jan1.ISOWeek()
		offsetWeeks := w.Week - jan1ISOWeek
		thursday := jan1.AddDate(0, 0, offsetWeeks*7)
		key := [2]int{thursday.Year(), int(thursday.Month())}
		if seenMonths[key] {
			continue
		}
		seenMonths[key] = true
		_, err := s.client.MonthlySummary.Query().
			Where(monthlysummary.YearEQ(key[0]), monthlysummary.MonthEQ(key[1])).
			Only(ctx)
		if err != nil && ent.IsNotFound(err) {
			keys = append(keys, key)
		} else if err != nil {
			return nil, fmt.Errorf("query monthly summary existence: %w", err)
		}
		if len(keys) >= limit {
			break
		}
	}
	return keys, nil
}
