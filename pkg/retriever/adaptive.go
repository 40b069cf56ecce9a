package retriever

import "time"

// SummaryLevel is the granularity the adaptive-selection helper chooses for
// a query date relative to today.
type SummaryLevel int

const (
	LevelRawInteractions SummaryLevel = iota
	LevelDailySummary
	LevelWeeklySummary
	LevelMonthlySummary
)

// SelectSummaryLevel picks the granularity for a query date d relative to
// today t: ≤1 day raw interactions, ≤7 days daily summary, ≤30 days weekly
// summary, otherwise monthly summary.
func SelectSummaryLevel(d, t time.Time) SummaryLevel {
	dayDate := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	todayDate := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	delta := todayDate.Sub(dayDate)
	if delta < 0 {
		delta = -delta
	}
	days := int(delta.Hours() / 24)

	switch {
	case days <= 1:
		return LevelRawInteractions
	case days <= 7:
		return LevelDailySummary
	case days <= 30:
		return LevelWeeklySummary
	default:
		return LevelMonthlySummary
	}
}
