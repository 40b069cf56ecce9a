package summarizer

// Per-item content budgets for prompt assembly.
const (
	userMessageBudget       = 500
	assistantResponseBudget = 1000
	dailySummaryBudget      = 1500
	weeklySummaryBudget     = 2000
)

// truncate clips s to at most n runes, appending an ellipsis marker when it
// clips, so the prompt text always signals it was shortened rather than
// silently ending mid-thought.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
