package summarizer

import "strings"

// parsed holds a model response split into its prose summary and its label
// list.
type parsed struct {
	Summary string
	Labels  []string
}

// parseModelResponse splits on the literal marker "KEY_TOPICS:" or
// "KEY_THEMES:" (whichever appears first); text above (less a leading
// "SUMMARY:" marker) is the summary, text below is a comma- or
// newline-separated label list. Labels are cleaned of brackets, dashes, and
// empty entries. A response with no marker is treated as summary-only with
// no labels, never as a failure.
func parseModelResponse(text string) parsed {
	marker := "KEY_TOPICS:"
	before, after, found := strings.Cut(text, marker)
	if !found {
		marker = "KEY_THEMES:"
		before, after, found = strings.Cut(text, marker)
	}

	summary := before
	if !found {
		summary = text
	}
	summary = strings.TrimSpace(summary)
	summary = strings.TrimPrefix(summary, "SUMMARY:")
	summary = strings.TrimSpace(summary)

	if !found {
		return parsed{Summary: summary}
	}

	return parsed{Summary: summary, Labels: parseLabels(after)}
}

// parseLabels splits a comma- or newline-separated label blob and cleans
// each entry.
func parseLabels(blob string) []string {
	replacer := strings.NewReplacer("\n", ",")
	fields := strings.Split(replacer.Replace(blob), ",")

	var labels []string
	for _, f := range fields {
		label := cleanLabel(f)
		if label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// cleanLabel strips surrounding whitespace, list markers, brackets, and
// dashes from one raw label field.
func cleanLabel(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "[]{}()")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "*")
	s = strings.TrimSpace(s)
	return s
}
