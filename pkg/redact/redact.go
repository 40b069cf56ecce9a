// Package redact scrubs secrets out of tool output and log lines before they
// are persisted as Interaction/CodeChange content or written to structured
// logs: one eagerly-compiled built-in pattern set plus whatever a deployment
// adds via config, with structurally-aware maskers for formats a flat regex
// handles poorly.
package redact

import (
	"log/slog"
	"regexp"
)

// CompiledPattern is a pre-compiled regex with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// Masker is a structurally-aware redactor for formats a flat regex handles
// poorly.
type Masker interface {
	Name() string
	AppliesTo(data string) bool
	Mask(data string) string
}

// Redactor applies code-based maskers first, then the regex patterns.
type Redactor struct {
	patterns []*CompiledPattern
	maskers  []Masker
}

// New compiles the built-in patterns plus any extra patterns supplied by
// config, and registers the built-in maskers. Invalid custom patterns are
// logged and skipped rather than failing startup.
func New(extra map[string]string) *Redactor {
	r := &Redactor{}
	for _, p := range builtinPatterns {
		r.patterns = append(r.patterns, p)
	}
	for name, pattern := range extra {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			slog.Error("redact: failed to compile custom pattern, skipping", "pattern", name, "error", err)
			continue
		}
		r.patterns = append(r.patterns, &CompiledPattern{Name: name, Regex: compiled, Replacement: "[REDACTED]"})
	}
	r.maskers = append(r.maskers, &dotenvMasker{})
	return r
}

// Redact applies every registered masker and pattern to text. Tool outputs
// and CodeChange descriptions pass through this before being handed to a
// responder or persisted, so brokerage credentials and local secrets never
// leak into model context or memory.
func (r *Redactor) Redact(text string) string {
	if text == "" {
		return text
	}
	masked := text
	for _, m := range r.maskers {
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}
	for _, p := range r.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}
