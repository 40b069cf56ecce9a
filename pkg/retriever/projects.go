package retriever

import (
	"strings"

	"github.com/codeready-toolchain/alex/ent"
)

// normalizeForMatch lower-cases and strips punctuation so entity matching
// against project names/descriptions tolerates casing and separators.
func normalizeForMatch(s string) string {
	lower := strings.ToLower(s)
	var b strings.Builder
	for _, r := range lower {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' ' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// matchProjects returns up to limit project names whose normalized name or
// description contains any normalized entity as a substring, preserving
// project order and de-duplicating.
func matchProjects(projects []*ent.Project, entities []string, limit int) []string {
	normalizedEntities := make([]string, 0, len(entities))
	for _, e := range entities {
		if n := normalizeForMatch(e); n != "" {
			normalizedEntities = append(normalizedEntities, n)
		}
	}
	if len(normalizedEntities) == 0 {
		return nil
	}

	var matched []string
	for _, p := range projects {
		name := normalizeForMatch(p.Name)
		desc := normalizeForMatch(p.Description)
		for _, e := range normalizedEntities {
			if strings.Contains(name, e) || (desc != "" && strings.Contains(desc, e)) {
				matched = append(matched, p.Name)
				break
			}
		}
		if len(matched) >= limit {
			break
		}
	}
	return matched
}
