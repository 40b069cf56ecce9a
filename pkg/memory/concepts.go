package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/codeready-toolchain/alex/ent"
	"github.com/codeready-toolchain/alex/ent/concept"
)

func normalizeConceptName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range lower {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ensureConcept returns the Concept row for name, creating it on first
// mention and incrementing mention_count on every call; mention_count only
// ever grows.
func (s *Store) ensureConcept(ctx context.Context, name string) (*ent.Concept, error) {
	normalized := normalizeConceptName(name)
	if normalized == "" {
		return nil, NewValidationError("concept_name", "empty after normalization")
	}

	existing, err := s.client.Concept.Query().Where(concept.NormalizedNameEQ(normalized)).Only(ctx)
	if err == nil {
		updated, err := existing.Update().AddMentionCount(1).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("increment concept mention_count: %w", err)
		}
		return updated, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query concept: %w", err)
	}

	created, err := s.client.Concept.Create().
		SetName(name).
		SetNormalizedName(normalized).
		SetFirstMentioned(time.Now()).
		SetMentionCount(1).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.ensureConcept(ctx, name)
		}
		return nil, fmt.Errorf("create concept: %w", err)
	}
	return created, nil
}

// LinkConceptsToInteraction ensures each topic exists as a Concept and links
// it to interactionID, bumping mention counts.
func (s *Store) LinkConceptsToInteraction(ctx context.Context, interactionID string, topics []string) error {
	for _, topic := range topics {
		c, err := s.ensureConcept(ctx, topic)
		if err != nil {
			return err
		}
		if err := s.client.Interaction.UpdateOneID(interactionID).AddConceptIDs(c.ID).Exec(ctx); err != nil {
			return fmt.Errorf("link concept %q to interaction: %w", topic, err)
		}
	}
	return nil
}

// LinkConceptsToCodeChange mirrors LinkConceptsToInteraction for file-path
// derived concepts on a CodeChange.
func (s *Store) LinkConceptsToCodeChange(ctx context.Context, codeChangeID string, topics []string) error {
	for _, topic := range topics {
		c, err := s.ensureConcept(ctx, topic)
		if err != nil {
			return err
		}
		if err := s.client.CodeChange.UpdateOneID(codeChangeID).AddConceptIDs(c.ID).Exec(ctx); err != nil {
			return fmt.Errorf("link concept %q to code change: %w", topic, err)
		}
	}
	return nil
}

// CooccurringConcepts returns the concepts most frequently linked to the
// same interactions as any of seedTopics, excluding the seeds themselves:
// the retriever's co-occurrence sub-query.
func (s *Store) CooccurringConcepts(ctx context.Context, seedTopics []string, limit int) ([]*ent.Concept, error) {
	if len(seedTopics) == 0 {
		return nil, nil
	}
	normalized := make([]string, 0, len(seedTopics))
	for _, t := range seedTopics {
		if n := normalizeConceptName(t); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return nil, nil
	}

	seeds, err := s.client.Concept.Query().Where(concept.NormalizedNameIn(normalized...)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query seed concepts: %w", err)
	}
	if len(seeds) == 0 {
		return nil, nil
	}
	seedIDs := make(map[int]bool, len(seeds))
	for _, c := range seeds {
		seedIDs[c.ID] = true
	}

	counts := map[int]int{}
	byID := map[int]*ent.Concept{}
	for _, seed := range seeds {
		interactions, err := seed.QueryInteractions().All(ctx)
		if err != nil {
			return nil, fmt.Errorf("query interactions for concept %q: %w", seed.Name, err)
		}
		for _, in := range interactions {
			related, err := in.QueryConcepts().All(ctx)
			if err != nil {
				return nil, fmt.Errorf("query concepts for interaction: %w", err)
			}
			for _, rc := range related {
				if seedIDs[rc.ID] {
					continue
				}
				counts[rc.ID]++
				byID[rc.ID] = rc
			}
		}
	}

	ranked := make([]*ent.Concept, 0, len(byID))
	for id := range byID {
		ranked = append(ranked, byID[id])
	}
	// Simple selection sort by count desc; result sets here are small
	// (bounded by recent interaction volume per seed topic).
	for i := 0; i < len(ranked); i++ {
		max := i
		for j := i + 1; j < len(ranked); j++ {
			if counts[ranked[j].ID] > counts[ranked[max].ID] {
				max = j
			}
		}
		ranked[i], ranked[max] = ranked[max], ranked[i]
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
