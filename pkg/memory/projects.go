package memory

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/alex/ent"
)

// ListProjects returns every Project row, for the retriever's substring
// match step to run against in-process rather than pushing a fuzzy LIKE
// query down. The project table is small and rarely changes.
func (s *Store) ListProjects(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}
