package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// memoryTodayHandler handles GET /memory/today: today's
// MemoryContext, built the same way retrieve_memory builds it for a turn,
// minus the semantic/co-occurrence sub-queries that need a live user
// message and topic list.
func (s *Server) memoryTodayHandler(c *echo.Context) error {
	if s.graphDeps.Retriever == nil {
		return c.JSON(http.StatusOK, MemoryTodayResponse{})
	}
	mc := s.graphDeps.Retriever.Retrieve(c.Request().Context(), s.clock(), "", nil, nil)

	snippets := make([]string, 0, len(mc.RelevantInteractions))
	for _, in := range mc.RelevantInteractions {
		snippets = append(snippets, in.UserMessage+" / "+in.AssistantResponse)
	}

	return c.JSON(http.StatusOK, MemoryTodayResponse{
		DailySummary:         mc.DailySummary,
		WeeklySummary:        mc.WeeklySummary,
		RelevantInteractions: snippets,
		RelatedConcepts:      mc.RelatedConcepts,
		RelatedProjects:      mc.RelatedProjects,
	})
}
