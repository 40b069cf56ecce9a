package api

import (
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// backfillEmbeddingsMaxPerCall bounds one call's work: at most 100
// interactions missing vectors are embedded per call.
const backfillEmbeddingsMaxPerCall = 100

// backfillEmbeddingsHandler handles POST /admin/backfill-embeddings.
func (s *Server) backfillEmbeddingsHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	ids, err := s.store.ListInteractionsMissingEmbedding(ctx, backfillEmbeddingsMaxPerCall)
	if err != nil {
		return errResponse(c, err)
	}

	resp := BackfillEmbeddingsResponse{Attempted: len(ids)}
	for _, id := range ids {
		in, err := s.store.GetInteraction(ctx, id)
		if err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", id, err))
			continue
		}
		embedding, err := s.model.Embed(ctx, s.embeddingModel, in.UserMessage+" "+in.AssistantResponse)
		if err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", id, err))
			continue
		}
		if err := s.store.BackfillInteractionEmbedding(ctx, id, embedding); err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", id, err))
			continue
		}
		resp.Succeeded++
	}

	return c.JSON(http.StatusOK, resp)
}
