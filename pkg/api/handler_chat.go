package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/alex/pkg/graph"
)

// defaultChatUserID is used when a caller omits user_id; lazily creating a
// stable anonymous user lets single-user local deployments skip the field
// entirely.
const defaultChatUserID = "anonymous"

// chatHandler handles POST /api/v1/chat.
func (s *Server) chatHandler(c *echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Message == "" || len(req.Message) > 10000 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "message must be 1..10000 characters"})
	}

	userID := req.UserID
	if userID == "" {
		userID = defaultChatUserID
	}

	history := make([]graph.Message, 0, len(req.ConversationHistory))
	for _, h := range req.ConversationHistory {
		role := graph.RoleUser
		if h.Role == "assistant" {
			role = graph.RoleAssistant
		}
		history = append(history, graph.Message{Role: role, Content: h.Content})
	}

	resp := graph.Run(c.Request().Context(), s.graphDeps, graph.Request{
		UserMessage: req.Message,
		UserID:      userID,
		SessionID:   req.SessionID,
		History:     history,
	}, s.clock())

	return c.JSON(http.StatusOK, ChatResponse{
		Response:  resp.Response,
		SessionID: resp.SessionID,
		Metadata: ChatResponseMetadata{
			Intent:          resp.Metadata.Intent,
			ComplexityScore: resp.Metadata.ComplexityScore,
			ModelUsed:       resp.Metadata.ModelUsed,
			LatencyMS:       resp.Metadata.LatencyMS,
			Cortex:          resp.Metadata.Cortex,
		},
	})
}
