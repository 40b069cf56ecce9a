// Package api is the HTTP surface: POST /api/v1/chat, the health/memory/
// debug/admin diagnostic endpoints, and the summarization task triggers,
// all registered on an Echo v5 server wired over the turn graph, memory
// store, and summarizer pipeline.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/codeready-toolchain/alex/pkg/config"
	"github.com/codeready-toolchain/alex/pkg/database"
	"github.com/codeready-toolchain/alex/pkg/graph"
	"github.com/codeready-toolchain/alex/pkg/llm"
	"github.com/codeready-toolchain/alex/pkg/memory"
	"github.com/codeready-toolchain/alex/pkg/summarizer"
	"github.com/codeready-toolchain/alex/pkg/version"
)

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	cfg            *config.Config
	dbClient       *database.Client
	store          *memory.Store
	graphDeps      graph.Deps
	pipeline       *summarizer.Pipeline
	model          llm.Adapter
	embeddingModel string
	clock          func() time.Time
}

// NewServer builds a Server and registers every route up front. clock
// defaults to time.Now; tests may override it via WithClock.
func NewServer(cfg *config.Config, dbClient *database.Client, store *memory.Store, graphDeps graph.Deps, pipeline *summarizer.Pipeline, model llm.Adapter) *Server {
	e := echo.New()

	embeddingModel := "embedding"
	if cfg != nil && cfg.Summarizer != nil && cfg.Summarizer.EmbeddingModel != "" {
		embeddingModel = cfg.Summarizer.EmbeddingModel
	}

	s := &Server{
		echo:           e,
		cfg:            cfg,
		dbClient:       dbClient,
		store:          store,
		graphDeps:      graphDeps,
		pipeline:       pipeline,
		model:          model,
		embeddingModel: embeddingModel,
		clock:          time.Now,
	}

	s.setupRoutes()
	return s
}

// WithClock overrides the server's reference clock (tests only).
func (s *Server) WithClock(clock func() time.Time) *Server {
	s.clock = clock
	return s
}

// setupRoutes registers the full endpoint surface.
func (s *Server) setupRoutes() {
	s.echo.Use(middleware.BodyLimit(2 * 1024 * 1024))
	s.echo.Use(securityHeaders())
	if s.cfg != nil && s.cfg.App != nil && s.cfg.App.Env != "production" {
		s.echo.Use(devCORS())
	}

	s.echo.GET("/health", s.healthHandler)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/chat", s.chatHandler)
	v1.GET("/memory/today", s.memoryTodayHandler)

	v1.POST("/tasks/summarize_daily", s.summarizeDailyHandler)
	v1.POST("/tasks/summarize_weekly", s.summarizeWeeklyHandler)
	v1.POST("/tasks/summarize_monthly", s.summarizeMonthlyHandler)
	v1.POST("/tasks/summarize_all", s.summarizeAllHandler)

	v1.GET("/debug/interactions", s.debugInteractionsHandler)
	v1.GET("/debug/semantic-search", s.debugSemanticSearchHandler)
	v1.GET("/debug/summaries", s.debugSummariesHandler)
	v1.GET("/debug/unsummarized", s.debugUnsummarizedHandler)

	v1.POST("/admin/backfill-embeddings", s.backfillEmbeddingsHandler)
}

// Start starts the HTTP server on addr (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{Addr: addr, Handler: s.echo}
	return s.httpServer.ListenAndServe()
}

// StartWithListener starts the HTTP server on a pre-created listener. Used
// by tests that need a randomly assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{Handler: s.echo}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// healthHandler handles GET /health, reporting overall status, the build
// version, and the store's reachability.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status := "healthy"
	storeHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		status = "degraded"
	}

	return c.JSON(http.StatusOK, &HealthResponse{
		Status:  status,
		Version: version.Full(),
		Store:   storeHealth,
	})
}

// errResponse maps an internal error to a JSON error body, using typed
// classification where available and a generic 500 otherwise.
func errResponse(c *echo.Context, err error) error {
	var valErr *memory.ValidationError
	if errors.As(err, &valErr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if errors.Is(err, memory.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
