package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/alex/pkg/memory"
)

// memoryListFilter builds the debug endpoint's interaction filter.
func memoryListFilter(since, until *time.Time, limit int) memory.ListInteractionsFilter {
	return memory.ListInteractionsFilter{Since: since, Until: until, Limit: limit}
}

// debugInteractionsHandler handles GET /debug/interactions?date=&limit=.
func (s *Server) debugInteractionsHandler(c *echo.Context) error {
	var since, until *time.Time
	if dateStr := c.QueryParam("date"); dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
		}
		start := d
		end := d.AddDate(0, 0, 1)
		since, until = &start, &end
	}

	limit := 50
	if l := c.QueryParam("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			limit = parsed
		}
	}

	rows, err := s.store.ListInteractions(c.Request().Context(), memoryListFilter(since, until, limit))
	if err != nil {
		return errResponse(c, err)
	}

	out := make([]InteractionDebugEntry, len(rows))
	for i, r := range rows {
		entry := InteractionDebugEntry{
			ID:                r.ID,
			Timestamp:         r.Timestamp,
			UserMessage:       r.UserMessage,
			AssistantResponse: r.AssistantResponse,
			ComplexityScore:   r.ComplexityScore,
		}
		if r.Intent != nil {
			entry.Intent = *r.Intent
		}
		if r.ModelUsed != nil {
			entry.ModelUsed = *r.ModelUsed
		}
		out[i] = entry
	}
	return c.JSON(http.StatusOK, out)
}

// debugSemanticSearchHandler handles GET /debug/semantic-search?query=&top_k=.
func (s *Server) debugSemanticSearchHandler(c *echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query is required"})
	}
	topK := 5
	if k := c.QueryParam("top_k"); k != "" {
		if parsed, err := strconv.Atoi(k); err == nil && parsed > 0 {
			topK = parsed
		}
	}

	embedding, err := s.model.Embed(c.Request().Context(), s.embeddingModel, query)
	if err != nil {
		return errResponse(c, err)
	}
	matches, err := s.store.SemanticSearchInteractions(c.Request().Context(), embedding, topK)
	if err != nil {
		return errResponse(c, err)
	}

	out := make([]SemanticSearchMatch, len(matches))
	for i, m := range matches {
		out[i] = SemanticSearchMatch{
			ID:                m.ID,
			Similarity:        1 - m.Distance,
			UserMessage:       m.UserMsg,
			AssistantResponse: m.AssistResp,
		}
	}
	return c.JSON(http.StatusOK, out)
}

// debugSummariesHandler handles GET /debug/summaries: the
// current daily/weekly/monthly summary, if any.
func (s *Server) debugSummariesHandler(c *echo.Context) error {
	now := s.clock()
	var resp SummariesDebugResponse

	if ds, err := s.store.GetDailySummary(c.Request().Context(), now); err == nil {
		resp.Daily = &SummaryDebugEntry{Key: now.Format("2006-01-02"), Content: ds.Content, Labels: ds.KeyTopics, SourceCount: ds.SourceCount}
	}
	year, week := now.ISOWeek()
	if ws, err := s.store.GetWeeklySummary(c.Request().Context(), year, week); err == nil {
		resp.Weekly = &SummaryDebugEntry{Key: weekKey(year, week), Content: ws.Content, Labels: ws.KeyThemes, SourceCount: ws.SourceCount}
	}
	if ms, err := s.store.GetMonthlySummary(c.Request().Context(), now.Year(), int(now.Month())); err == nil {
		resp.Monthly = &SummaryDebugEntry{Key: monthKey(now.Year(), int(now.Month())), Content: ms.Content, Labels: ms.KeyThemes, SourceCount: ms.SourceCount}
	}
	return c.JSON(http.StatusOK, resp)
}

// debugUnsummarizedHandler handles GET /debug/unsummarized.
func (s *Server) debugUnsummarizedHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	resp := UnsummarizedDebugResponse{}

	days, err := s.store.ListUnsummarizedDays(ctx, 0)
	if err != nil {
		return errResponse(c, err)
	}
	for _, d := range days {
		resp.Days = append(resp.Days, d.Format("2006-01-02"))
	}

	weeks, err := s.store.ListUnsummarizedWeeks(ctx, 0)
	if err != nil {
		return errResponse(c, err)
	}
	for _, w := range weeks {
		resp.Weeks = append(resp.Weeks, weekKey(w[0], w[1]))
	}

	months, err := s.store.ListUnsummarizedMonths(ctx, 0)
	if err != nil {
		return errResponse(c, err)
	}
	for _, m := range months {
		resp.Months = append(resp.Months, monthKey(m[0], m[1]))
	}

	return c.JSON(http.StatusOK, resp)
}

func weekKey(year, week int) string {
	return strconv.Itoa(year) + "-W" + padTwo(week)
}

func monthKey(year, month int) string {
	return strconv.Itoa(year) + "-" + padTwo(month)
}

func padTwo(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
