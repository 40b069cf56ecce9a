package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/alex/pkg/summarizer"
)

// summarizeDailyHandler handles POST /tasks/summarize_daily.
func (s *Server) summarizeDailyHandler(c *echo.Context) error {
	result, err := s.pipeline.RunDaily(c.Request().Context())
	return s.tierResponse(c, result, err)
}

// summarizeWeeklyHandler handles POST /tasks/summarize_weekly.
func (s *Server) summarizeWeeklyHandler(c *echo.Context) error {
	result, err := s.pipeline.RunWeekly(c.Request().Context())
	return s.tierResponse(c, result, err)
}

// summarizeMonthlyHandler handles POST /tasks/summarize_monthly.
func (s *Server) summarizeMonthlyHandler(c *echo.Context) error {
	result, err := s.pipeline.RunMonthly(c.Request().Context())
	return s.tierResponse(c, result, err)
}

// summarizeAllHandler handles POST /tasks/summarize_all, nesting the three
// tiers' results in one body.
func (s *Server) summarizeAllHandler(c *echo.Context) error {
	result, err := s.pipeline.RunAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, struct {
			Status string               `json:"status"`
			Result summarizer.AllResult `json:"result"`
			Error  string               `json:"error"`
		}{Status: "error", Result: result, Error: err.Error()})
	}
	return c.JSON(http.StatusOK, struct {
		Status string               `json:"status"`
		Result summarizer.AllResult `json:"result"`
	}{Status: "ok", Result: result})
}

// tierResponse renders one tier's Result per the {status, processed,
// completed, skipped, errors} contract.
func (s *Server) tierResponse(c *echo.Context, result summarizer.Result, err error) error {
	status := "ok"
	if err != nil {
		status = "error"
		result.Errors = append(result.Errors, err.Error())
	}
	return c.JSON(http.StatusOK, struct {
		Status    string          `json:"status"`
		Processed int             `json:"processed"`
		Completed int             `json:"completed"`
		Skipped   int             `json:"skipped"`
		Errors    []string        `json:"errors,omitempty"`
		Tier      summarizer.Tier `json:"tier"`
	}{
		Status:    status,
		Processed: result.Processed,
		Completed: result.Completed,
		Skipped:   result.Skipped,
		Errors:    result.Errors,
		Tier:      result.Tier,
	})
}
