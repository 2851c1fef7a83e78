package handler

import (
	"net/http"
	"strconv"

	"sukhan/internal/delivery/http/response"
	"sukhan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalyticsHandler exposes the read-only admin aggregation surface.
type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetDashboard returns headline counts and the engagement leaderboards.
func (h *AnalyticsHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.uc.GetDashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "")
}

// GetTopPoems returns one engagement leaderboard with a caller-chosen size.
func (h *AnalyticsHandler) GetTopPoems(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	poems, err := h.uc.TopPoems(c.Request().Context(), usecase.TopPoemsBoard(c.QueryParam("board")), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poems, "")
}

// GetGrowth returns daily sign-up and submission counts.
func (h *AnalyticsHandler) GetGrowth(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))

	report, err := h.uc.GetGrowth(c.Request().Context(), days)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "")
}

// GetRecentActivity returns the latest engagement events.
func (h *AnalyticsHandler) GetRecentActivity(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.uc.GetRecentActivity(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}
