package handler

import (
	"net/http"
	"strconv"

	"sukhan/internal/delivery/http/middleware"
	"sukhan/internal/delivery/http/response"
	"sukhan/internal/domain/repository"
	"sukhan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for feedback handlers.
type FeedbackHandler struct {
	uc usecase.FeedbackUsecase
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

// SubmitFeedback records a feedback entry for the caller.
func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.FeedbackInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	feedback, err := h.uc.SubmitFeedback(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, feedback, "Feedback submitted")
}

type feedbackPage struct {
	Entries any   `json:"entries"`
	Total   int64 `json:"total"`
}

// ListFeedback returns feedback entries newest first, narrowed by the
// optional rating and resolved query parameters.
func (h *FeedbackHandler) ListFeedback(c echo.Context) error {
	filter := repository.FeedbackListFilter{}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	filter.Rating, _ = strconv.Atoi(c.QueryParam("rating"))
	if raw := c.QueryParam("resolved"); raw != "" {
		if resolved, err := strconv.ParseBool(raw); err == nil {
			filter.Resolved = &resolved
		}
	}

	entries, total, err := h.uc.ListFeedback(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedbackPage{Entries: entries, Total: total}, "")
}

type replyRequest struct {
	Reply string `json:"reply" validate:"required"`
}

// ReplyFeedback stores an admin reply and marks the entry resolved.
func (h *FeedbackHandler) ReplyFeedback(c echo.Context) error {
	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid feedback ID")
	}

	var input replyRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reply input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	feedback, err := h.uc.ReplyFeedback(c.Request().Context(), feedbackID, input.Reply)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedback, "Reply stored")
}

// DeleteFeedback removes an entry.
func (h *FeedbackHandler) DeleteFeedback(c echo.Context) error {
	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid feedback ID")
	}

	if err := h.uc.DeleteFeedback(c.Request().Context(), feedbackID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Feedback deleted")
}
