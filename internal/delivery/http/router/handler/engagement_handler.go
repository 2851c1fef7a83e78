package handler

import (
	"net/http"

	"sukhan/internal/delivery/http/middleware"
	"sukhan/internal/delivery/http/response"
	"sukhan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EngagementHandler exposes the idempotent engagement toggles. Each
// response carries the outcome so clients can tell a fresh application
// from a repeat.
type EngagementHandler struct {
	uc usecase.EngagementUsecase
}

// NewEngagementHandler is the constructor for EngagementHandler, injected by Fx.
func NewEngagementHandler(uc usecase.EngagementUsecase) *EngagementHandler {
	return &EngagementHandler{uc: uc}
}

type outcomePayload struct {
	Outcome usecase.Outcome `json:"outcome"`
}

func (h *EngagementHandler) identity(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, response.BadRequest(c, "INVALID_INPUT", "Invalid target ID")
	}

	return userID, targetID, nil
}

// LikePoem records a like for the caller.
func (h *EngagementHandler) LikePoem(c echo.Context) error {
	userID, poetryID, err := h.identity(c)
	if err != nil {
		return err
	}

	outcome, err := h.uc.LikePoem(c.Request().Context(), userID, poetryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outcomePayload{Outcome: outcome}, "")
}

// UnlikePoem removes the caller's like.
func (h *EngagementHandler) UnlikePoem(c echo.Context) error {
	userID, poetryID, err := h.identity(c)
	if err != nil {
		return err
	}

	outcome, err := h.uc.UnlikePoem(c.Request().Context(), userID, poetryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outcomePayload{Outcome: outcome}, "")
}

type rateRequest struct {
	Score int `json:"rating" validate:"required,min=1,max=5"`
}

// RatePoem records or overwrites the caller's score.
func (h *EngagementHandler) RatePoem(c echo.Context) error {
	userID, poetryID, err := h.identity(c)
	if err != nil {
		return err
	}

	var input rateRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.RatePoem(c.Request().Context(), userID, poetryID, input.Score)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// RemoveRating deletes the caller's rating.
func (h *EngagementHandler) RemoveRating(c echo.Context) error {
	userID, poetryID, err := h.identity(c)
	if err != nil {
		return err
	}

	outcome, err := h.uc.RemoveRating(c.Request().Context(), userID, poetryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outcomePayload{Outcome: outcome}, "")
}

// FollowPoet records a follow for the caller.
func (h *EngagementHandler) FollowPoet(c echo.Context) error {
	userID, poetID, err := h.identity(c)
	if err != nil {
		return err
	}

	outcome, err := h.uc.FollowPoet(c.Request().Context(), userID, poetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outcomePayload{Outcome: outcome}, "")
}

// UnfollowPoet removes the caller's follow.
func (h *EngagementHandler) UnfollowPoet(c echo.Context) error {
	userID, poetID, err := h.identity(c)
	if err != nil {
		return err
	}

	outcome, err := h.uc.UnfollowPoet(c.Request().Context(), userID, poetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outcomePayload{Outcome: outcome}, "")
}

// SavePoem adds the poem to the caller's collection.
func (h *EngagementHandler) SavePoem(c echo.Context) error {
	userID, poetryID, err := h.identity(c)
	if err != nil {
		return err
	}

	outcome, err := h.uc.SavePoem(c.Request().Context(), userID, poetryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outcomePayload{Outcome: outcome}, "")
}

// UnsavePoem removes the poem from the caller's collection.
func (h *EngagementHandler) UnsavePoem(c echo.Context) error {
	userID, poetryID, err := h.identity(c)
	if err != nil {
		return err
	}

	outcome, err := h.uc.UnsavePoem(c.Request().Context(), userID, poetryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outcomePayload{Outcome: outcome}, "")
}

type existsPayload struct {
	Exists bool `json:"exists"`
}

type ratingCheckPayload struct {
	Exists bool `json:"exists"`
	Score  int  `json:"rating,omitempty"`
}

// CheckLike reports whether the caller has liked the poem.
func (h *EngagementHandler) CheckLike(c echo.Context) error {
	userID, poetryID, err := h.identity(c)
	if err != nil {
		return err
	}

	exists, err := h.uc.CheckLike(c.Request().Context(), userID, poetryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, existsPayload{Exists: exists}, "")
}

// CheckRating reports the caller's score for the poem, if any.
func (h *EngagementHandler) CheckRating(c echo.Context) error {
	userID, poetryID, err := h.identity(c)
	if err != nil {
		return err
	}

	score, exists, err := h.uc.CheckRating(c.Request().Context(), userID, poetryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ratingCheckPayload{Exists: exists, Score: score}, "")
}

// CheckFollow reports whether the caller follows the poet.
func (h *EngagementHandler) CheckFollow(c echo.Context) error {
	userID, poetID, err := h.identity(c)
	if err != nil {
		return err
	}

	exists, err := h.uc.CheckFollow(c.Request().Context(), userID, poetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, existsPayload{Exists: exists}, "")
}

// CheckSaved reports whether the caller has saved the poem.
func (h *EngagementHandler) CheckSaved(c echo.Context) error {
	userID, poetryID, err := h.identity(c)
	if err != nil {
		return err
	}

	exists, err := h.uc.CheckSaved(c.Request().Context(), userID, poetryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, existsPayload{Exists: exists}, "")
}

// GetUserEngagement returns the caller's complete engagement state.
func (h *EngagementHandler) GetUserEngagement(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	engagement, err := h.uc.GetUserEngagement(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, engagement, "")
}
