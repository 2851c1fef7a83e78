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

// PoetHandler holds dependencies for poet profile handlers.
type PoetHandler struct {
	uc usecase.PoetUsecase
}

// NewPoetHandler is the constructor for PoetHandler, injected by Fx.
func NewPoetHandler(uc usecase.PoetUsecase) *PoetHandler {
	return &PoetHandler{uc: uc}
}

// RegisterPoet creates a poet profile for the logged-in user.
func (h *PoetHandler) RegisterPoet(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.PoetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid poet input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	poet, err := h.uc.RegisterPoet(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, poet, "Poet profile created")
}

// ListPoets returns published poets, popular first by default.
func (h *PoetHandler) ListPoets(c echo.Context) error {
	sort := repository.PoetSort(c.QueryParam("sort"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	poets, err := h.uc.ListPoets(c.Request().Context(), sort, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poets, "")
}

// GetOwnPoet returns the caller's poet profile, if any.
func (h *PoetHandler) GetOwnPoet(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	poet, err := h.uc.GetOwnPoet(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poet, "")
}

// GetPoetBySlug returns one poet's public page data.
func (h *PoetHandler) GetPoetBySlug(c echo.Context) error {
	poet, err := h.uc.GetPoetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poet, "")
}

// ShareQR renders a QR code image pointing at the poet's public page.
func (h *PoetHandler) ShareQR(c echo.Context) error {
	png, err := h.uc.ShareQR(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UpdatePoet applies profile changes for the owning user.
func (h *PoetHandler) UpdatePoet(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	poetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid poet ID")
	}

	var input usecase.PoetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid poet input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	poet, err := h.uc.UpdatePoet(c.Request().Context(), userID, poetID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poet, "Poet profile updated")
}

// ListAllPoets returns every poet for the admin back office.
func (h *PoetHandler) ListAllPoets(c echo.Context) error {
	poets, err := h.uc.ListAllPoets(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poets, "")
}

type publishRequest struct {
	Published bool `json:"published"`
}

// SetPoetPublished toggles poet visibility.
func (h *PoetHandler) SetPoetPublished(c echo.Context) error {
	poetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid poet ID")
	}

	var input publishRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := h.uc.SetPoetPublished(c.Request().Context(), actorFrom(c), poetID, input.Published); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Poet visibility updated")
}

// DeletePoet removes a poet and everything hanging off it.
func (h *PoetHandler) DeletePoet(c echo.Context) error {
	poetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid poet ID")
	}

	if err := h.uc.DeletePoet(c.Request().Context(), actorFrom(c), poetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Poet deleted")
}
