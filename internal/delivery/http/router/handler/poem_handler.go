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

// PoemHandler holds dependencies for poem and moderation handlers.
type PoemHandler struct {
	uc usecase.PoemUsecase
}

// NewPoemHandler is the constructor for PoemHandler, injected by Fx.
func NewPoemHandler(uc usecase.PoemUsecase) *PoemHandler {
	return &PoemHandler{uc: uc}
}

// actorFrom lifts the authenticated caller out of the request context.
func actorFrom(c echo.Context) usecase.Actor {
	userID, _ := middleware.GetUserID(c)

	return usecase.Actor{ID: userID, IsAdmin: middleware.IsAdmin(c)}
}

// SubmitPoem creates a poem under the caller's poet profile.
func (h *PoemHandler) SubmitPoem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.PoemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid poem input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	poem, err := h.uc.SubmitPoem(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, poem, "Poem submitted")
}

// ListPoems returns published poems matching the query filter.
func (h *PoemHandler) ListPoems(c echo.Context) error {
	filter := repository.PoemListFilter{
		GenreSlug: c.QueryParam("genre"),
		Sort:      repository.PoemSort(c.QueryParam("sort")),
	}

	if poetParam := c.QueryParam("poet"); poetParam != "" {
		poetID, err := uuid.Parse(poetParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid poet ID")
		}
		filter.PoetID = &poetID
	}

	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	poems, err := h.uc.ListPoems(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poems, "")
}

// GetPoem returns one poem. Admin callers also see unpublished poems.
func (h *PoemHandler) GetPoem(c echo.Context) error {
	poemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid poem ID")
	}

	poem, err := h.uc.GetPoem(c.Request().Context(), poemID, middleware.IsAdmin(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poem, "")
}

// ListAllPoems returns every poem for the moderation queue, pending first.
func (h *PoemHandler) ListAllPoems(c echo.Context) error {
	poems, err := h.uc.ListAllPoems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poems, "")
}

// ApprovePoem moves a poem to published.
func (h *PoemHandler) ApprovePoem(c echo.Context) error {
	poemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid poem ID")
	}

	poem, err := h.uc.ApprovePoem(c.Request().Context(), actorFrom(c), poemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poem, "Poem approved")
}

// RejectPoem moves a poem to rejected.
func (h *PoemHandler) RejectPoem(c echo.Context) error {
	poemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid poem ID")
	}

	poem, err := h.uc.RejectPoem(c.Request().Context(), actorFrom(c), poemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poem, "Poem rejected")
}

// TogglePoemVisibility flips pending to published and back.
func (h *PoemHandler) TogglePoemVisibility(c echo.Context) error {
	poemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid poem ID")
	}

	poem, err := h.uc.TogglePoemVisibility(c.Request().Context(), actorFrom(c), poemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, poem, "Poem visibility updated")
}

// DeletePoem removes a poem and its engagement facts.
func (h *PoemHandler) DeletePoem(c echo.Context) error {
	poemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid poem ID")
	}

	if err := h.uc.DeletePoem(c.Request().Context(), actorFrom(c), poemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Poem deleted")
}
