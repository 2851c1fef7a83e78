package handler

import (
	"net/http"

	"sukhan/internal/delivery/http/response"
	"sukhan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GenreHandler holds dependencies for genre taxonomy handlers.
type GenreHandler struct {
	uc usecase.GenreUsecase
}

// NewGenreHandler is the constructor for GenreHandler, injected by Fx.
func NewGenreHandler(uc usecase.GenreUsecase) *GenreHandler {
	return &GenreHandler{uc: uc}
}

// ListGenres returns the full taxonomy ordered by name.
func (h *GenreHandler) ListGenres(c echo.Context) error {
	genres, err := h.uc.ListGenres(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, genres, "")
}

// GetGenreBySlug returns one genre.
func (h *GenreHandler) GetGenreBySlug(c echo.Context) error {
	genre, err := h.uc.GetGenreBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, genre, "")
}

// CreateGenre adds a taxonomy entry.
func (h *GenreHandler) CreateGenre(c echo.Context) error {
	var input usecase.GenreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid genre input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	genre, err := h.uc.CreateGenre(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, genre, "Genre created")
}
