package usecase

import (
	"context"

	"sukhan/internal/domain/entity"
)

// GenreInput carries a genre creation request.
type GenreInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// GenreUsecase covers the static genre taxonomy.
type GenreUsecase interface {
	// ListGenres returns all genres ordered by name.
	ListGenres(ctx context.Context) ([]*entity.Genre, error)

	// GetGenreBySlug returns a genre by slug.
	GetGenreBySlug(ctx context.Context, slug string) (*entity.Genre, error)

	// CreateGenre adds a taxonomy entry. Admin only.
	CreateGenre(ctx context.Context, input GenreInput) (*entity.Genre, error)
}
