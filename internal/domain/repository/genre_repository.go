package repository

import (
	"context"

	"sukhan/internal/domain/entity"
	"sukhan/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for genre persistence.
var (
	// ErrGenreNotFound is returned when a genre is not found.
	ErrGenreNotFound = errors.New("genre not found")
	// ErrDuplicateGenre is returned when the genre slug is already taken.
	ErrDuplicateGenre = errors.New("genre already exists")
)

// GenreRepository defines the interface for genre taxonomy operations.
type GenreRepository interface {
	// Create persists a new genre.
	Create(ctx context.Context, genre *entity.Genre) error

	// FindByID retrieves a genre by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error)

	// FindBySlug retrieves a genre by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Genre, error)

	// List retrieves all genres ordered by name.
	List(ctx context.Context) ([]*entity.Genre, error)

	// Exists reports whether the genre row is present.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
