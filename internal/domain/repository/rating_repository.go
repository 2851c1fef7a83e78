package repository

import (
	"context"

	"sukhan/internal/domain/entity"
	"sukhan/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for rating persistence.
var (
	// ErrRatingNotFound is returned when a rating is not found.
	ErrRatingNotFound = errors.New("rating not found")
	// ErrDuplicateRating is returned when the (user, poem) pair already has
	// a rating row.
	ErrDuplicateRating = errors.New("rating already exists")
)

// RatingRepository defines the interface for rating fact operations.
type RatingRepository interface {
	// Create persists a new rating fact.
	Create(ctx context.Context, rating *entity.Rating) error

	// UpdateScore overwrites the score of an existing fact.
	UpdateScore(ctx context.Context, id uuid.UUID, score int) error

	// FindByUserAndPoem retrieves the rating fact for the pair, if present.
	FindByUserAndPoem(ctx context.Context, userID, poetryID uuid.UUID) (*entity.Rating, error)

	// ListByUser retrieves all rating facts created by the user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Rating, error)

	// DeleteByUserAndPoem removes the fact for the pair and reports whether
	// a row was actually deleted. Absence is not an error.
	DeleteByUserAndPoem(ctx context.Context, userID, poetryID uuid.UUID) (bool, error)

	// DeleteByPoem removes every rating fact referencing the poem.
	DeleteByPoem(ctx context.Context, poetryID uuid.UUID) error

	// DeleteByUser removes every rating fact created by the user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
