package repository

import (
	"context"

	"sukhan/internal/domain/entity"
	"sukhan/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for saved-poetry persistence.
var (
	// ErrSavedPoetryNotFound is returned when a saved entry is not found.
	ErrSavedPoetryNotFound = errors.New("saved poetry not found")
	// ErrDuplicateSavedPoetry is returned when the (user, poem) pair is
	// already saved.
	ErrDuplicateSavedPoetry = errors.New("saved poetry already exists")
)

// SavedPoetryRepository defines the interface for saved-poetry facts.
// Saves carry no denormalized counter; the analytics reader counts them
// with CountByPoem joins on demand.
type SavedPoetryRepository interface {
	// Create persists a new saved-poetry fact.
	Create(ctx context.Context, saved *entity.SavedPoetry) error

	// FindByUserAndPoem retrieves the fact for the pair, if present.
	FindByUserAndPoem(ctx context.Context, userID, poetryID uuid.UUID) (*entity.SavedPoetry, error)

	// ListByUser retrieves all saved facts created by the user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedPoetry, error)

	// DeleteByUserAndPoem removes the fact for the pair and reports whether
	// a row was actually deleted. Absence is not an error.
	DeleteByUserAndPoem(ctx context.Context, userID, poetryID uuid.UUID) (bool, error)

	// DeleteByPoem removes every saved fact referencing the poem.
	DeleteByPoem(ctx context.Context, poetryID uuid.UUID) error

	// DeleteByUser removes every saved fact created by the user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
