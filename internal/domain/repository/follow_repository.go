package repository

import (
	"context"

	"sukhan/internal/domain/entity"
	"sukhan/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for follow persistence.
var (
	// ErrFollowNotFound is returned when a follow is not found.
	ErrFollowNotFound = errors.New("follow not found")
	// ErrDuplicateFollow is returned when the (user, poet) pair already has
	// a follow.
	ErrDuplicateFollow = errors.New("follow already exists")
)

// FollowRepository defines the interface for follow fact operations.
type FollowRepository interface {
	// Create persists a new follow fact.
	Create(ctx context.Context, follow *entity.Follow) error

	// FindByUserAndPoet retrieves the follow fact for the pair, if present.
	FindByUserAndPoet(ctx context.Context, userID, poetID uuid.UUID) (*entity.Follow, error)

	// ListByUser retrieves all follow facts created by the user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Follow, error)

	// DeleteByUserAndPoet removes the fact for the pair and reports whether
	// a row was actually deleted. Absence is not an error.
	DeleteByUserAndPoet(ctx context.Context, userID, poetID uuid.UUID) (bool, error)

	// DeleteByPoet removes every follow fact referencing the poet.
	DeleteByPoet(ctx context.Context, poetID uuid.UUID) error

	// DeleteByUser removes every follow fact created by the user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
