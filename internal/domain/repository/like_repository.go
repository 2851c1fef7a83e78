package repository

import (
	"context"

	"sukhan/internal/domain/entity"
	"sukhan/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for like persistence.
var (
	// ErrLikeNotFound is returned when a like is not found.
	ErrLikeNotFound = errors.New("like not found")
	// ErrDuplicateLike is returned when the (user, poem) pair already has a
	// like. The unique index on the pair is the serialization point; the
	// usecase translates this into the idempotent already-exists outcome.
	ErrDuplicateLike = errors.New("like already exists")
)

// LikeRepository defines the interface for like fact operations.
type LikeRepository interface {
	// Create persists a new like fact.
	Create(ctx context.Context, like *entity.Like) error

	// FindByUserAndPoem retrieves the like fact for the pair, if present.
	FindByUserAndPoem(ctx context.Context, userID, poetryID uuid.UUID) (*entity.Like, error)

	// ListByUser retrieves all like facts created by the user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Like, error)

	// DeleteByUserAndPoem removes the fact for the pair and reports whether
	// a row was actually deleted. Absence is not an error.
	DeleteByUserAndPoem(ctx context.Context, userID, poetryID uuid.UUID) (bool, error)

	// DeleteByPoem removes every like fact referencing the poem.
	DeleteByPoem(ctx context.Context, poetryID uuid.UUID) error

	// DeleteByUser removes every like fact created by the user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
