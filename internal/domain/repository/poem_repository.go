package repository

import (
	"context"

	"sukhan/internal/domain/entity"
	"sukhan/internal/errors"

	"github.com/google/uuid"
)

// ErrPoemNotFound is returned when a poem is not found.
var ErrPoemNotFound = errors.New("poem not found")

// PoemSort selects the ordering of poem listings.
type PoemSort string

const (
	// PoemSortRecent orders by creation time, newest first.
	PoemSortRecent PoemSort = "recent"
	// PoemSortPopular orders by likes count, then creation time.
	PoemSortPopular PoemSort = "popular"
	// PoemSortRated orders by average rating, ratings count, creation time.
	PoemSortRated PoemSort = "rated"
)

// PoemListFilter narrows the public poem listing.
type PoemListFilter struct {
	PoetID    *uuid.UUID
	GenreID   *uuid.UUID
	GenreSlug string // Resolved to GenreID by the usecase before querying.
	Sort      PoemSort
	Limit     int
}

// PoemRepository defines the interface for poem-related database operations.
type PoemRepository interface {
	// Create persists a new poem.
	Create(ctx context.Context, poem *entity.Poem) error

	// FindByID retrieves a poem by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Poem, error)

	// ListPublished retrieves published poems matching the filter.
	ListPublished(ctx context.Context, filter PoemListFilter) ([]*entity.Poem, error)

	// ListAll retrieves every poem for the admin back office, pending first.
	ListAll(ctx context.Context) ([]*entity.Poem, error)

	// ListByPoet retrieves the poem IDs authored under a poet.
	ListByPoet(ctx context.Context, poetID uuid.UUID) ([]uuid.UUID, error)

	// Exists reports whether the poem row is present.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// SetStatus updates the moderation status.
	SetStatus(ctx context.Context, id uuid.UUID, status entity.PoemStatus) error

	// AdjustLikesCount applies an atomic storage-level increment to
	// likes_count. A missing poem row is not an error; the adjustment is
	// skipped so that unliking a deleted poem still succeeds.
	AdjustLikesCount(ctx context.Context, id uuid.UUID, delta int64) error

	// AdjustRatingsCount applies an atomic storage-level increment to
	// ratings_count, with the same missing-row semantics.
	AdjustRatingsCount(ctx context.Context, id uuid.UUID, delta int64) error

	// RecomputeAverageRating overwrites average_rating with the arithmetic
	// mean of all live Rating facts for the poem, or 0 when none exist. The
	// recompute is a single statement so the stored value always reflects
	// some consistent snapshot of the facts.
	RecomputeAverageRating(ctx context.Context, id uuid.UUID) error

	// ReconcileCounters overwrites likes_count, ratings_count and
	// average_rating for every poem from the live facts. Maintenance only.
	ReconcileCounters(ctx context.Context) error

	// Delete removes a poem.
	Delete(ctx context.Context, id uuid.UUID) error
}
