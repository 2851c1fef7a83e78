package repository

import (
	"context"

	"sukhan/internal/domain/entity"
	"sukhan/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for poet persistence.
var (
	// ErrPoetNotFound is returned when a poet is not found.
	ErrPoetNotFound = errors.New("poet not found")
	// ErrDuplicatePoet is returned when the user already owns a poet profile
	// or the slug is taken.
	ErrDuplicatePoet = errors.New("poet already exists")
)

// PoetSort selects the ordering of poet listings.
type PoetSort string

const (
	// PoetSortRecent orders by creation time, newest first.
	PoetSortRecent PoetSort = "recent"
	// PoetSortPopular orders by follower count, then creation time.
	PoetSortPopular PoetSort = "popular"
)

// PoetRepository defines the interface for poet-related database operations.
type PoetRepository interface {
	// Create persists a new poet profile.
	Create(ctx context.Context, poet *entity.Poet) error

	// FindByID retrieves a poet by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Poet, error)

	// FindByUser retrieves the poet profile owned by the user, if any.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Poet, error)

	// FindBySlug retrieves a poet by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Poet, error)

	// ListPublished retrieves published poets with the given sort and limit.
	ListPublished(ctx context.Context, sort PoetSort, limit int) ([]*entity.Poet, error)

	// ListAll retrieves every poet for the admin back office, pending first.
	ListAll(ctx context.Context) ([]*entity.Poet, error)

	// Update persists profile field changes (never counters).
	Update(ctx context.Context, poet *entity.Poet) error

	// SlugExists reports whether a slug is already taken.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// Exists reports whether the poet row is present.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// SetPublished updates the publish flag.
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error

	// AdjustFollowersCount applies an atomic storage-level increment to
	// followers_count. A missing poet row is not an error; the adjustment is
	// skipped so that unfollowing a deleted poet still succeeds.
	AdjustFollowersCount(ctx context.Context, id uuid.UUID, delta int64) error

	// ReconcileFollowerCounts overwrites every poet's followers_count with
	// the live count of Follow facts. Maintenance only, never automatic.
	ReconcileFollowerCounts(ctx context.Context) error

	// Delete removes a poet profile.
	Delete(ctx context.Context, id uuid.UUID) error
}
