package usecase

import (
	"context"

	"sukhan/internal/domain/entity"

	"github.com/google/uuid"
)

// RatingResult reports the outcome of a rating submission together with
// the poem's recomputed aggregate.
type RatingResult struct {
	Outcome       Outcome `json:"outcome"`
	Score         int     `json:"rating"`
	AverageRating float64 `json:"averageRating"`
	RatingsCount  int64   `json:"ratingsCount"`
}

// UserEngagement is the full engagement state of one user, used by the
// client to render like/save/follow toggles without a query per item.
type UserEngagement struct {
	LikedPoemIDs    []uuid.UUID      `json:"likedPoemIds"`
	SavedPoemIDs    []uuid.UUID      `json:"savedPoemIds"`
	FollowedPoetIDs []uuid.UUID      `json:"followedPoetIds"`
	Ratings         []*entity.Rating `json:"ratings"`
}

// EngagementUsecase is the write surface for the engagement ledger. Every
// operation is idempotent: creating a fact that already exists and
// removing a fact that is absent both succeed, with the Outcome telling
// the caller which case occurred. Fact mutations and their counter
// effects commit atomically.
type EngagementUsecase interface {
	// LikePoem records that the user liked the poem and bumps the poem's
	// likes counter on first application.
	LikePoem(ctx context.Context, userID, poetryID uuid.UUID) (Outcome, error)

	// UnlikePoem removes the like fact if present and decrements the
	// counter. Absence of the fact is a silent no-op.
	UnlikePoem(ctx context.Context, userID, poetryID uuid.UUID) (Outcome, error)

	// RatePoem records or overwrites the user's score for the poem. The
	// ratings counter moves only on first-time creation; the average is
	// fully recomputed from the facts either way.
	RatePoem(ctx context.Context, userID, poetryID uuid.UUID, score int) (*RatingResult, error)

	// RemoveRating deletes the user's rating fact if present, decrements
	// the counter and recomputes the average.
	RemoveRating(ctx context.Context, userID, poetryID uuid.UUID) (Outcome, error)

	// FollowPoet records that the user follows the poet and bumps the
	// poet's followers counter on first application.
	FollowPoet(ctx context.Context, userID, poetID uuid.UUID) (Outcome, error)

	// UnfollowPoet removes the follow fact if present and decrements the
	// counter.
	UnfollowPoet(ctx context.Context, userID, poetID uuid.UUID) (Outcome, error)

	// SavePoem records that the user saved the poem. Saves carry no
	// denormalized counter.
	SavePoem(ctx context.Context, userID, poetryID uuid.UUID) (Outcome, error)

	// UnsavePoem removes the saved fact if present.
	UnsavePoem(ctx context.Context, userID, poetryID uuid.UUID) (Outcome, error)

	// CheckLike reports whether the like fact exists. Read-only; the
	// target poem is not checked.
	CheckLike(ctx context.Context, userID, poetryID uuid.UUID) (bool, error)

	// CheckRating reports the user's score for the poem and whether a
	// rating fact exists.
	CheckRating(ctx context.Context, userID, poetryID uuid.UUID) (int, bool, error)

	// CheckFollow reports whether the follow fact exists.
	CheckFollow(ctx context.Context, userID, poetID uuid.UUID) (bool, error)

	// CheckSaved reports whether the saved fact exists.
	CheckSaved(ctx context.Context, userID, poetryID uuid.UUID) (bool, error)

	// GetUserEngagement returns the user's complete engagement state.
	GetUserEngagement(ctx context.Context, userID uuid.UUID) (*UserEngagement, error)

	// ReconcileCounters recomputes every denormalized counter from the
	// live facts. Maintenance operation, admin only.
	ReconcileCounters(ctx context.Context) error
}
