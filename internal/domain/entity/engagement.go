// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like is the fact that a user liked a poem. At most one Like exists per
// (UserID, PoetryID) pair; its existence is counted in Poem.LikesCount.
type Like struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PoetryID  uuid.UUID `json:"poetry_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MinRatingScore and MaxRatingScore bound the accepted rating values.
const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is a user's 1-5 score for a poem. At most one Rating exists per
// (UserID, PoetryID) pair; the score is mutable, a second submission by the
// same user overwrites the first instead of adding a row.
type Rating struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PoetryID  uuid.UUID `json:"poetry_id"`
	Score     int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidScore reports whether the score is inside the accepted range.
func (r *Rating) ValidScore() bool {
	return r.Score >= MinRatingScore && r.Score <= MaxRatingScore
}

// Follow is the fact that a user follows a poet. At most one Follow exists
// per (UserID, PoetID) pair; its existence is counted in Poet.FollowersCount.
type Follow struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PoetID    uuid.UUID `json:"poet_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SavedPoetry is the fact that a user saved a poem to their collection.
// Unique per (UserID, PoetryID) pair. Saves have no denormalized counter;
// the analytics reader counts them with a join when needed.
type SavedPoetry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PoetryID  uuid.UUID `json:"poetry_id"`
	CreatedAt time.Time `json:"created_at"`
}
