// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PoemStatus is the moderation state of a poem. A poem starts pending and
// moves to published or rejected through admin actions only.
type PoemStatus string

const (
	// PoemStatusPending indicates a submission awaiting review.
	PoemStatusPending PoemStatus = "pending"
	// PoemStatusPublished indicates an approved, publicly visible poem.
	PoemStatusPublished PoemStatus = "published"
	// PoemStatusRejected indicates a poem declined by a moderator.
	PoemStatusRejected PoemStatus = "rejected"
)

// String returns the string representation of the PoemStatus.
func (s PoemStatus) String() string {
	return string(s)
}

// IsValid checks if the PoemStatus is a valid value.
func (s PoemStatus) IsValid() bool {
	switch s {
	case PoemStatusPending, PoemStatusPublished, PoemStatusRejected:
		return true
	default:
		return false
	}
}

// Poem is a single piece of poetry, authored under one Poet by one User and
// tagged with exactly one Genre. Title and content carry both Urdu script
// and Roman transliteration. The three counters are denormalized from the
// Like and Rating facts and are only ever written by the persistence layer's
// atomic adjustments.
type Poem struct {
	ID            uuid.UUID  `json:"id"`
	PoetID        uuid.UUID  `json:"poet_id"`
	UserID        uuid.UUID  `json:"user_id"`
	GenreID       uuid.UUID  `json:"genre_id"`
	TitleUrdu     string     `json:"title_urdu,omitempty"`
	TitleRoman    string     `json:"title_roman,omitempty"`
	ContentUrdu   string     `json:"content_urdu,omitempty"`
	ContentRoman  string     `json:"content_roman,omitempty"`
	AudioURL      string     `json:"audio_url,omitempty"`
	Status        PoemStatus `json:"status"`
	LikesCount    int64      `json:"likes_count"`
	RatingsCount  int64      `json:"ratings_count"`
	AverageRating float64    `json:"average_rating"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsPublished reports whether the poem is publicly visible.
func (p *Poem) IsPublished() bool {
	return p.Status == PoemStatusPublished
}
