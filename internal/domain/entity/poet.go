// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Poet is a public profile owned by exactly one User. The slug is derived
// from NameRoman and is unique across all poets. FollowersCount is a
// denormalized counter kept in lockstep with the Follow facts.
type Poet struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	NameRoman      string     `json:"name_roman"`
	NameUrdu       string     `json:"name_urdu,omitempty"`
	Takhallus      string     `json:"takhallus,omitempty"` // Pen name.
	Slug           string     `json:"slug"`
	Bio            string     `json:"bio,omitempty"`
	ImageURL       string     `json:"image_url,omitempty"`
	City           string     `json:"city,omitempty"`
	Country        string     `json:"country,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	IsPublished    bool       `json:"is_published"` // Admin-toggled visibility.
	FollowersCount int64      `json:"followers_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
