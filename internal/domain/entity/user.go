// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. A user may additionally own a
// Poet profile (at most one) and is the author of every engagement fact.
type User struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email         string    // Login identifier, stored lowercased and unique.
	PasswordHash  string    // Opaque salted hash; the domain never sees plaintext.
	FullName      string    // The user's display name.
	Username      string    // Optional short handle.
	FavoriteShair string    // Free-text favorite poet, collected at onboarding.
	IsAdmin       bool      // Grants access to the moderation and analytics surface.
	IsVerified    bool      // Set after the one-time code is confirmed.
	IsBlocked     bool      // Blocked users cannot log in; toggled by admins.
	CreatedAt     time.Time // Timestamp of when this account was created.
	UpdatedAt     time.Time // Timestamp of the last modification.
}
