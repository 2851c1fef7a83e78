// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a user's message to the operators with a 1-5 rating. Admins
// may reply and mark it resolved. Feedback never touches content counters.
type Feedback struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Rating     int       `json:"rating"`
	Message    string    `json:"message"`
	Reply      string    `json:"reply,omitempty"`
	IsResolved bool      `json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
