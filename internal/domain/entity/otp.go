// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTP is a one-time verification code mailed to a user at signup. A code is
// valid until ExpiresAt and is consumed on successful verification.
type OTP struct {
	ID        uuid.UUID
	Email     string
	Code      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the code is past its validity window.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
