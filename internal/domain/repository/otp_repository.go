package repository

import (
	"context"
	"time"

	"sukhan/internal/domain/entity"
	"sukhan/internal/errors"
)

// ErrOTPNotFound is returned when no matching, unexpired code exists.
var ErrOTPNotFound = errors.New("otp not found")

// OTPRepository defines the interface for one-time verification codes.
type OTPRepository interface {
	// Create persists a new code, replacing any previous code for the email.
	Create(ctx context.Context, otp *entity.OTP) error

	// FindValid retrieves the code for the email if it matches and has not
	// expired as of now.
	FindValid(ctx context.Context, email, code string, now time.Time) (*entity.OTP, error)

	// DeleteByEmail removes all codes issued to the email.
	DeleteByEmail(ctx context.Context, email string) error
}
