// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"sukhan/internal/domain/entity"
	"sukhan/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserListFilter narrows the admin user listing.
type UserListFilter struct {
	Search string // Matches email, full name or username, case-insensitive.
	Role   string // "all", "admin", "poet" or "user".
	Page   int
	Limit  int
}

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user account.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by its lowercased email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves users matching the filter together with the total count.
	List(ctx context.Context, filter UserListFilter) ([]*entity.User, int64, error)

	// SetVerified marks the account as email-verified.
	SetVerified(ctx context.Context, id uuid.UUID) error

	// SetBlocked updates the blocked flag.
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error

	// Delete removes a user account.
	Delete(ctx context.Context, id uuid.UUID) error
}
