package usecase

import (
	"context"

	"sukhan/internal/domain/entity"
	"sukhan/internal/domain/repository"

	"github.com/google/uuid"
)

// RegisterInput carries a signup request.
type RegisterInput struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	FullName      string `json:"fullName" validate:"required"`
	Username      string `json:"username"`
	FavoriteShair string `json:"favoriteShair"`
}

// LoginInput carries a login request. IP and user agent feed the login
// history audit trail.
type LoginInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// AuthResult is the outcome of a successful login.
type AuthResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// UserUsecase covers account lifecycle and the admin user surface.
type UserUsecase interface {
	// Register creates an unverified account and mails a one-time code.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// VerifyOTP confirms the code and marks the account verified.
	VerifyOTP(ctx context.Context, email, code string) error

	// ResendOTP issues a fresh code to an unverified account.
	ResendOTP(ctx context.Context, email string) error

	// Login authenticates, records login history and returns a token.
	// Blocked and unverified accounts are refused.
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)

	// GetProfile returns the user's account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// ListUsers returns the admin user listing with the total count.
	ListUsers(ctx context.Context, filter repository.UserListFilter) ([]*entity.User, int64, error)

	// SetBlocked toggles the blocked flag on an account. Admin only.
	SetBlocked(ctx context.Context, actor Actor, userID uuid.UUID, blocked bool) error

	// DeleteUser removes an account together with its engagement facts,
	// then repairs the affected counters in the same transaction. Admin
	// only; admin accounts themselves cannot be deleted.
	DeleteUser(ctx context.Context, actor Actor, userID uuid.UUID) error
}
