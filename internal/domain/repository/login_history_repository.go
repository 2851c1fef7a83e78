package repository

import (
	"context"

	"sukhan/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginHistoryRepository defines the interface for login audit records.
type LoginHistoryRepository interface {
	// Create persists a login record.
	Create(ctx context.Context, record *entity.LoginHistory) error

	// ListByUser retrieves login records for a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.LoginHistory, error)

	// DeleteByUser removes every record for the user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
