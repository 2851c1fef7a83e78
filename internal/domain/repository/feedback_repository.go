package repository

import (
	"context"

	"sukhan/internal/domain/entity"
	"sukhan/internal/errors"

	"github.com/google/uuid"
)

// ErrFeedbackNotFound is returned when a feedback entry is not found.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackListFilter narrows the admin feedback listing. Zero values
// mean no filtering on that field.
type FeedbackListFilter struct {
	Rating   int
	Resolved *bool
	Page     int
	Limit    int
}

// FeedbackRepository defines the interface for user feedback operations.
type FeedbackRepository interface {
	// Create persists a new feedback entry.
	Create(ctx context.Context, feedback *entity.Feedback) error

	// FindByID retrieves a feedback entry by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)

	// List retrieves feedback entries newest first, filtered and
	// paginated. The count reflects the filter, not the whole table.
	List(ctx context.Context, filter FeedbackListFilter) ([]*entity.Feedback, int64, error)

	// Update persists reply and resolution changes.
	Update(ctx context.Context, feedback *entity.Feedback) error

	// Delete removes a feedback entry.
	Delete(ctx context.Context, id uuid.UUID) error
}
