package usecase

import (
	"context"

	"sukhan/internal/domain/entity"
	"sukhan/internal/domain/repository"

	"github.com/google/uuid"
)

// FeedbackInput carries a user feedback submission.
type FeedbackInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Message string `json:"message" validate:"required"`
}

// FeedbackUsecase covers user feedback and the admin reply surface.
type FeedbackUsecase interface {
	// SubmitFeedback records a feedback entry for the user.
	SubmitFeedback(ctx context.Context, userID uuid.UUID, input FeedbackInput) (*entity.Feedback, error)

	// ListFeedback returns feedback entries newest first, narrowed by
	// the filter. Admin only.
	ListFeedback(ctx context.Context, filter repository.FeedbackListFilter) ([]*entity.Feedback, int64, error)

	// ReplyFeedback stores an admin reply and marks the entry resolved.
	ReplyFeedback(ctx context.Context, feedbackID uuid.UUID, reply string) (*entity.Feedback, error)

	// DeleteFeedback removes an entry. Admin only.
	DeleteFeedback(ctx context.Context, feedbackID uuid.UUID) error
}
