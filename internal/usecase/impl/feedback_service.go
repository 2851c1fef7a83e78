package impl

import (
	"context"

	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	"sukhan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type feedbackService struct {
	txManager    repository.TransactionManager
	feedbackRepo repository.FeedbackRepository
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FeedbackRepo repository.FeedbackRepository
}

// NewFeedbackService creates a new feedback service instance.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		txManager:    params.TxManager,
		feedbackRepo: params.FeedbackRepo,
	}
}

// SubmitFeedback records a feedback entry for the user.
func (s *feedbackService) SubmitFeedback(ctx context.Context, userID uuid.UUID, input usecase.FeedbackInput) (*entity.Feedback, error) {
	if input.Rating < entity.MinRatingScore || input.Rating > entity.MaxRatingScore {
		return nil, domainerrors.ErrInvalidRatingScore
	}

	feedback := &entity.Feedback{
		ID:      uuid.New(),
		UserID:  userID,
		Rating:  input.Rating,
		Message: input.Message,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

// ListFeedback returns feedback entries newest first, narrowed by the
// filter.
func (s *feedbackService) ListFeedback(ctx context.Context, filter repository.FeedbackListFilter) ([]*entity.Feedback, int64, error) {
	return s.feedbackRepo.List(ctx, filter)
}

// ReplyFeedback stores an admin reply and marks the entry resolved.
func (s *feedbackService) ReplyFeedback(ctx context.Context, feedbackID uuid.UUID, reply string) (*entity.Feedback, error) {
	var result *entity.Feedback

	err := s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		feedback, err := repos.FeedbackRepo().FindByID(ctx, feedbackID)
		if err != nil {
			if errors.Is(err, repository.ErrFeedbackNotFound) {
				return domainerrors.ErrFeedbackNotFound
			}

			return errors.Wrap(err, "failed to load feedback")
		}

		feedback.Reply = reply
		feedback.IsResolved = true

		if err := repos.FeedbackRepo().Update(ctx, feedback); err != nil {
			return errors.Wrap(err, "failed to store feedback reply")
		}

		result = feedback

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteFeedback removes an entry.
func (s *feedbackService) DeleteFeedback(ctx context.Context, feedbackID uuid.UUID) error {
	if err := s.feedbackRepo.Delete(ctx, feedbackID); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return domainerrors.ErrFeedbackNotFound
		}

		return errors.Wrap(err, "failed to delete feedback")
	}

	return nil
}
