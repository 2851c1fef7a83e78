package impl

import (
	"context"
	"testing"

	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	mockRepo "sukhan/internal/mocks/repository"
	"sukhan/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type feedbackMocks struct {
	tx           *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	feedbackRepo *mockRepo.MockFeedbackRepository
}

func newFeedbackService(t *testing.T) (usecase.FeedbackUsecase, *feedbackMocks) {
	t.Helper()

	m := &feedbackMocks{
		tx:           mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		feedbackRepo: mockRepo.NewMockFeedbackRepository(t),
	}

	m.factory.EXPECT().FeedbackRepo().Return(m.feedbackRepo).Maybe()

	m.tx.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, repository.RepositoryFactory) error) error {
			return fn(ctx, m.factory)
		}).
		Maybe()

	service := NewFeedbackService(FeedbackServiceParams{
		TxManager:    m.tx,
		FeedbackRepo: m.feedbackRepo,
	})

	return service, m
}

func TestFeedbackService_SubmitFeedback_Success(t *testing.T) {
	service, m := newFeedbackService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.feedbackRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Feedback")).
		Return(nil)

	feedback, err := service.SubmitFeedback(ctx, userID, usecase.FeedbackInput{
		Rating:  4,
		Message: "more ghazals please",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, feedback.UserID)
	assert.Equal(t, 4, feedback.Rating)
	assert.False(t, feedback.IsResolved)
}

func TestFeedbackService_SubmitFeedback_InvalidRating(t *testing.T) {
	service, _ := newFeedbackService(t)

	for _, rating := range []int{0, -1, 6} {
		_, err := service.SubmitFeedback(context.Background(), uuid.New(), usecase.FeedbackInput{
			Rating:  rating,
			Message: "hello",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRatingScore)
	}
}

func TestFeedbackService_ListFeedback_PassesFilter(t *testing.T) {
	service, m := newFeedbackService(t)

	ctx := context.Background()
	resolved := false

	filter := repository.FeedbackListFilter{Rating: 2, Resolved: &resolved, Page: 1, Limit: 10}

	m.feedbackRepo.EXPECT().List(ctx, filter).
		Return([]*entity.Feedback{{Rating: 2, Message: "search is broken"}}, int64(1), nil)

	entries, total, err := service.ListFeedback(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
}

func TestFeedbackService_ReplyFeedback_MarksResolved(t *testing.T) {
	service, m := newFeedbackService(t)

	ctx := context.Background()
	feedbackID := uuid.New()

	m.feedbackRepo.EXPECT().FindByID(ctx, feedbackID).
		Return(&entity.Feedback{ID: feedbackID, Rating: 3, Message: "slow pages"}, nil)
	m.feedbackRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(feedback *entity.Feedback) bool {
			return feedback.IsResolved && feedback.Reply == "fixed in last deploy"
		})).
		Return(nil)

	feedback, err := service.ReplyFeedback(ctx, feedbackID, "fixed in last deploy")
	require.NoError(t, err)
	assert.True(t, feedback.IsResolved)
}

func TestFeedbackService_ReplyFeedback_Missing(t *testing.T) {
	service, m := newFeedbackService(t)

	ctx := context.Background()
	feedbackID := uuid.New()

	m.feedbackRepo.EXPECT().FindByID(ctx, feedbackID).
		Return(nil, repository.ErrFeedbackNotFound)

	_, err := service.ReplyFeedback(ctx, feedbackID, "anyone home?")
	assert.ErrorIs(t, err, domainerrors.ErrFeedbackNotFound)
}

func TestFeedbackService_DeleteFeedback_Missing(t *testing.T) {
	service, m := newFeedbackService(t)

	ctx := context.Background()
	feedbackID := uuid.New()

	m.feedbackRepo.EXPECT().Delete(ctx, feedbackID).
		Return(repository.ErrFeedbackNotFound)

	err := service.DeleteFeedback(ctx, feedbackID)
	assert.ErrorIs(t, err, domainerrors.ErrFeedbackNotFound)
}
