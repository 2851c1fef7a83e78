package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sukhan/internal/domain/repository"
	mockRepo "sukhan/internal/mocks/repository"
	"sukhan/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// engagementMocks bundles the repository mocks behind one transaction
// factory so each test only states the expectations it cares about.
type engagementMocks struct {
	tx       *mockRepo.MockTransactionManager
	factory  *mockRepo.MockRepositoryFactory
	likeRepo *mockRepo.MockLikeRepository
	rateRepo *mockRepo.MockRatingRepository
	follRepo *mockRepo.MockFollowRepository
	saveRepo *mockRepo.MockSavedPoetryRepository
	poemRepo *mockRepo.MockPoemRepository
	poetRepo *mockRepo.MockPoetRepository
}

func newEngagementService(t *testing.T) (usecase.EngagementUsecase, *engagementMocks) {
	t.Helper()

	m := &engagementMocks{
		tx:       mockRepo.NewMockTransactionManager(t),
		factory:  mockRepo.NewMockRepositoryFactory(t),
		likeRepo: mockRepo.NewMockLikeRepository(t),
		rateRepo: mockRepo.NewMockRatingRepository(t),
		follRepo: mockRepo.NewMockFollowRepository(t),
		saveRepo: mockRepo.NewMockSavedPoetryRepository(t),
		poemRepo: mockRepo.NewMockPoemRepository(t),
		poetRepo: mockRepo.NewMockPoetRepository(t),
	}

	m.factory.EXPECT().LikeRepo().Return(m.likeRepo).Maybe()
	m.factory.EXPECT().RatingRepo().Return(m.rateRepo).Maybe()
	m.factory.EXPECT().FollowRepo().Return(m.follRepo).Maybe()
	m.factory.EXPECT().SavedPoetryRepo().Return(m.saveRepo).Maybe()
	m.factory.EXPECT().PoemRepo().Return(m.poemRepo).Maybe()
	m.factory.EXPECT().PoetRepo().Return(m.poetRepo).Maybe()

	m.tx.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, repository.RepositoryFactory) error) error {
			return fn(ctx, m.factory)
		}).
		Maybe()

	service := NewEngagementService(EngagementServiceParams{
		TxManager:  m.tx,
		LikeRepo:   m.likeRepo,
		RatingRepo: m.rateRepo,
		FollowRepo: m.follRepo,
		SavedRepo:  m.saveRepo,
		Logger:     newDiscardLogger(),
	})

	return service, m
}
