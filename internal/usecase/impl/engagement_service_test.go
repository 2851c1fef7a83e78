package impl

import (
	"context"
	"testing"

	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	"sukhan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEngagementService_LikePoem_FirstTime(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	m.poemRepo.EXPECT().Exists(ctx, poetryID).Return(true, nil)
	m.likeRepo.EXPECT().
		FindByUserAndPoem(ctx, userID, poetryID).
		Return(nil, repository.ErrLikeNotFound)
	m.likeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Like")).
		Return(nil)
	m.poemRepo.EXPECT().AdjustLikesCount(ctx, poetryID, int64(1)).Return(nil)

	outcome, err := service.LikePoem(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeApplied, outcome)
}

func TestEngagementService_LikePoem_AlreadyLiked(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	m.poemRepo.EXPECT().Exists(ctx, poetryID).Return(true, nil)
	m.likeRepo.EXPECT().
		FindByUserAndPoem(ctx, userID, poetryID).
		Return(&entity.Like{ID: uuid.New(), UserID: userID, PoetryID: poetryID}, nil)

	// No Create and no counter adjustment; the repeat is a clean success.
	outcome, err := service.LikePoem(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeAlreadyExisted, outcome)
}

func TestEngagementService_LikePoem_DuplicateRace(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	m.poemRepo.EXPECT().Exists(ctx, poetryID).Return(true, nil)
	m.likeRepo.EXPECT().
		FindByUserAndPoem(ctx, userID, poetryID).
		Return(nil, repository.ErrLikeNotFound)
	m.likeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Like")).
		Return(repository.ErrDuplicateLike)

	// The unique index caught a concurrent like; the counter must not move.
	outcome, err := service.LikePoem(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeAlreadyExisted, outcome)
}

func TestEngagementService_LikePoem_PoemMissing(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()

	m.poemRepo.EXPECT().Exists(ctx, mock.Anything).Return(false, nil)

	_, err := service.LikePoem(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrPoetryNotFound)
}

func TestEngagementService_UnlikePoem_Applied(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	m.likeRepo.EXPECT().DeleteByUserAndPoem(ctx, userID, poetryID).Return(true, nil)
	m.poemRepo.EXPECT().AdjustLikesCount(ctx, poetryID, int64(-1)).Return(nil)

	outcome, err := service.UnlikePoem(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeApplied, outcome)
}

func TestEngagementService_UnlikePoem_AbsentFactIsNoop(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	m.likeRepo.EXPECT().DeleteByUserAndPoem(ctx, userID, poetryID).Return(false, nil)

	// No fact deleted means no counter decrement, and no error either.
	outcome, err := service.UnlikePoem(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeNoop, outcome)
}

func TestEngagementService_RatePoem_FirstRatingMovesCounter(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	m.poemRepo.EXPECT().Exists(ctx, poetryID).Return(true, nil)
	m.rateRepo.EXPECT().
		FindByUserAndPoem(ctx, userID, poetryID).
		Return(nil, repository.ErrRatingNotFound)
	m.rateRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Rating")).
		Return(nil)
	m.poemRepo.EXPECT().AdjustRatingsCount(ctx, poetryID, int64(1)).Return(nil)
	m.poemRepo.EXPECT().RecomputeAverageRating(ctx, poetryID).Return(nil)
	m.poemRepo.EXPECT().
		FindByID(ctx, poetryID).
		Return(&entity.Poem{ID: poetryID, AverageRating: 4.0, RatingsCount: 1}, nil)

	result, err := service.RatePoem(ctx, userID, poetryID, 4)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeApplied, result.Outcome)
	assert.Equal(t, 4, result.Score)
	assert.Equal(t, 4.0, result.AverageRating)
	assert.Equal(t, int64(1), result.RatingsCount)
}

func TestEngagementService_RatePoem_OverwriteKeepsCounter(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()
	ratingID := uuid.New()

	m.poemRepo.EXPECT().Exists(ctx, poetryID).Return(true, nil)
	m.rateRepo.EXPECT().
		FindByUserAndPoem(ctx, userID, poetryID).
		Return(&entity.Rating{ID: ratingID, UserID: userID, PoetryID: poetryID, Score: 2}, nil)
	m.rateRepo.EXPECT().UpdateScore(ctx, ratingID, 5).Return(nil)
	m.poemRepo.EXPECT().RecomputeAverageRating(ctx, poetryID).Return(nil)
	m.poemRepo.EXPECT().
		FindByID(ctx, poetryID).
		Return(&entity.Poem{ID: poetryID, AverageRating: 3.5, RatingsCount: 2}, nil)

	// AdjustRatingsCount must not be called on a re-rating.
	result, err := service.RatePoem(ctx, userID, poetryID, 5)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeAlreadyExisted, result.Outcome)
	assert.Equal(t, int64(2), result.RatingsCount)
}

func TestEngagementService_RatePoem_SameScoreStillRecomputes(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	m.poemRepo.EXPECT().Exists(ctx, poetryID).Return(true, nil)
	m.rateRepo.EXPECT().
		FindByUserAndPoem(ctx, userID, poetryID).
		Return(&entity.Rating{ID: uuid.New(), Score: 3}, nil)
	m.poemRepo.EXPECT().RecomputeAverageRating(ctx, poetryID).Return(nil)
	m.poemRepo.EXPECT().
		FindByID(ctx, poetryID).
		Return(&entity.Poem{ID: poetryID, AverageRating: 3.0, RatingsCount: 1}, nil)

	result, err := service.RatePoem(ctx, userID, poetryID, 3)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeAlreadyExisted, result.Outcome)
}

func TestEngagementService_RatePoem_DuplicateRaceFallsBackToOverwrite(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()
	racedID := uuid.New()

	m.poemRepo.EXPECT().Exists(ctx, poetryID).Return(true, nil)
	m.rateRepo.EXPECT().
		FindByUserAndPoem(ctx, userID, poetryID).
		Return(nil, repository.ErrRatingNotFound).Once()
	m.rateRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Rating")).
		Return(repository.ErrDuplicateRating)
	m.rateRepo.EXPECT().
		FindByUserAndPoem(ctx, userID, poetryID).
		Return(&entity.Rating{ID: racedID, Score: 1}, nil).Once()
	m.rateRepo.EXPECT().UpdateScore(ctx, racedID, 4).Return(nil)
	m.poemRepo.EXPECT().RecomputeAverageRating(ctx, poetryID).Return(nil)
	m.poemRepo.EXPECT().
		FindByID(ctx, poetryID).
		Return(&entity.Poem{ID: poetryID, AverageRating: 4.0, RatingsCount: 1}, nil)

	result, err := service.RatePoem(ctx, userID, poetryID, 4)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeAlreadyExisted, result.Outcome)
}

func TestEngagementService_RatePoem_InvalidScore(t *testing.T) {
	service, _ := newEngagementService(t)

	ctx := context.Background()

	for _, score := range []int{0, -1, 6} {
		result, err := service.RatePoem(ctx, uuid.New(), uuid.New(), score)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRatingScore)
		assert.Nil(t, result)
	}
}

func TestEngagementService_RemoveRating_Applied(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	m.rateRepo.EXPECT().DeleteByUserAndPoem(ctx, userID, poetryID).Return(true, nil)
	m.poemRepo.EXPECT().AdjustRatingsCount(ctx, poetryID, int64(-1)).Return(nil)
	m.poemRepo.EXPECT().RecomputeAverageRating(ctx, poetryID).Return(nil)

	outcome, err := service.RemoveRating(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeApplied, outcome)
}

func TestEngagementService_RemoveRating_Noop(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	m.rateRepo.EXPECT().DeleteByUserAndPoem(ctx, userID, poetryID).Return(false, nil)

	outcome, err := service.RemoveRating(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeNoop, outcome)
}

func TestEngagementService_FollowPoet_FirstTime(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetID := uuid.New()

	m.poetRepo.EXPECT().Exists(ctx, poetID).Return(true, nil)
	m.follRepo.EXPECT().
		FindByUserAndPoet(ctx, userID, poetID).
		Return(nil, repository.ErrFollowNotFound)
	m.follRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Follow")).
		Return(nil)
	m.poetRepo.EXPECT().AdjustFollowersCount(ctx, poetID, int64(1)).Return(nil)

	outcome, err := service.FollowPoet(ctx, userID, poetID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeApplied, outcome)
}

func TestEngagementService_FollowPoet_PoetMissing(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()

	m.poetRepo.EXPECT().Exists(ctx, mock.Anything).Return(false, nil)

	_, err := service.FollowPoet(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrPoetNotFound)
}

func TestEngagementService_UnfollowPoet_Noop(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetID := uuid.New()

	m.follRepo.EXPECT().DeleteByUserAndPoet(ctx, userID, poetID).Return(false, nil)

	outcome, err := service.UnfollowPoet(ctx, userID, poetID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeNoop, outcome)
}

func TestEngagementService_SavePoem_NoCounterInvolved(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	m.poemRepo.EXPECT().Exists(ctx, poetryID).Return(true, nil)
	m.saveRepo.EXPECT().
		FindByUserAndPoem(ctx, userID, poetryID).
		Return(nil, repository.ErrSavedPoetryNotFound)
	m.saveRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SavedPoetry")).
		Return(nil)

	// Saves have no denormalized counter, so no Adjust expectation exists.
	outcome, err := service.SavePoem(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeApplied, outcome)
}

func TestEngagementService_UnsavePoem_Noop(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	m.saveRepo.EXPECT().DeleteByUserAndPoem(ctx, userID, poetryID).Return(false, nil)

	outcome, err := service.UnsavePoem(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeNoop, outcome)
}

func TestEngagementService_GetUserEngagement(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	likedID := uuid.New()
	savedID := uuid.New()
	poetID := uuid.New()

	m.likeRepo.EXPECT().ListByUser(ctx, userID).
		Return([]*entity.Like{{PoetryID: likedID}}, nil)
	m.saveRepo.EXPECT().ListByUser(ctx, userID).
		Return([]*entity.SavedPoetry{{PoetryID: savedID}}, nil)
	m.follRepo.EXPECT().ListByUser(ctx, userID).
		Return([]*entity.Follow{{PoetID: poetID}}, nil)
	m.rateRepo.EXPECT().ListByUser(ctx, userID).
		Return([]*entity.Rating{{PoetryID: likedID, Score: 5}}, nil)

	engagement, err := service.GetUserEngagement(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{likedID}, engagement.LikedPoemIDs)
	assert.Equal(t, []uuid.UUID{savedID}, engagement.SavedPoemIDs)
	assert.Equal(t, []uuid.UUID{poetID}, engagement.FollowedPoetIDs)
	assert.Len(t, engagement.Ratings, 1)
}

func TestEngagementService_ReconcileCounters(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()

	m.poemRepo.EXPECT().ReconcileCounters(ctx).Return(nil)
	m.poetRepo.EXPECT().ReconcileFollowerCounts(ctx).Return(nil)

	require.NoError(t, service.ReconcileCounters(ctx))
}

func TestEngagementService_LikePoem_TransactionErrorPropagates(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()

	m.poemRepo.EXPECT().Exists(ctx, mock.Anything).Return(false, errors.New("db down"))

	_, err := service.LikePoem(ctx, uuid.New(), uuid.New())
	assert.Error(t, err)
}

func TestEngagementService_CheckLike(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	// No target existence check on reads; only the fact is consulted.
	m.likeRepo.EXPECT().FindByUserAndPoem(ctx, userID, poetryID).
		Return(&entity.Like{UserID: userID, PoetryID: poetryID}, nil).Once()

	exists, err := service.CheckLike(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.True(t, exists)

	m.likeRepo.EXPECT().FindByUserAndPoem(ctx, userID, poetryID).
		Return(nil, repository.ErrLikeNotFound).Once()

	exists, err = service.CheckLike(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEngagementService_CheckRating_ReturnsScore(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	m.rateRepo.EXPECT().FindByUserAndPoem(ctx, userID, poetryID).
		Return(&entity.Rating{UserID: userID, PoetryID: poetryID, Score: 4}, nil).Once()

	score, exists, err := service.CheckRating(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 4, score)

	m.rateRepo.EXPECT().FindByUserAndPoem(ctx, userID, poetryID).
		Return(nil, repository.ErrRatingNotFound).Once()

	score, exists, err = service.CheckRating(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Zero(t, score)
}

func TestEngagementService_CheckFollow_Absent(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetID := uuid.New()

	m.follRepo.EXPECT().FindByUserAndPoet(ctx, userID, poetID).
		Return(nil, repository.ErrFollowNotFound)

	exists, err := service.CheckFollow(ctx, userID, poetID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEngagementService_CheckSaved(t *testing.T) {
	service, m := newEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetryID := uuid.New()

	m.saveRepo.EXPECT().FindByUserAndPoem(ctx, userID, poetryID).
		Return(&entity.SavedPoetry{UserID: userID, PoetryID: poetryID}, nil)

	exists, err := service.CheckSaved(ctx, userID, poetryID)
	require.NoError(t, err)
	assert.True(t, exists)
}
