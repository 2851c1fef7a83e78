package impl

import (
	"context"
	"testing"

	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	mockRepo "sukhan/internal/mocks/repository"
	mockUC "sukhan/internal/mocks/usecase"
	"sukhan/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminActor is the moderator identity used by admin-only operations.
var adminActor = usecase.Actor{ID: uuid.New(), IsAdmin: true}

type poemMocks struct {
	tx        *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	poemRepo  *mockRepo.MockPoemRepository
	poetRepo  *mockRepo.MockPoetRepository
	genreRepo *mockRepo.MockGenreRepository
	likeRepo  *mockRepo.MockLikeRepository
	rateRepo  *mockRepo.MockRatingRepository
	saveRepo  *mockRepo.MockSavedPoetryRepository
	settings  *mockUC.MockSettingsUsecase
}

func newPoemService(t *testing.T) (usecase.PoemUsecase, *poemMocks) {
	t.Helper()

	m := &poemMocks{
		tx:        mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		poemRepo:  mockRepo.NewMockPoemRepository(t),
		poetRepo:  mockRepo.NewMockPoetRepository(t),
		genreRepo: mockRepo.NewMockGenreRepository(t),
		likeRepo:  mockRepo.NewMockLikeRepository(t),
		rateRepo:  mockRepo.NewMockRatingRepository(t),
		saveRepo:  mockRepo.NewMockSavedPoetryRepository(t),
		settings:  mockUC.NewMockSettingsUsecase(t),
	}

	m.factory.EXPECT().PoemRepo().Return(m.poemRepo).Maybe()
	m.factory.EXPECT().PoetRepo().Return(m.poetRepo).Maybe()
	m.factory.EXPECT().LikeRepo().Return(m.likeRepo).Maybe()
	m.factory.EXPECT().RatingRepo().Return(m.rateRepo).Maybe()
	m.factory.EXPECT().SavedPoetryRepo().Return(m.saveRepo).Maybe()

	m.tx.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, repository.RepositoryFactory) error) error {
			return fn(ctx, m.factory)
		}).
		Maybe()

	service := NewPoemService(PoemServiceParams{
		TxManager: m.tx,
		PoemRepo:  m.poemRepo,
		PoetRepo:  m.poetRepo,
		GenreRepo: m.genreRepo,
		Settings:  m.settings,
		Logger:    newDiscardLogger(),
	})

	return service, m
}

func TestPoemService_SubmitPoem_DefaultsToPending(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetID := uuid.New()
	genreID := uuid.New()

	m.poetRepo.EXPECT().FindByUser(ctx, userID).
		Return(&entity.Poet{ID: poetID, UserID: userID}, nil)
	m.genreRepo.EXPECT().Exists(ctx, genreID).Return(true, nil)
	m.settings.EXPECT().ModerationSnapshot(ctx).
		Return(entity.DefaultModerationSettings(), nil)
	m.poemRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Poem")).Return(nil)

	poem, err := service.SubmitPoem(ctx, userID, usecase.PoemInput{
		GenreID:      genreID,
		TitleRoman:   "Dil-e-Nadaan",
		ContentRoman: "dil-e-nadaan tujhe hua kya hai",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PoemStatusPending, poem.Status)
	assert.Equal(t, poetID, poem.PoetID)
}

func TestPoemService_SubmitPoem_AutoApprovePublishesImmediately(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()
	userID := uuid.New()
	genreID := uuid.New()

	snapshot := entity.DefaultModerationSettings()
	snapshot.AutoApprovePoetry = true

	m.poetRepo.EXPECT().FindByUser(ctx, userID).
		Return(&entity.Poet{ID: uuid.New(), UserID: userID}, nil)
	m.genreRepo.EXPECT().Exists(ctx, genreID).Return(true, nil)
	m.settings.EXPECT().ModerationSnapshot(ctx).Return(snapshot, nil)
	m.poemRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Poem")).Return(nil)

	poem, err := service.SubmitPoem(ctx, userID, usecase.PoemInput{
		GenreID:      genreID,
		TitleRoman:   "Hazaron Khwahishen",
		ContentRoman: "hazaron khwahishen aisi",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PoemStatusPublished, poem.Status)
}

func TestPoemService_SubmitPoem_RequiresPoetProfile(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.settings.EXPECT().ModerationSnapshot(ctx).
		Return(entity.DefaultModerationSettings(), nil)
	m.poetRepo.EXPECT().FindByUser(ctx, userID).
		Return(nil, repository.ErrPoetNotFound)

	_, err := service.SubmitPoem(ctx, userID, usecase.PoemInput{GenreID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPoemService_SubmitPoem_RefusedDuringMaintenance(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()

	snapshot := entity.DefaultModerationSettings()
	snapshot.MaintenanceMode = true

	m.settings.EXPECT().ModerationSnapshot(ctx).Return(snapshot, nil)

	_, err := service.SubmitPoem(ctx, uuid.New(), usecase.PoemInput{GenreID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrMaintenanceMode)
}

func TestPoemService_SubmitPoem_UnknownGenre(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()
	userID := uuid.New()
	genreID := uuid.New()

	m.settings.EXPECT().ModerationSnapshot(ctx).
		Return(entity.DefaultModerationSettings(), nil)
	m.poetRepo.EXPECT().FindByUser(ctx, userID).
		Return(&entity.Poet{ID: uuid.New(), UserID: userID}, nil)
	m.genreRepo.EXPECT().Exists(ctx, genreID).Return(false, nil)

	_, err := service.SubmitPoem(ctx, userID, usecase.PoemInput{GenreID: genreID})
	assert.ErrorIs(t, err, domainerrors.ErrGenreNotFound)
}

func TestPoemService_GetPoem_HidesUnpublishedFromPublic(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()
	poemID := uuid.New()

	m.poemRepo.EXPECT().FindByID(ctx, poemID).
		Return(&entity.Poem{ID: poemID, Status: entity.PoemStatusPending}, nil).Twice()

	_, err := service.GetPoem(ctx, poemID, false)
	assert.ErrorIs(t, err, domainerrors.ErrPoetryNotFound)

	poem, err := service.GetPoem(ctx, poemID, true)
	require.NoError(t, err)
	assert.Equal(t, poemID, poem.ID)
}

func TestPoemService_ListPoems_ResolvesGenreSlug(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()
	genreID := uuid.New()

	m.settings.EXPECT().ModerationSnapshot(ctx).
		Return(entity.DefaultModerationSettings(), nil)
	m.genreRepo.EXPECT().FindBySlug(ctx, "ghazal").
		Return(&entity.Genre{ID: genreID, Slug: "ghazal"}, nil)
	m.poemRepo.EXPECT().
		ListPublished(ctx, mock.MatchedBy(func(filter repository.PoemListFilter) bool {
			return filter.GenreID != nil && *filter.GenreID == genreID
		})).
		Return([]*entity.Poem{}, nil)

	_, err := service.ListPoems(ctx, repository.PoemListFilter{GenreSlug: "ghazal"})
	require.NoError(t, err)
}

func TestPoemService_ListPoems_DefaultLimitFromSettings(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()

	snapshot := entity.DefaultModerationSettings()
	snapshot.FeaturedPoetryLimit = 3

	m.settings.EXPECT().ModerationSnapshot(ctx).Return(snapshot, nil)
	m.poemRepo.EXPECT().
		ListPublished(ctx, mock.MatchedBy(func(filter repository.PoemListFilter) bool {
			return filter.Limit == 3
		})).
		Return([]*entity.Poem{}, nil)

	_, err := service.ListPoems(ctx, repository.PoemListFilter{})
	require.NoError(t, err)
}

func TestPoemService_ListPoems_ExplicitLimitSkipsSettings(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()

	// No snapshot expectation; a caller-chosen limit is used as-is.
	m.poemRepo.EXPECT().
		ListPublished(ctx, mock.MatchedBy(func(filter repository.PoemListFilter) bool {
			return filter.Limit == 20
		})).
		Return([]*entity.Poem{}, nil)

	_, err := service.ListPoems(ctx, repository.PoemListFilter{Limit: 20})
	require.NoError(t, err)
}

func TestPoemService_ApprovePoem_LiftsRejection(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()
	poemID := uuid.New()

	m.poemRepo.EXPECT().FindByID(ctx, poemID).
		Return(&entity.Poem{ID: poemID, Status: entity.PoemStatusRejected}, nil)
	m.poemRepo.EXPECT().SetStatus(ctx, poemID, entity.PoemStatusPublished).Return(nil)

	poem, err := service.ApprovePoem(ctx, adminActor, poemID)
	require.NoError(t, err)
	assert.Equal(t, entity.PoemStatusPublished, poem.Status)
}

func TestPoemService_ApprovePoem_AlreadyPublishedIsNoop(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()
	poemID := uuid.New()

	m.poemRepo.EXPECT().FindByID(ctx, poemID).
		Return(&entity.Poem{ID: poemID, Status: entity.PoemStatusPublished}, nil)

	// No SetStatus call; the state does not change.
	poem, err := service.ApprovePoem(ctx, adminActor, poemID)
	require.NoError(t, err)
	assert.Equal(t, entity.PoemStatusPublished, poem.Status)
}

func TestPoemService_RejectPoem_Idempotent(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()
	poemID := uuid.New()

	m.poemRepo.EXPECT().FindByID(ctx, poemID).
		Return(&entity.Poem{ID: poemID, Status: entity.PoemStatusRejected}, nil)

	poem, err := service.RejectPoem(ctx, adminActor, poemID)
	require.NoError(t, err)
	assert.Equal(t, entity.PoemStatusRejected, poem.Status)
}

func TestPoemService_TogglePoemVisibility_FlipsBothWays(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()
	pendingID := uuid.New()
	publishedID := uuid.New()

	m.poemRepo.EXPECT().FindByID(ctx, pendingID).
		Return(&entity.Poem{ID: pendingID, Status: entity.PoemStatusPending}, nil)
	m.poemRepo.EXPECT().SetStatus(ctx, pendingID, entity.PoemStatusPublished).Return(nil)

	poem, err := service.TogglePoemVisibility(ctx, adminActor, pendingID)
	require.NoError(t, err)
	assert.Equal(t, entity.PoemStatusPublished, poem.Status)

	m.poemRepo.EXPECT().FindByID(ctx, publishedID).
		Return(&entity.Poem{ID: publishedID, Status: entity.PoemStatusPublished}, nil)
	m.poemRepo.EXPECT().SetStatus(ctx, publishedID, entity.PoemStatusPending).Return(nil)

	poem, err = service.TogglePoemVisibility(ctx, adminActor, publishedID)
	require.NoError(t, err)
	assert.Equal(t, entity.PoemStatusPending, poem.Status)
}

func TestPoemService_TogglePoemVisibility_RefusesRejected(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()
	poemID := uuid.New()

	m.poemRepo.EXPECT().FindByID(ctx, poemID).
		Return(&entity.Poem{ID: poemID, Status: entity.PoemStatusRejected}, nil)

	_, err := service.TogglePoemVisibility(ctx, adminActor, poemID)
	assert.ErrorIs(t, err, domainerrors.ErrRejectedPoemToggle)
}

func TestPoemService_DeletePoem_CleansUpFacts(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()
	poemID := uuid.New()

	m.poemRepo.EXPECT().Exists(ctx, poemID).Return(true, nil)
	m.likeRepo.EXPECT().DeleteByPoem(ctx, poemID).Return(nil)
	m.rateRepo.EXPECT().DeleteByPoem(ctx, poemID).Return(nil)
	m.saveRepo.EXPECT().DeleteByPoem(ctx, poemID).Return(nil)
	m.poemRepo.EXPECT().Delete(ctx, poemID).Return(nil)

	require.NoError(t, service.DeletePoem(ctx, adminActor, poemID))
}

func TestPoemService_DeletePoem_Missing(t *testing.T) {
	service, m := newPoemService(t)

	ctx := context.Background()
	poemID := uuid.New()

	m.poemRepo.EXPECT().Exists(ctx, poemID).Return(false, nil)

	err := service.DeletePoem(ctx, adminActor, poemID)
	assert.ErrorIs(t, err, domainerrors.ErrPoetryNotFound)
}

func TestPoemService_Moderation_ForbiddenForNonAdmin(t *testing.T) {
	service, _ := newPoemService(t)

	ctx := context.Background()
	caller := usecase.Actor{ID: uuid.New()}
	poemID := uuid.New()

	// No repository expectations; nothing may be read or written.
	_, err := service.ApprovePoem(ctx, caller, poemID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = service.RejectPoem(ctx, caller, poemID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = service.TogglePoemVisibility(ctx, caller, poemID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = service.DeletePoem(ctx, caller, poemID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
