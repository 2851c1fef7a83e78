package impl

import (
	"context"
	"testing"

	"sukhan/config"
	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	mockRepo "sukhan/internal/mocks/repository"
	mockSvc "sukhan/internal/mocks/service"
	mockUC "sukhan/internal/mocks/usecase"
	"sukhan/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type poetMocks struct {
	tx       *mockRepo.MockTransactionManager
	factory  *mockRepo.MockRepositoryFactory
	poetRepo *mockRepo.MockPoetRepository
	poemRepo *mockRepo.MockPoemRepository
	likeRepo *mockRepo.MockLikeRepository
	rateRepo *mockRepo.MockRatingRepository
	follRepo *mockRepo.MockFollowRepository
	saveRepo *mockRepo.MockSavedPoetryRepository
	settings *mockUC.MockSettingsUsecase
	qrcode   *mockSvc.MockQRCodeService
}

func newPoetService(t *testing.T) (usecase.PoetUsecase, *poetMocks) {
	t.Helper()

	m := &poetMocks{
		tx:       mockRepo.NewMockTransactionManager(t),
		factory:  mockRepo.NewMockRepositoryFactory(t),
		poetRepo: mockRepo.NewMockPoetRepository(t),
		poemRepo: mockRepo.NewMockPoemRepository(t),
		likeRepo: mockRepo.NewMockLikeRepository(t),
		rateRepo: mockRepo.NewMockRatingRepository(t),
		follRepo: mockRepo.NewMockFollowRepository(t),
		saveRepo: mockRepo.NewMockSavedPoetryRepository(t),
		settings: mockUC.NewMockSettingsUsecase(t),
		qrcode:   mockSvc.NewMockQRCodeService(t),
	}

	m.factory.EXPECT().PoetRepo().Return(m.poetRepo).Maybe()
	m.factory.EXPECT().PoemRepo().Return(m.poemRepo).Maybe()
	m.factory.EXPECT().LikeRepo().Return(m.likeRepo).Maybe()
	m.factory.EXPECT().RatingRepo().Return(m.rateRepo).Maybe()
	m.factory.EXPECT().FollowRepo().Return(m.follRepo).Maybe()
	m.factory.EXPECT().SavedPoetryRepo().Return(m.saveRepo).Maybe()

	m.tx.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, repository.RepositoryFactory) error) error {
			return fn(ctx, m.factory)
		}).
		Maybe()

	service := NewPoetService(PoetServiceParams{
		TxManager:     m.tx,
		PoetRepo:      m.poetRepo,
		Settings:      m.settings,
		QRCodeService: m.qrcode,
		Config: &config.Config{
			Site: &config.SiteConfig{BaseURL: "https://sukhan.pk"},
		},
	})

	return service, m
}

func openRegistration() entity.ModerationSettings {
	snapshot := entity.DefaultModerationSettings()
	snapshot.PoetRegistrationEnabled = true

	return snapshot
}

func TestPoetService_RegisterPoet_Success(t *testing.T) {
	service, m := newPoetService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.settings.EXPECT().ModerationSnapshot(ctx).Return(openRegistration(), nil)
	m.poetRepo.EXPECT().FindByUser(ctx, userID).
		Return(nil, repository.ErrPoetNotFound)
	m.poetRepo.EXPECT().SlugExists(ctx, "mirza-ghalib").Return(false, nil)
	m.poetRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Poet")).Return(nil)

	poet, err := service.RegisterPoet(ctx, userID, usecase.PoetInput{
		NameRoman: "Mirza Ghalib",
		Takhallus: "Ghalib",
	})
	require.NoError(t, err)
	assert.Equal(t, "mirza-ghalib", poet.Slug)
	assert.Equal(t, userID, poet.UserID)
}

func TestPoetService_RegisterPoet_RefusedDuringMaintenance(t *testing.T) {
	service, m := newPoetService(t)

	ctx := context.Background()

	snapshot := openRegistration()
	snapshot.MaintenanceMode = true

	m.settings.EXPECT().ModerationSnapshot(ctx).Return(snapshot, nil)

	_, err := service.RegisterPoet(ctx, uuid.New(), usecase.PoetInput{NameRoman: "Mirza Ghalib"})
	assert.ErrorIs(t, err, domainerrors.ErrMaintenanceMode)
}

func TestPoetService_RegisterPoet_SlugCollisionGetsSuffix(t *testing.T) {
	service, m := newPoetService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.settings.EXPECT().ModerationSnapshot(ctx).Return(openRegistration(), nil)
	m.poetRepo.EXPECT().FindByUser(ctx, userID).
		Return(nil, repository.ErrPoetNotFound)
	m.poetRepo.EXPECT().SlugExists(ctx, "mirza-ghalib").Return(true, nil)
	m.poetRepo.EXPECT().SlugExists(ctx, "mirza-ghalib-1").Return(true, nil)
	m.poetRepo.EXPECT().SlugExists(ctx, "mirza-ghalib-2").Return(false, nil)
	m.poetRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Poet")).Return(nil)

	poet, err := service.RegisterPoet(ctx, userID, usecase.PoetInput{NameRoman: "Mirza Ghalib"})
	require.NoError(t, err)
	assert.Equal(t, "mirza-ghalib-2", poet.Slug)
}

func TestPoetService_RegisterPoet_RegistrationClosed(t *testing.T) {
	service, m := newPoetService(t)

	ctx := context.Background()

	snapshot := entity.DefaultModerationSettings()
	snapshot.PoetRegistrationEnabled = false

	m.settings.EXPECT().ModerationSnapshot(ctx).Return(snapshot, nil)

	_, err := service.RegisterPoet(ctx, uuid.New(), usecase.PoetInput{NameRoman: "Faiz"})
	assert.ErrorIs(t, err, domainerrors.ErrPoetRegistrationClosed)
}

func TestPoetService_RegisterPoet_SecondProfileRefused(t *testing.T) {
	service, m := newPoetService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.settings.EXPECT().ModerationSnapshot(ctx).Return(openRegistration(), nil)
	m.poetRepo.EXPECT().FindByUser(ctx, userID).
		Return(&entity.Poet{ID: uuid.New(), UserID: userID}, nil)

	_, err := service.RegisterPoet(ctx, userID, usecase.PoetInput{NameRoman: "Faiz"})
	assert.ErrorIs(t, err, domainerrors.ErrPoetProfileExists)
}

func TestPoetService_UpdatePoet_OwnerOnly(t *testing.T) {
	service, m := newPoetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	poetID := uuid.New()

	m.poetRepo.EXPECT().FindByID(ctx, poetID).
		Return(&entity.Poet{ID: poetID, UserID: ownerID, Slug: "ghalib"}, nil)

	_, err := service.UpdatePoet(ctx, uuid.New(), poetID, usecase.PoetInput{NameRoman: "Ghalib"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPoetService_UpdatePoet_KeepsSlug(t *testing.T) {
	service, m := newPoetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	poetID := uuid.New()

	m.poetRepo.EXPECT().FindByID(ctx, poetID).
		Return(&entity.Poet{ID: poetID, UserID: ownerID, Slug: "ghalib", NameRoman: "Ghalib"}, nil)
	m.poetRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Poet")).Return(nil)

	poet, err := service.UpdatePoet(ctx, ownerID, poetID, usecase.PoetInput{
		NameRoman: "Mirza Asadullah Khan Ghalib",
		Bio:       "of Delhi",
	})
	require.NoError(t, err)
	assert.Equal(t, "ghalib", poet.Slug)
	assert.Equal(t, "Mirza Asadullah Khan Ghalib", poet.NameRoman)
}

func TestPoetService_DeletePoet_CascadesThroughPoems(t *testing.T) {
	service, m := newPoetService(t)

	ctx := context.Background()
	poetID := uuid.New()
	poemA := uuid.New()
	poemB := uuid.New()

	m.poetRepo.EXPECT().FindByID(ctx, poetID).
		Return(&entity.Poet{ID: poetID}, nil)
	m.poemRepo.EXPECT().ListByPoet(ctx, poetID).
		Return([]uuid.UUID{poemA, poemB}, nil)
	for _, poemID := range []uuid.UUID{poemA, poemB} {
		m.likeRepo.EXPECT().DeleteByPoem(ctx, poemID).Return(nil)
		m.rateRepo.EXPECT().DeleteByPoem(ctx, poemID).Return(nil)
		m.saveRepo.EXPECT().DeleteByPoem(ctx, poemID).Return(nil)
		m.poemRepo.EXPECT().Delete(ctx, poemID).Return(nil)
	}
	m.follRepo.EXPECT().DeleteByPoet(ctx, poetID).Return(nil)
	m.poetRepo.EXPECT().Delete(ctx, poetID).Return(nil)

	require.NoError(t, service.DeletePoet(ctx, adminActor, poetID))
}

func TestPoetService_DeletePoet_Missing(t *testing.T) {
	service, m := newPoetService(t)

	ctx := context.Background()
	poetID := uuid.New()

	m.poetRepo.EXPECT().FindByID(ctx, poetID).
		Return(nil, repository.ErrPoetNotFound)

	err := service.DeletePoet(ctx, adminActor, poetID)
	assert.ErrorIs(t, err, domainerrors.ErrPoetNotFound)
}

func TestPoetService_ShareQR_UsesPublicURL(t *testing.T) {
	service, m := newPoetService(t)

	ctx := context.Background()

	m.poetRepo.EXPECT().FindBySlug(ctx, "ghalib").
		Return(&entity.Poet{ID: uuid.New(), Slug: "ghalib"}, nil)
	m.qrcode.EXPECT().
		GenerateShareQR("https://sukhan.pk/poets/ghalib").
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := service.ShareQR(ctx, "ghalib")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestPoetService_ShareQR_UnknownSlug(t *testing.T) {
	service, m := newPoetService(t)

	ctx := context.Background()

	m.poetRepo.EXPECT().FindBySlug(ctx, "nobody").
		Return(nil, repository.ErrPoetNotFound)

	_, err := service.ShareQR(ctx, "nobody")
	assert.ErrorIs(t, err, domainerrors.ErrPoetNotFound)
}

func TestPoetService_SetPoetPublished_Missing(t *testing.T) {
	service, m := newPoetService(t)

	ctx := context.Background()
	poetID := uuid.New()

	m.poetRepo.EXPECT().SetPublished(ctx, poetID, true).
		Return(repository.ErrPoetNotFound)

	err := service.SetPoetPublished(ctx, adminActor, poetID, true)
	assert.ErrorIs(t, err, domainerrors.ErrPoetNotFound)
}

func TestPoetService_Moderation_ForbiddenForNonAdmin(t *testing.T) {
	service, _ := newPoetService(t)

	ctx := context.Background()
	caller := usecase.Actor{ID: uuid.New()}
	poetID := uuid.New()

	err := service.SetPoetPublished(ctx, caller, poetID, true)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = service.DeletePoet(ctx, caller, poetID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
