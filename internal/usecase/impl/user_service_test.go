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
	"sukhan/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userMocks struct {
	tx          *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	otpRepo     *mockRepo.MockOTPRepository
	historyRepo *mockRepo.MockLoginHistoryRepository
	likeRepo    *mockRepo.MockLikeRepository
	rateRepo    *mockRepo.MockRatingRepository
	follRepo    *mockRepo.MockFollowRepository
	saveRepo    *mockRepo.MockSavedPoetryRepository
	poemRepo    *mockRepo.MockPoemRepository
	poetRepo    *mockRepo.MockPoetRepository
	hasher      *mockSvc.MockPasswordHasher
	tokenSvc    *mockSvc.MockTokenService
	mailer      *mockSvc.MockMailer
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userMocks) {
	t.Helper()

	m := &userMocks{
		tx:          mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		otpRepo:     mockRepo.NewMockOTPRepository(t),
		historyRepo: mockRepo.NewMockLoginHistoryRepository(t),
		likeRepo:    mockRepo.NewMockLikeRepository(t),
		rateRepo:    mockRepo.NewMockRatingRepository(t),
		follRepo:    mockRepo.NewMockFollowRepository(t),
		saveRepo:    mockRepo.NewMockSavedPoetryRepository(t),
		poemRepo:    mockRepo.NewMockPoemRepository(t),
		poetRepo:    mockRepo.NewMockPoetRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		tokenSvc:    mockSvc.NewMockTokenService(t),
		mailer:      mockSvc.NewMockMailer(t),
	}

	m.factory.EXPECT().UserRepo().Return(m.userRepo).Maybe()
	m.factory.EXPECT().LikeRepo().Return(m.likeRepo).Maybe()
	m.factory.EXPECT().RatingRepo().Return(m.rateRepo).Maybe()
	m.factory.EXPECT().FollowRepo().Return(m.follRepo).Maybe()
	m.factory.EXPECT().SavedPoetryRepo().Return(m.saveRepo).Maybe()
	m.factory.EXPECT().LoginHistoryRepo().Return(m.historyRepo).Maybe()
	m.factory.EXPECT().PoemRepo().Return(m.poemRepo).Maybe()
	m.factory.EXPECT().PoetRepo().Return(m.poetRepo).Maybe()

	m.tx.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, repository.RepositoryFactory) error) error {
			return fn(ctx, m.factory)
		}).
		Maybe()

	service := NewUserService(UserServiceParams{
		TxManager:    m.tx,
		UserRepo:     m.userRepo,
		OtpRepo:      m.otpRepo,
		HistoryRepo:  m.historyRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenSvc,
		Mailer:       m.mailer,
		Config:       &config.Config{},
		Logger:       newDiscardLogger(),
	})

	return service, m
}

func TestUserService_Register_Success(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "mirza@sukhan.pk").
		Return(nil, repository.ErrUserNotFound)
	m.hasher.EXPECT().Hash("asad-ullah-khan").Return("hashed", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	m.otpRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.OTP")).
		Return(nil)
	m.mailer.EXPECT().
		SendOTP(ctx, "mirza@sukhan.pk", mock.AnythingOfType("string")).
		Return(nil)

	user, err := service.Register(ctx, usecase.RegisterInput{
		Email:    "Mirza@Sukhan.PK",
		Password: "asad-ullah-khan",
		FullName: "Mirza Asadullah Khan",
	})
	require.NoError(t, err)
	assert.Equal(t, "mirza@sukhan.pk", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.False(t, user.IsVerified)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "taken@sukhan.pk").
		Return(&entity.User{ID: uuid.New(), Email: "taken@sukhan.pk"}, nil)

	_, err := service.Register(ctx, usecase.RegisterInput{
		Email:    "taken@sukhan.pk",
		Password: "irrelevant",
		FullName: "Someone",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_MailFailureDoesNotFailSignup(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "poet@sukhan.pk").
		Return(nil, repository.ErrUserNotFound)
	m.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	m.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.otpRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.mailer.EXPECT().
		SendOTP(ctx, "poet@sukhan.pk", mock.Anything).
		Return(assert.AnError)

	user, err := service.Register(ctx, usecase.RegisterInput{
		Email:    "poet@sukhan.pk",
		Password: "some-password",
		FullName: "A Poet",
	})
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestUserService_VerifyOTP_Success(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "new@sukhan.pk").
		Return(&entity.User{ID: userID, Email: "new@sukhan.pk"}, nil)
	m.otpRepo.EXPECT().
		FindValid(ctx, "new@sukhan.pk", "123456", mock.AnythingOfType("time.Time")).
		Return(&entity.OTP{Email: "new@sukhan.pk", Code: "123456"}, nil)
	m.userRepo.EXPECT().SetVerified(ctx, userID).Return(nil)
	m.otpRepo.EXPECT().DeleteByEmail(ctx, "new@sukhan.pk").Return(nil)

	require.NoError(t, service.VerifyOTP(ctx, "new@sukhan.pk", "123456"))
}

func TestUserService_VerifyOTP_WrongCode(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "new@sukhan.pk").
		Return(&entity.User{ID: uuid.New()}, nil)
	m.otpRepo.EXPECT().
		FindValid(ctx, "new@sukhan.pk", "999999", mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrOTPNotFound)

	err := service.VerifyOTP(ctx, "new@sukhan.pk", "999999")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
}

func TestUserService_ResendOTP_RefusesVerifiedAccount(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "done@sukhan.pk").
		Return(&entity.User{ID: uuid.New(), IsVerified: true}, nil)

	err := service.ResendOTP(ctx, "done@sukhan.pk")
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestUserService_Login_Success(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:           userID,
		Email:        "faiz@sukhan.pk",
		PasswordHash: "stored-hash",
		IsVerified:   true,
	}

	m.userRepo.EXPECT().FindByEmail(ctx, "faiz@sukhan.pk").Return(user, nil)
	m.hasher.EXPECT().Check("bol-ke-lab-azad", "stored-hash").Return(true)
	m.tokenSvc.EXPECT().GenerateToken(userID, false).Return("signed-token", nil)
	m.historyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LoginHistory")).
		Return(nil)

	result, err := service.Login(ctx, usecase.LoginInput{
		Email:     "faiz@sukhan.pk",
		Password:  "bol-ke-lab-azad",
		IPAddress: "10.0.0.1",
		UserAgent: "test-agent",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, userID, result.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "faiz@sukhan.pk").
		Return(&entity.User{PasswordHash: "stored-hash", IsVerified: true}, nil)
	m.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	_, err := service.Login(ctx, usecase.LoginInput{Email: "faiz@sukhan.pk", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_BlockedAccount(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "blocked@sukhan.pk").
		Return(&entity.User{PasswordHash: "h", IsBlocked: true, IsVerified: true}, nil)
	m.hasher.EXPECT().Check("pw", "h").Return(true)

	_, err := service.Login(ctx, usecase.LoginInput{Email: "blocked@sukhan.pk", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrUserBlocked)
}

func TestUserService_Login_UnverifiedAccount(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "fresh@sukhan.pk").
		Return(&entity.User{PasswordHash: "h"}, nil)
	m.hasher.EXPECT().Check("pw", "h").Return(true)

	_, err := service.Login(ctx, usecase.LoginInput{Email: "fresh@sukhan.pk", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotVerified)
}

func TestUserService_Login_HistoryFailureDoesNotBlockLogin(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "faiz@sukhan.pk").
		Return(&entity.User{ID: userID, PasswordHash: "h", IsVerified: true}, nil)
	m.hasher.EXPECT().Check("pw", "h").Return(true)
	m.tokenSvc.EXPECT().GenerateToken(userID, false).Return("tok", nil)
	m.historyRepo.EXPECT().Create(ctx, mock.Anything).Return(assert.AnError)

	result, err := service.Login(ctx, usecase.LoginInput{Email: "faiz@sukhan.pk", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok", result.Token)
}

func TestUserService_DeleteUser_CascadesAndReconciles(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	m.poetRepo.EXPECT().FindByUser(ctx, userID).
		Return(nil, repository.ErrPoetNotFound)
	m.likeRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	m.rateRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	m.follRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	m.saveRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	m.historyRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	m.poemRepo.EXPECT().ReconcileCounters(ctx).Return(nil)
	m.poetRepo.EXPECT().ReconcileFollowerCounts(ctx).Return(nil)
	m.userRepo.EXPECT().Delete(ctx, userID).Return(nil)

	require.NoError(t, service.DeleteUser(ctx, adminActor, userID))
}

func TestUserService_DeleteUser_CascadesPoetProfile(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	poetID := uuid.New()
	poemID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	m.poetRepo.EXPECT().FindByUser(ctx, userID).
		Return(&entity.Poet{ID: poetID, UserID: userID}, nil)
	m.poemRepo.EXPECT().ListByPoet(ctx, poetID).
		Return([]uuid.UUID{poemID}, nil)
	m.likeRepo.EXPECT().DeleteByPoem(ctx, poemID).Return(nil)
	m.rateRepo.EXPECT().DeleteByPoem(ctx, poemID).Return(nil)
	m.saveRepo.EXPECT().DeleteByPoem(ctx, poemID).Return(nil)
	m.poemRepo.EXPECT().Delete(ctx, poemID).Return(nil)
	m.follRepo.EXPECT().DeleteByPoet(ctx, poetID).Return(nil)
	m.poetRepo.EXPECT().Delete(ctx, poetID).Return(nil)
	m.likeRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	m.rateRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	m.follRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	m.saveRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	m.historyRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	m.poemRepo.EXPECT().ReconcileCounters(ctx).Return(nil)
	m.poetRepo.EXPECT().ReconcileFollowerCounts(ctx).Return(nil)
	m.userRepo.EXPECT().Delete(ctx, userID).Return(nil)

	require.NoError(t, service.DeleteUser(ctx, adminActor, userID))
}

func TestUserService_DeleteUser_RefusesAdmin(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, IsAdmin: true}, nil)

	err := service.DeleteUser(ctx, adminActor, userID)
	assert.ErrorIs(t, err, domainerrors.ErrAdminUndeletable)
}

func TestUserService_SetBlocked_MissingUser(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		SetBlocked(ctx, userID, true).
		Return(repository.ErrUserNotFound)

	err := service.SetBlocked(ctx, adminActor, userID, true)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_AdminOps_ForbiddenForNonAdmin(t *testing.T) {
	service, _ := newUserService(t)

	ctx := context.Background()
	caller := usecase.Actor{ID: uuid.New()}
	userID := uuid.New()

	err := service.SetBlocked(ctx, caller, userID, true)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = service.DeleteUser(ctx, caller, userID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
