package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"sukhan/config"
	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	"sukhan/internal/domain/service"
	"sukhan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultOTPTTL = 10 * time.Minute

type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	otpRepo      repository.OTPRepository
	historyRepo  repository.LoginHistoryRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	otpTTL       time.Duration
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	OtpRepo      repository.OTPRepository
	HistoryRepo  repository.LoginHistoryRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService creates a new user service instance.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	otpTTL := defaultOTPTTL
	if params.Config.Auth != nil && params.Config.Auth.OTPTTL > 0 {
		otpTTL = params.Config.Auth.OTPTTL
	}

	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		otpRepo:      params.OtpRepo,
		historyRepo:  params.HistoryRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		otpTTL:       otpTTL,
		logger:       params.Logger,
	}
}

// Register creates an unverified account and mails a one-time code.
func (s *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		ID:            uuid.New(),
		Email:         email,
		PasswordHash:  hash,
		FullName:      input.FullName,
		Username:      input.Username,
		FavoriteShair: input.FavoriteShair,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, err
	}

	if err := s.issueOTP(ctx, email); err != nil {
		// The account exists; the code can be re-requested.
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to issue signup otp",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
	}

	return user, nil
}

// VerifyOTP confirms the code and marks the account verified.
func (s *userService) VerifyOTP(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load account")
	}

	if _, err := s.otpRepo.FindValid(ctx, email, code, time.Now()); err != nil {
		if errors.Is(err, repository.ErrOTPNotFound) {
			return domainerrors.ErrInvalidOTP
		}

		return errors.Wrap(err, "failed to look up otp")
	}

	if err := s.userRepo.SetVerified(ctx, user.ID); err != nil {
		return errors.Wrap(err, "failed to mark account verified")
	}

	return s.otpRepo.DeleteByEmail(ctx, email)
}

// ResendOTP issues a fresh code to an unverified account.
func (s *userService) ResendOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load account")
	}

	if user.IsVerified {
		return domainerrors.ErrConflict.WrapMessage("account already verified")
	}

	return s.issueOTP(ctx, email)
}

// Login authenticates, records login history and returns a token.
func (s *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.IsBlocked {
		return nil, domainerrors.ErrUserBlocked
	}

	if !user.IsVerified {
		return nil, domainerrors.ErrUserNotVerified
	}

	token, err := s.tokenService.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	record := &entity.LoginHistory{
		ID:        uuid.New(),
		UserID:    user.ID,
		LoginTime: time.Now(),
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
	}
	if err := s.historyRepo.Create(ctx, record); err != nil {
		// A failed audit write must not block the login itself.
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to record login history",
			slog.String("userID", user.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return &usecase.AuthResult{Token: token, User: user}, nil
}

// GetProfile returns the user's account.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return user, nil
}

// ListUsers returns the admin user listing with the total count.
func (s *userService) ListUsers(ctx context.Context, filter repository.UserListFilter) ([]*entity.User, int64, error) {
	return s.userRepo.List(ctx, filter)
}

// SetBlocked toggles the blocked flag on an account.
func (s *userService) SetBlocked(ctx context.Context, actor usecase.Actor, userID uuid.UUID, blocked bool) error {
	if !actor.IsAdmin {
		return domainerrors.ErrForbidden
	}

	if err := s.userRepo.SetBlocked(ctx, userID, blocked); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update blocked flag")
	}

	return nil
}

// DeleteUser removes an account together with its poet profile, its
// poems and its engagement facts. The facts vanish with the account, so
// the affected counters are rebuilt from the surviving facts inside the
// same transaction.
func (s *userService) DeleteUser(ctx context.Context, actor usecase.Actor, userID uuid.UUID) error {
	if !actor.IsAdmin {
		return domainerrors.ErrForbidden
	}

	return s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		user, err := repos.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load account")
		}

		if user.IsAdmin {
			return domainerrors.ErrAdminUndeletable
		}

		// A poet profile owned by the account goes with it, poems and
		// all, so no content is left pointing at a deleted user.
		poet, err := repos.PoetRepo().FindByUser(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrPoetNotFound) {
			return errors.Wrap(err, "failed to load poet profile")
		}
		if poet != nil {
			if err := cascadeDeletePoet(ctx, repos, poet.ID); err != nil {
				return err
			}
		}

		if err := repos.LikeRepo().DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := repos.RatingRepo().DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := repos.FollowRepo().DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := repos.SavedPoetryRepo().DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := repos.LoginHistoryRepo().DeleteByUser(ctx, userID); err != nil {
			return err
		}

		if err := repos.PoemRepo().ReconcileCounters(ctx); err != nil {
			return err
		}
		if err := repos.PoetRepo().ReconcileFollowerCounts(ctx); err != nil {
			return err
		}

		return repos.UserRepo().Delete(ctx, userID)
	})
}

// issueOTP generates, stores and mails a fresh verification code.
func (s *userService) issueOTP(ctx context.Context, email string) error {
	code, err := generateOTPCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate otp code")
	}

	otp := &entity.OTP{
		ID:        uuid.New(),
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpTTL),
	}

	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return err
	}

	return s.mailer.SendOTP(ctx, email, code)
}

// generateOTPCode produces a 6 digit numeric code from crypto/rand.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
