package postgres

import (
	"context"
	"strings"
	"time"

	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	"sukhan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// otpRepository implements the repository.OTPRepository interface.
type otpRepository struct {
	db *gorm.DB
}

// NewOtpRepository is the constructor for otpRepository.
func NewOtpRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{
		db: db,
	}
}

// Create persists a new code, replacing any previous code for the email.
func (repo *otpRepository) Create(ctx context.Context, otp *entity.OTP) error {
	email := strings.ToLower(otp.Email)

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.OtpModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear previous otp codes")
	}

	otpM := &model.OtpModel{
		ID:        otp.ID,
		Email:     email,
		Code:      otp.Code,
		ExpiresAt: otp.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(otpM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp")
	}

	otp.ID = otpM.ID
	otp.CreatedAt = otpM.CreatedAt

	return nil
}

// FindValid retrieves the code for the email if it matches and has not
// expired as of now.
func (repo *otpRepository) FindValid(ctx context.Context, email, code string, now time.Time) (*entity.OTP, error) {
	var otpM model.OtpModel

	if err := repo.db.WithContext(ctx).
		Where("email = ? AND code = ? AND expires_at > ?", strings.ToLower(email), code, now).
		First(&otpM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, errors.Wrap(err, "failed to find otp")
	}

	return &entity.OTP{
		ID:        otpM.ID,
		Email:     otpM.Email,
		Code:      otpM.Code,
		ExpiresAt: otpM.ExpiresAt,
		CreatedAt: otpM.CreatedAt,
	}, nil
}

// DeleteByEmail removes all codes issued to the email.
func (repo *otpRepository) DeleteByEmail(ctx context.Context, email string) error {
	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		Delete(&model.OtpModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete otp codes")
	}

	return nil
}
