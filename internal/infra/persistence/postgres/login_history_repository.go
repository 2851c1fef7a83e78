package postgres

import (
	"context"

	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	"sukhan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// loginHistoryRepository implements the repository.LoginHistoryRepository interface.
type loginHistoryRepository struct {
	db *gorm.DB
}

// NewLoginHistoryRepository is the constructor for loginHistoryRepository.
func NewLoginHistoryRepository(db *gorm.DB) repository.LoginHistoryRepository {
	return &loginHistoryRepository{
		db: db,
	}
}

// Create persists a login record.
func (repo *loginHistoryRepository) Create(ctx context.Context, record *entity.LoginHistory) error {
	recordM := &model.LoginHistoryModel{
		ID:        record.ID,
		UserID:    record.UserID,
		LoginTime: record.LoginTime,
		IPAddress: record.IPAddress,
		UserAgent: record.UserAgent,
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create login record")
	}

	record.ID = recordM.ID

	return nil
}

// ListByUser retrieves login records for a user, newest first.
func (repo *loginHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.LoginHistory, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("login_time DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var recordModels []*model.LoginHistoryModel
	if err := query.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list login records")
	}

	records := make([]*entity.LoginHistory, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, &entity.LoginHistory{
			ID:        recordM.ID,
			UserID:    recordM.UserID,
			LoginTime: recordM.LoginTime,
			IPAddress: recordM.IPAddress,
			UserAgent: recordM.UserAgent,
		})
	}

	return records, nil
}

// DeleteByUser removes every record for the user.
func (repo *loginHistoryRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.LoginHistoryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete login records")
	}

	return nil
}
