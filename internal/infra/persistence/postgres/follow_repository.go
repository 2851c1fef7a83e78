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

// followRepository implements the repository.FollowRepository interface.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{
		db: db,
	}
}

// Create persists a new follow fact.
func (repo *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	followM := fromFollowDomain(follow)

	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFollow
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPoetNotFound.WrapMessage("invalid user or poet reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow")
	}

	follow.ID = followM.ID
	follow.CreatedAt = followM.CreatedAt

	return nil
}

// FindByUserAndPoet retrieves the follow fact for the pair, if present.
func (repo *followRepository) FindByUserAndPoet(ctx context.Context, userID, poetID uuid.UUID) (*entity.Follow, error) {
	var followM model.FollowModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND poet_id = ?", userID, poetID).
		First(&followM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFollowNotFound
		}

		return nil, errors.Wrap(err, "failed to find follow by user and poet")
	}

	return toFollowDomain(&followM), nil
}

// ListByUser retrieves all follow facts created by the user.
func (repo *followRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Follow, error) {
	var followModels []*model.FollowModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&followModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list follows by user")
	}

	follows := make([]*entity.Follow, 0, len(followModels))
	for _, followM := range followModels {
		follows = append(follows, toFollowDomain(followM))
	}

	return follows, nil
}

// DeleteByUserAndPoet removes the fact for the pair.
func (repo *followRepository) DeleteByUserAndPoet(ctx context.Context, userID, poetID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND poet_id = ?", userID, poetID).
		Delete(&model.FollowModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete follow")
	}

	return result.RowsAffected > 0, nil
}

// DeleteByPoet removes every follow fact referencing the poet.
func (repo *followRepository) DeleteByPoet(ctx context.Context, poetID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("poet_id = ?", poetID).
		Delete(&model.FollowModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete follows by poet")
	}

	return nil
}

// DeleteByUser removes every follow fact created by the user.
func (repo *followRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.FollowModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete follows by user")
	}

	return nil
}

// --- Mapper Functions ---

func toFollowDomain(data *model.FollowModel) *entity.Follow {
	if data == nil {
		return nil
	}

	return &entity.Follow{
		ID:        data.ID,
		UserID:    data.UserID,
		PoetID:    data.PoetID,
		CreatedAt: data.CreatedAt,
	}
}

func fromFollowDomain(data *entity.Follow) *model.FollowModel {
	if data == nil {
		return nil
	}

	return &model.FollowModel{
		ID:        data.ID,
		UserID:    data.UserID,
		PoetID:    data.PoetID,
		CreatedAt: data.CreatedAt,
	}
}
