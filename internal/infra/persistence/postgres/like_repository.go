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

// likeRepository implements the repository.LikeRepository interface.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{
		db: db,
	}
}

// Create persists a new like fact. The composite unique index on
// (user_id, poetry_id) turns a concurrent duplicate into ErrDuplicateLike.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLike
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPoetryNotFound.WrapMessage("invalid user or poem reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}

// FindByUserAndPoem retrieves the like fact for the pair, if present.
func (repo *likeRepository) FindByUserAndPoem(ctx context.Context, userID, poetryID uuid.UUID) (*entity.Like, error) {
	var likeM model.LikeModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND poetry_id = ?", userID, poetryID).
		First(&likeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like by user and poem")
	}

	return toLikeDomain(&likeM), nil
}

// ListByUser retrieves all like facts created by the user.
func (repo *likeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Like, error) {
	var likeModels []*model.LikeModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&likeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list likes by user")
	}

	likes := make([]*entity.Like, 0, len(likeModels))
	for _, likeM := range likeModels {
		likes = append(likes, toLikeDomain(likeM))
	}

	return likes, nil
}

// DeleteByUserAndPoem removes the fact for the pair. A zero RowsAffected
// means the fact was never there; the caller treats that as a no-op.
func (repo *likeRepository) DeleteByUserAndPoem(ctx context.Context, userID, poetryID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND poetry_id = ?", userID, poetryID).
		Delete(&model.LikeModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete like")
	}

	return result.RowsAffected > 0, nil
}

// DeleteByPoem removes every like fact referencing the poem.
func (repo *likeRepository) DeleteByPoem(ctx context.Context, poetryID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("poetry_id = ?", poetryID).
		Delete(&model.LikeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete likes by poem")
	}

	return nil
}

// DeleteByUser removes every like fact created by the user.
func (repo *likeRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.LikeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete likes by user")
	}

	return nil
}

// --- Mapper Functions ---

func toLikeDomain(data *model.LikeModel) *entity.Like {
	if data == nil {
		return nil
	}

	return &entity.Like{
		ID:        data.ID,
		UserID:    data.UserID,
		PoetryID:  data.PoetryID,
		CreatedAt: data.CreatedAt,
	}
}

func fromLikeDomain(data *entity.Like) *model.LikeModel {
	if data == nil {
		return nil
	}

	return &model.LikeModel{
		ID:        data.ID,
		UserID:    data.UserID,
		PoetryID:  data.PoetryID,
		CreatedAt: data.CreatedAt,
	}
}
