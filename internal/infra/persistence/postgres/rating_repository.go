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

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{
		db: db,
	}
}

// Create persists a new rating fact.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRating
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPoetryNotFound.WrapMessage("invalid user or poem reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// UpdateScore overwrites the score of an existing fact.
func (repo *ratingRepository) UpdateScore(ctx context.Context, id uuid.UUID, score int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("id = ?", id).
		Update("score", score)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update rating score")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	return nil
}

// FindByUserAndPoem retrieves the rating fact for the pair, if present.
func (repo *ratingRepository) FindByUserAndPoem(ctx context.Context, userID, poetryID uuid.UUID) (*entity.Rating, error) {
	var ratingM model.RatingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND poetry_id = ?", userID, poetryID).
		First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating by user and poem")
	}

	return toRatingDomain(&ratingM), nil
}

// ListByUser retrieves all rating facts created by the user.
func (repo *ratingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Rating, error) {
	var ratingModels []*model.RatingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ratingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ratings by user")
	}

	ratings := make([]*entity.Rating, 0, len(ratingModels))
	for _, ratingM := range ratingModels {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return ratings, nil
}

// DeleteByUserAndPoem removes the fact for the pair.
func (repo *ratingRepository) DeleteByUserAndPoem(ctx context.Context, userID, poetryID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND poetry_id = ?", userID, poetryID).
		Delete(&model.RatingModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete rating")
	}

	return result.RowsAffected > 0, nil
}

// DeleteByPoem removes every rating fact referencing the poem.
func (repo *ratingRepository) DeleteByPoem(ctx context.Context, poetryID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("poetry_id = ?", poetryID).
		Delete(&model.RatingModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete ratings by poem")
	}

	return nil
}

// DeleteByUser removes every rating fact created by the user.
func (repo *ratingRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RatingModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete ratings by user")
	}

	return nil
}

// --- Mapper Functions ---

func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:        data.ID,
		UserID:    data.UserID,
		PoetryID:  data.PoetryID,
		Score:     data.Score,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:        data.ID,
		UserID:    data.UserID,
		PoetryID:  data.PoetryID,
		Score:     data.Score,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
