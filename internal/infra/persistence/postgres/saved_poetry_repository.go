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

// savedPoetryRepository implements the repository.SavedPoetryRepository interface.
type savedPoetryRepository struct {
	db *gorm.DB
}

// NewSavedPoetryRepository is the constructor for savedPoetryRepository.
func NewSavedPoetryRepository(db *gorm.DB) repository.SavedPoetryRepository {
	return &savedPoetryRepository{
		db: db,
	}
}

// Create persists a new saved-poetry fact.
func (repo *savedPoetryRepository) Create(ctx context.Context, saved *entity.SavedPoetry) error {
	savedM := fromSavedPoetryDomain(saved)

	if err := repo.db.WithContext(ctx).Create(savedM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSavedPoetry
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPoetryNotFound.WrapMessage("invalid user or poem reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create saved poetry")
	}

	saved.ID = savedM.ID
	saved.CreatedAt = savedM.CreatedAt

	return nil
}

// FindByUserAndPoem retrieves the fact for the pair, if present.
func (repo *savedPoetryRepository) FindByUserAndPoem(ctx context.Context, userID, poetryID uuid.UUID) (*entity.SavedPoetry, error) {
	var savedM model.SavedPoetryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND poetry_id = ?", userID, poetryID).
		First(&savedM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSavedPoetryNotFound
		}

		return nil, errors.Wrap(err, "failed to find saved poetry by user and poem")
	}

	return toSavedPoetryDomain(&savedM), nil
}

// ListByUser retrieves all saved facts created by the user.
func (repo *savedPoetryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedPoetry, error) {
	var savedModels []*model.SavedPoetryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&savedModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list saved poetry by user")
	}

	saves := make([]*entity.SavedPoetry, 0, len(savedModels))
	for _, savedM := range savedModels {
		saves = append(saves, toSavedPoetryDomain(savedM))
	}

	return saves, nil
}

// DeleteByUserAndPoem removes the fact for the pair.
func (repo *savedPoetryRepository) DeleteByUserAndPoem(ctx context.Context, userID, poetryID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND poetry_id = ?", userID, poetryID).
		Delete(&model.SavedPoetryModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete saved poetry")
	}

	return result.RowsAffected > 0, nil
}

// DeleteByPoem removes every saved fact referencing the poem.
func (repo *savedPoetryRepository) DeleteByPoem(ctx context.Context, poetryID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("poetry_id = ?", poetryID).
		Delete(&model.SavedPoetryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete saved poetry by poem")
	}

	return nil
}

// DeleteByUser removes every saved fact created by the user.
func (repo *savedPoetryRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.SavedPoetryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete saved poetry by user")
	}

	return nil
}

// --- Mapper Functions ---

func toSavedPoetryDomain(data *model.SavedPoetryModel) *entity.SavedPoetry {
	if data == nil {
		return nil
	}

	return &entity.SavedPoetry{
		ID:        data.ID,
		UserID:    data.UserID,
		PoetryID:  data.PoetryID,
		CreatedAt: data.CreatedAt,
	}
}

func fromSavedPoetryDomain(data *entity.SavedPoetry) *model.SavedPoetryModel {
	if data == nil {
		return nil
	}

	return &model.SavedPoetryModel{
		ID:        data.ID,
		UserID:    data.UserID,
		PoetryID:  data.PoetryID,
		CreatedAt: data.CreatedAt,
	}
}
