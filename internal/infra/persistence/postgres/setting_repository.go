package postgres

import (
	"context"

	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	"sukhan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingRepository implements the repository.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// FindByKey retrieves a setting by its key.
func (repo *settingRepository) FindByKey(ctx context.Context, key string) (*entity.Setting, error) {
	var settingM model.SettingModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find setting by key")
	}

	return toSettingDomain(&settingM), nil
}

// List retrieves all settings.
func (repo *settingRepository) List(ctx context.Context) ([]*entity.Setting, error) {
	var settingModels []*model.SettingModel

	if err := repo.db.WithContext(ctx).
		Order("key ASC").
		Find(&settingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list settings")
	}

	settings := make([]*entity.Setting, 0, len(settingModels))
	for _, settingM := range settingModels {
		settings = append(settings, toSettingDomain(settingM))
	}

	return settings, nil
}

// Upsert creates or overwrites the value for a key.
func (repo *settingRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	settingM := &model.SettingModel{
		Key:         setting.Key,
		Value:       setting.Value,
		Description: setting.Description,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
		}).
		Create(settingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert setting")
	}

	setting.UpdatedAt = settingM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toSettingDomain(data *model.SettingModel) *entity.Setting {
	if data == nil {
		return nil
	}

	return &entity.Setting{
		Key:         data.Key,
		Value:       data.Value,
		Description: data.Description,
		UpdatedAt:   data.UpdatedAt,
	}
}
