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

// poetRepository implements the repository.PoetRepository interface.
type poetRepository struct {
	db *gorm.DB
}

// NewPoetRepository is the constructor for poetRepository.
func NewPoetRepository(db *gorm.DB) repository.PoetRepository {
	return &poetRepository{
		db: db,
	}
}

// Create persists a new poet profile.
func (repo *poetRepository) Create(ctx context.Context, poet *entity.Poet) error {
	poetM := fromPoetDomain(poet)

	if err := repo.db.WithContext(ctx).Create(poetM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePoet
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create poet")
	}

	poet.ID = poetM.ID
	poet.CreatedAt = poetM.CreatedAt
	poet.UpdatedAt = poetM.UpdatedAt

	return nil
}

// FindByID retrieves a poet by its unique ID.
func (repo *poetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Poet, error) {
	var poetM model.PoetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&poetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPoetNotFound
		}

		return nil, errors.Wrap(err, "failed to find poet by ID")
	}

	return toPoetDomain(&poetM), nil
}

// FindByUser retrieves the poet profile owned by the user, if any.
func (repo *poetRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Poet, error) {
	var poetM model.PoetModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&poetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPoetNotFound
		}

		return nil, errors.Wrap(err, "failed to find poet by user")
	}

	return toPoetDomain(&poetM), nil
}

// FindBySlug retrieves a poet by its unique slug.
func (repo *poetRepository) FindBySlug(ctx context.Context, slug string) (*entity.Poet, error) {
	var poetM model.PoetModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&poetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPoetNotFound
		}

		return nil, errors.Wrap(err, "failed to find poet by slug")
	}

	return toPoetDomain(&poetM), nil
}

// ListPublished retrieves published poets with the given sort and limit.
func (repo *poetRepository) ListPublished(ctx context.Context, sort repository.PoetSort, limit int) ([]*entity.Poet, error) {
	query := repo.db.WithContext(ctx).
		Where("is_published = ?", true)

	switch sort {
	case repository.PoetSortPopular:
		query = query.Order("followers_count DESC, created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	var poetModels []*model.PoetModel
	if err := query.Find(&poetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list published poets")
	}

	poets := make([]*entity.Poet, 0, len(poetModels))
	for _, poetM := range poetModels {
		poets = append(poets, toPoetDomain(poetM))
	}

	return poets, nil
}

// ListAll retrieves every poet for the admin back office, pending first.
func (repo *poetRepository) ListAll(ctx context.Context) ([]*entity.Poet, error) {
	var poetModels []*model.PoetModel

	if err := repo.db.WithContext(ctx).
		Order("is_published ASC, created_at DESC").
		Find(&poetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list poets")
	}

	poets := make([]*entity.Poet, 0, len(poetModels))
	for _, poetM := range poetModels {
		poets = append(poets, toPoetDomain(poetM))
	}

	return poets, nil
}

// Update persists profile field changes. Counters are deliberately left
// out of the column list; they only move through AdjustFollowersCount.
func (repo *poetRepository) Update(ctx context.Context, poet *entity.Poet) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PoetModel{}).
		Where("id = ?", poet.ID).
		Updates(map[string]interface{}{
			"name_roman":    poet.NameRoman,
			"name_urdu":     poet.NameUrdu,
			"takhallus":     poet.Takhallus,
			"bio":           poet.Bio,
			"image_url":     poet.ImageURL,
			"city":          poet.City,
			"country":       poet.Country,
			"date_of_birth": poet.DateOfBirth,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update poet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPoetNotFound
	}

	return nil
}

// SlugExists reports whether a slug is already taken.
func (repo *poetRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PoetModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check poet slug")
	}

	return count > 0, nil
}

// Exists reports whether the poet row is present.
func (repo *poetRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PoetModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check poet existence")
	}

	return count > 0, nil
}

// SetPublished updates the publish flag.
func (repo *poetRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PoetModel{}).
		Where("id = ?", id).
		Update("is_published", published)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set poet publish flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPoetNotFound
	}

	return nil
}

// AdjustFollowersCount applies an atomic increment to followers_count.
// The GREATEST guard keeps the counter from going negative if a reconcile
// raced a decrement. RowsAffected of zero means the poet row is gone,
// which is fine; the follow fact mutation still stands.
func (repo *poetRepository) AdjustFollowersCount(ctx context.Context, id uuid.UUID, delta int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PoetModel{}).
		Where("id = ?", id).
		Update("followers_count", gorm.Expr("GREATEST(followers_count + ?, 0)", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to adjust followers count")
	}

	return nil
}

// ReconcileFollowerCounts overwrites every poet's followers_count with the
// live count of follow facts.
func (repo *poetRepository) ReconcileFollowerCounts(ctx context.Context) error {
	query := `
		UPDATE poets p
		SET followers_count = COALESCE((SELECT COUNT(*) FROM follows WHERE poet_id = p.id), 0)
	`

	if err := repo.db.WithContext(ctx).Exec(query).Error; err != nil {
		return errors.Wrap(err, "failed to reconcile follower counts")
	}

	return nil
}

// Delete removes a poet profile (soft delete).
func (repo *poetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PoetModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete poet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPoetNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPoetDomain converts a GORM PoetModel to a domain Poet entity.
func toPoetDomain(data *model.PoetModel) *entity.Poet {
	if data == nil {
		return nil
	}

	return &entity.Poet{
		ID:             data.ID,
		UserID:         data.UserID,
		NameRoman:      data.NameRoman,
		NameUrdu:       data.NameUrdu,
		Takhallus:      data.Takhallus,
		Slug:           data.Slug,
		Bio:            data.Bio,
		ImageURL:       data.ImageURL,
		City:           data.City,
		Country:        data.Country,
		DateOfBirth:    data.DateOfBirth,
		IsPublished:    data.IsPublished,
		FollowersCount: data.FollowersCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromPoetDomain converts a domain Poet entity to a GORM PoetModel.
func fromPoetDomain(data *entity.Poet) *model.PoetModel {
	if data == nil {
		return nil
	}

	return &model.PoetModel{
		ID:             data.ID,
		UserID:         data.UserID,
		NameRoman:      data.NameRoman,
		NameUrdu:       data.NameUrdu,
		Takhallus:      data.Takhallus,
		Slug:           data.Slug,
		Bio:            data.Bio,
		ImageURL:       data.ImageURL,
		City:           data.City,
		Country:        data.Country,
		DateOfBirth:    data.DateOfBirth,
		IsPublished:    data.IsPublished,
		FollowersCount: data.FollowersCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
