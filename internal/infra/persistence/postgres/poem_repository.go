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

// poemRepository implements the repository.PoemRepository interface.
type poemRepository struct {
	db *gorm.DB
}

// NewPoemRepository is the constructor for poemRepository.
func NewPoemRepository(db *gorm.DB) repository.PoemRepository {
	return &poemRepository{
		db: db,
	}
}

// Create persists a new poem.
func (repo *poemRepository) Create(ctx context.Context, poem *entity.Poem) error {
	poemM := fromPoemDomain(poem)

	if err := repo.db.WithContext(ctx).Create(poemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid poet or genre reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required poem information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create poem")
	}

	poem.ID = poemM.ID
	poem.CreatedAt = poemM.CreatedAt
	poem.UpdatedAt = poemM.UpdatedAt

	return nil
}

// FindByID retrieves a poem by its unique ID.
func (repo *poemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Poem, error) {
	var poemM model.PoemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&poemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPoemNotFound
		}

		return nil, errors.Wrap(err, "failed to find poem by ID")
	}

	return toPoemDomain(&poemM), nil
}

// ListPublished retrieves published poems matching the filter.
func (repo *poemRepository) ListPublished(ctx context.Context, filter repository.PoemListFilter) ([]*entity.Poem, error) {
	query := repo.db.WithContext(ctx).
		Where("status = ?", entity.PoemStatusPublished.String())

	if filter.PoetID != nil {
		query = query.Where("poet_id = ?", *filter.PoetID)
	}
	if filter.GenreID != nil {
		query = query.Where("genre_id = ?", *filter.GenreID)
	}

	switch filter.Sort {
	case repository.PoemSortPopular:
		query = query.Order("likes_count DESC, created_at DESC")
	case repository.PoemSortRated:
		query = query.Order("average_rating DESC, ratings_count DESC, created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var poemModels []*model.PoemModel
	if err := query.Find(&poemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list published poems")
	}

	poems := make([]*entity.Poem, 0, len(poemModels))
	for _, poemM := range poemModels {
		poems = append(poems, toPoemDomain(poemM))
	}

	return poems, nil
}

// ListAll retrieves every poem for the admin back office, pending first.
func (repo *poemRepository) ListAll(ctx context.Context) ([]*entity.Poem, error) {
	var poemModels []*model.PoemModel

	if err := repo.db.WithContext(ctx).
		Order("CASE status WHEN 'pending' THEN 0 WHEN 'rejected' THEN 1 ELSE 2 END, created_at DESC").
		Find(&poemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list poems")
	}

	poems := make([]*entity.Poem, 0, len(poemModels))
	for _, poemM := range poemModels {
		poems = append(poems, toPoemDomain(poemM))
	}

	return poems, nil
}

// ListByPoet retrieves the poem IDs authored under a poet.
func (repo *poemRepository) ListByPoet(ctx context.Context, poetID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.PoemModel{}).
		Where("poet_id = ?", poetID).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list poem IDs by poet")
	}

	return ids, nil
}

// Exists reports whether the poem row is present.
func (repo *poemRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PoemModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check poem existence")
	}

	return count > 0, nil
}

// SetStatus updates the moderation status.
func (repo *poemRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.PoemStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PoemModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set poem status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPoemNotFound
	}

	return nil
}

// AdjustLikesCount applies an atomic increment to likes_count. A zero
// RowsAffected means the poem row is gone; the adjustment is skipped and
// the fact mutation in the same transaction still stands.
func (repo *poemRepository) AdjustLikesCount(ctx context.Context, id uuid.UUID, delta int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PoemModel{}).
		Where("id = ?", id).
		Update("likes_count", gorm.Expr("GREATEST(likes_count + ?, 0)", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to adjust likes count")
	}

	return nil
}

// AdjustRatingsCount applies an atomic increment to ratings_count, with
// the same missing-row semantics as AdjustLikesCount.
func (repo *poemRepository) AdjustRatingsCount(ctx context.Context, id uuid.UUID, delta int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PoemModel{}).
		Where("id = ?", id).
		Update("ratings_count", gorm.Expr("GREATEST(ratings_count + ?, 0)", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to adjust ratings count")
	}

	return nil
}

// RecomputeAverageRating overwrites average_rating with the mean of all
// live rating facts. A single UPDATE with a subselect so the stored value
// always reflects one consistent snapshot of the facts.
func (repo *poemRepository) RecomputeAverageRating(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE poems
		SET average_rating = COALESCE(
			(SELECT AVG(score) FROM ratings WHERE poetry_id = ?), 0
		)
		WHERE id = ?
	`

	if err := repo.db.WithContext(ctx).Exec(query, id, id).Error; err != nil {
		return errors.Wrap(err, "failed to recompute average rating")
	}

	return nil
}

// ReconcileCounters overwrites likes_count, ratings_count and
// average_rating for every poem from the live facts.
func (repo *poemRepository) ReconcileCounters(ctx context.Context) error {
	query := `
		UPDATE poems p
		SET likes_count = COALESCE((SELECT COUNT(*) FROM likes WHERE poetry_id = p.id), 0),
		    ratings_count = COALESCE((SELECT COUNT(*) FROM ratings WHERE poetry_id = p.id), 0),
		    average_rating = COALESCE((SELECT AVG(score) FROM ratings WHERE poetry_id = p.id), 0)
	`

	if err := repo.db.WithContext(ctx).Exec(query).Error; err != nil {
		return errors.Wrap(err, "failed to reconcile poem counters")
	}

	return nil
}

// Delete removes a poem (soft delete).
func (repo *poemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PoemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete poem")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPoemNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPoemDomain converts a GORM PoemModel to a domain Poem entity.
func toPoemDomain(data *model.PoemModel) *entity.Poem {
	if data == nil {
		return nil
	}

	return &entity.Poem{
		ID:            data.ID,
		PoetID:        data.PoetID,
		UserID:        data.UserID,
		GenreID:       data.GenreID,
		TitleUrdu:     data.TitleUrdu,
		TitleRoman:    data.TitleRoman,
		ContentUrdu:   data.ContentUrdu,
		ContentRoman:  data.ContentRoman,
		AudioURL:      data.AudioURL,
		Status:        entity.PoemStatus(data.Status),
		LikesCount:    data.LikesCount,
		RatingsCount:  data.RatingsCount,
		AverageRating: data.AverageRating,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromPoemDomain converts a domain Poem entity to a GORM PoemModel.
func fromPoemDomain(data *entity.Poem) *model.PoemModel {
	if data == nil {
		return nil
	}

	return &model.PoemModel{
		ID:            data.ID,
		PoetID:        data.PoetID,
		UserID:        data.UserID,
		GenreID:       data.GenreID,
		TitleUrdu:     data.TitleUrdu,
		TitleRoman:    data.TitleRoman,
		ContentUrdu:   data.ContentUrdu,
		ContentRoman:  data.ContentRoman,
		AudioURL:      data.AudioURL,
		Status:        data.Status.String(),
		LikesCount:    data.LikesCount,
		RatingsCount:  data.RatingsCount,
		AverageRating: data.AverageRating,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
