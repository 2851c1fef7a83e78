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

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// Create persists a new feedback entry.
func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt
	feedback.UpdatedAt = feedbackM.UpdatedAt

	return nil
}

// FindByID retrieves a feedback entry by its unique ID.
func (repo *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	var feedbackM model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&feedbackM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeedbackNotFound
		}

		return nil, errors.Wrap(err, "failed to find feedback by ID")
	}

	return toFeedbackDomain(&feedbackM), nil
}

// List retrieves feedback entries newest first, filtered and paginated.
func (repo *feedbackRepository) List(ctx context.Context, filter repository.FeedbackListFilter) ([]*entity.Feedback, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.FeedbackModel{})
	if filter.Rating > 0 {
		base = base.Where("rating = ?", filter.Rating)
	}
	if filter.Resolved != nil {
		base = base.Where("is_resolved = ?", *filter.Resolved)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count feedback")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	var feedbackModels []*model.FeedbackModel
	if err := base.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&feedbackModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list feedback")
	}

	entries := make([]*entity.Feedback, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		entries = append(entries, toFeedbackDomain(feedbackM))
	}

	return entries, total, nil
}

// Update persists reply and resolution changes.
func (repo *feedbackRepository) Update(ctx context.Context, feedback *entity.Feedback) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Where("id = ?", feedback.ID).
		Updates(map[string]interface{}{
			"reply":       feedback.Reply,
			"is_resolved": feedback.IsResolved,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update feedback")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

// Delete removes a feedback entry (soft delete).
func (repo *feedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FeedbackModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete feedback")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:         data.ID,
		UserID:     data.UserID,
		Rating:     data.Rating,
		Message:    data.Message,
		Reply:      data.Reply,
		IsResolved: data.IsResolved,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Rating:     data.Rating,
		Message:    data.Message,
		Reply:      data.Reply,
		IsResolved: data.IsResolved,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
