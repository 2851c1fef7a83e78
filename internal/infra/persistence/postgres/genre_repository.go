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

// genreRepository implements the repository.GenreRepository interface.
type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository is the constructor for genreRepository.
func NewGenreRepository(db *gorm.DB) repository.GenreRepository {
	return &genreRepository{
		db: db,
	}
}

// Create persists a new genre.
func (repo *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	genreM := fromGenreDomain(genre)

	if err := repo.db.WithContext(ctx).Create(genreM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateGenre
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create genre")
	}

	genre.ID = genreM.ID
	genre.CreatedAt = genreM.CreatedAt

	return nil
}

// FindByID retrieves a genre by its unique ID.
func (repo *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	var genreM model.GenreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&genreM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGenreNotFound
		}

		return nil, errors.Wrap(err, "failed to find genre by ID")
	}

	return toGenreDomain(&genreM), nil
}

// FindBySlug retrieves a genre by its unique slug.
func (repo *genreRepository) FindBySlug(ctx context.Context, slug string) (*entity.Genre, error) {
	var genreM model.GenreModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&genreM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGenreNotFound
		}

		return nil, errors.Wrap(err, "failed to find genre by slug")
	}

	return toGenreDomain(&genreM), nil
}

// List retrieves all genres ordered by name.
func (repo *genreRepository) List(ctx context.Context) ([]*entity.Genre, error) {
	var genreModels []*model.GenreModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&genreModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list genres")
	}

	genres := make([]*entity.Genre, 0, len(genreModels))
	for _, genreM := range genreModels {
		genres = append(genres, toGenreDomain(genreM))
	}

	return genres, nil
}

// Exists reports whether the genre row is present.
func (repo *genreRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GenreModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check genre existence")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toGenreDomain(data *model.GenreModel) *entity.Genre {
	if data == nil {
		return nil
	}

	return &entity.Genre{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

func fromGenreDomain(data *entity.Genre) *model.GenreModel {
	if data == nil {
		return nil
	}

	return &model.GenreModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
