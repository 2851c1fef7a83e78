package impl

import (
	"context"

	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	"sukhan/internal/usecase"
	"sukhan/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type genreService struct {
	genreRepo repository.GenreRepository
}

// GenreServiceParams holds dependencies for GenreService, injected by Fx.
type GenreServiceParams struct {
	fx.In

	GenreRepo repository.GenreRepository
}

// NewGenreService creates a new genre service instance.
func NewGenreService(params GenreServiceParams) usecase.GenreUsecase {
	return &genreService{
		genreRepo: params.GenreRepo,
	}
}

// ListGenres returns all genres ordered by name.
func (s *genreService) ListGenres(ctx context.Context) ([]*entity.Genre, error) {
	return s.genreRepo.List(ctx)
}

// GetGenreBySlug returns a genre by slug.
func (s *genreService) GetGenreBySlug(ctx context.Context, slug string) (*entity.Genre, error) {
	genre, err := s.genreRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return nil, domainerrors.ErrGenreNotFound
		}

		return nil, errors.Wrap(err, "failed to load genre")
	}

	return genre, nil
}

// CreateGenre adds a taxonomy entry.
func (s *genreService) CreateGenre(ctx context.Context, input usecase.GenreInput) (*entity.Genre, error) {
	slug := util.Slugify(input.Name)
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name does not produce a valid slug")
	}

	genre := &entity.Genre{
		ID:          uuid.New(),
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
	}

	if err := s.genreRepo.Create(ctx, genre); err != nil {
		if errors.Is(err, repository.ErrDuplicateGenre) {
			return nil, domainerrors.ErrConflict.WrapMessage("genre already exists")
		}

		return nil, err
	}

	return genre, nil
}
