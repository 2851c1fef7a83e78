package impl

import (
	"context"
	"testing"

	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	mockRepo "sukhan/internal/mocks/repository"
	"sukhan/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGenreService(t *testing.T) (usecase.GenreUsecase, *mockRepo.MockGenreRepository) {
	t.Helper()

	repo := mockRepo.NewMockGenreRepository(t)
	service := NewGenreService(GenreServiceParams{GenreRepo: repo})

	return service, repo
}

func TestGenreService_CreateGenre_DerivesSlug(t *testing.T) {
	service, repo := newGenreService(t)

	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(genre *entity.Genre) bool {
			return genre.Slug == "sher-o-shayari" && genre.Name == "Sher o Shayari"
		})).
		Return(nil)

	genre, err := service.CreateGenre(ctx, usecase.GenreInput{Name: "Sher o Shayari"})
	require.NoError(t, err)
	assert.Equal(t, "sher-o-shayari", genre.Slug)
}

func TestGenreService_CreateGenre_Duplicate(t *testing.T) {
	service, repo := newGenreService(t)

	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Genre")).
		Return(repository.ErrDuplicateGenre)

	_, err := service.CreateGenre(ctx, usecase.GenreInput{Name: "Ghazal"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestGenreService_CreateGenre_UnsluggableName(t *testing.T) {
	service, _ := newGenreService(t)

	_, err := service.CreateGenre(context.Background(), usecase.GenreInput{Name: "غزل"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGenreService_GetGenreBySlug_Missing(t *testing.T) {
	service, repo := newGenreService(t)

	ctx := context.Background()

	repo.EXPECT().FindBySlug(ctx, "marsiya").
		Return(nil, repository.ErrGenreNotFound)

	_, err := service.GetGenreBySlug(ctx, "marsiya")
	assert.ErrorIs(t, err, domainerrors.ErrGenreNotFound)
}
