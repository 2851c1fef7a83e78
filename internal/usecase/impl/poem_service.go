package impl

import (
	"context"
	"log/slog"

	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	"sukhan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type poemService struct {
	txManager repository.TransactionManager
	poemRepo  repository.PoemRepository
	poetRepo  repository.PoetRepository
	genreRepo repository.GenreRepository
	settings  usecase.SettingsUsecase
	logger    *slog.Logger
}

// PoemServiceParams holds dependencies for PoemService, injected by Fx.
type PoemServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PoemRepo  repository.PoemRepository
	PoetRepo  repository.PoetRepository
	GenreRepo repository.GenreRepository
	Settings  usecase.SettingsUsecase
	Logger    *slog.Logger
}

// NewPoemService creates a new poem service instance.
func NewPoemService(params PoemServiceParams) usecase.PoemUsecase {
	return &poemService{
		txManager: params.TxManager,
		poemRepo:  params.PoemRepo,
		poetRepo:  params.PoetRepo,
		genreRepo: params.GenreRepo,
		settings:  params.Settings,
		logger:    params.Logger,
	}
}

// SubmitPoem creates a poem under the user's poet profile. The initial
// status is decided here, once, from the settings snapshot; later
// settings changes never touch poems already submitted.
func (s *poemService) SubmitPoem(ctx context.Context, userID uuid.UUID, input usecase.PoemInput) (*entity.Poem, error) {
	snapshot, err := s.settings.ModerationSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot.MaintenanceMode {
		return nil, domainerrors.ErrMaintenanceMode
	}

	poet, err := s.poetRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPoetNotFound) {
			return nil, domainerrors.ErrForbidden.WrapMessage("a poet profile is required to submit poetry")
		}

		return nil, errors.Wrap(err, "failed to load poet profile")
	}

	genreExists, err := s.genreRepo.Exists(ctx, input.GenreID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check genre")
	}
	if !genreExists {
		return nil, domainerrors.ErrGenreNotFound
	}

	status := entity.PoemStatusPending
	if snapshot.AutoApprovePoetry {
		status = entity.PoemStatusPublished
	}

	poem := &entity.Poem{
		ID:           uuid.New(),
		PoetID:       poet.ID,
		UserID:       userID,
		GenreID:      input.GenreID,
		TitleUrdu:    input.TitleUrdu,
		TitleRoman:   input.TitleRoman,
		ContentUrdu:  input.ContentUrdu,
		ContentRoman: input.ContentRoman,
		AudioURL:     input.AudioURL,
		Status:       status,
	}

	if err := s.poemRepo.Create(ctx, poem); err != nil {
		return nil, err
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "poem submitted",
		slog.String("poemID", poem.ID.String()),
		slog.String("poetID", poet.ID.String()),
		slog.String("status", poem.Status.String()),
	)

	return poem, nil
}

// GetPoem returns a poem by ID. Unpublished poems are hidden unless the
// caller is the author or carries includeHidden.
func (s *poemService) GetPoem(ctx context.Context, id uuid.UUID, includeHidden bool) (*entity.Poem, error) {
	poem, err := s.poemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPoemNotFound) {
			return nil, domainerrors.ErrPoetryNotFound
		}

		return nil, errors.Wrap(err, "failed to load poem")
	}

	if !poem.IsPublished() && !includeHidden {
		return nil, domainerrors.ErrPoetryNotFound
	}

	return poem, nil
}

// ListPoems returns published poems matching the filter. A genre slug in
// the filter is resolved to its ID here, and an unset limit falls back
// to the operator-tuned featured poetry limit.
func (s *poemService) ListPoems(ctx context.Context, filter repository.PoemListFilter) ([]*entity.Poem, error) {
	if filter.Limit <= 0 {
		snapshot, err := s.settings.ModerationSnapshot(ctx)
		if err != nil {
			return nil, err
		}

		filter.Limit = snapshot.FeaturedPoetryLimit
	}

	if filter.GenreSlug != "" && filter.GenreID == nil {
		genre, err := s.genreRepo.FindBySlug(ctx, filter.GenreSlug)
		if err != nil {
			if errors.Is(err, repository.ErrGenreNotFound) {
				return nil, domainerrors.ErrGenreNotFound
			}

			return nil, errors.Wrap(err, "failed to resolve genre slug")
		}

		filter.GenreID = &genre.ID
	}

	return s.poemRepo.ListPublished(ctx, filter)
}

// ListAllPoems returns every poem for the admin back office.
func (s *poemService) ListAllPoems(ctx context.Context) ([]*entity.Poem, error) {
	return s.poemRepo.ListAll(ctx)
}

// ApprovePoem moves a poem to published. Approval is idempotent and
// lifts a rejection.
func (s *poemService) ApprovePoem(ctx context.Context, actor usecase.Actor, poemID uuid.UUID) (*entity.Poem, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrForbidden
	}

	return s.transition(ctx, poemID, func(current entity.PoemStatus) (entity.PoemStatus, error) {
		return entity.PoemStatusPublished, nil
	})
}

// RejectPoem moves a poem to rejected. Rejection is idempotent.
func (s *poemService) RejectPoem(ctx context.Context, actor usecase.Actor, poemID uuid.UUID) (*entity.Poem, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrForbidden
	}

	return s.transition(ctx, poemID, func(current entity.PoemStatus) (entity.PoemStatus, error) {
		return entity.PoemStatusRejected, nil
	})
}

// TogglePoemVisibility flips pending to published and published back to
// pending. A rejected poem stays rejected until an explicit approval, so
// the toggle refuses it instead of silently republishing.
func (s *poemService) TogglePoemVisibility(ctx context.Context, actor usecase.Actor, poemID uuid.UUID) (*entity.Poem, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrForbidden
	}

	return s.transition(ctx, poemID, func(current entity.PoemStatus) (entity.PoemStatus, error) {
		switch current {
		case entity.PoemStatusPending:
			return entity.PoemStatusPublished, nil
		case entity.PoemStatusPublished:
			return entity.PoemStatusPending, nil
		default:
			return "", domainerrors.ErrRejectedPoemToggle
		}
	})
}

// transition loads the poem, computes the next status and persists it in
// one transaction so concurrent moderation actions serialize cleanly.
func (s *poemService) transition(ctx context.Context, poemID uuid.UUID, next func(entity.PoemStatus) (entity.PoemStatus, error)) (*entity.Poem, error) {
	var result *entity.Poem

	err := s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		poem, err := repos.PoemRepo().FindByID(ctx, poemID)
		if err != nil {
			if errors.Is(err, repository.ErrPoemNotFound) {
				return domainerrors.ErrPoetryNotFound
			}

			return errors.Wrap(err, "failed to load poem")
		}

		target, err := next(poem.Status)
		if err != nil {
			return err
		}

		if target != poem.Status {
			if err := repos.PoemRepo().SetStatus(ctx, poemID, target); err != nil {
				return errors.Wrap(err, "failed to set poem status")
			}

			s.logger.LogAttrs(ctx, slog.LevelInfo, "poem status changed",
				slog.String("poemID", poemID.String()),
				slog.String("from", poem.Status.String()),
				slog.String("to", target.String()),
			)

			poem.Status = target
		}

		result = poem

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// DeletePoem removes the poem and every engagement fact referencing it.
func (s *poemService) DeletePoem(ctx context.Context, actor usecase.Actor, poemID uuid.UUID) error {
	if !actor.IsAdmin {
		return domainerrors.ErrForbidden
	}

	return s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		exists, err := repos.PoemRepo().Exists(ctx, poemID)
		if err != nil {
			return errors.Wrap(err, "failed to check poem existence")
		}
		if !exists {
			return domainerrors.ErrPoetryNotFound
		}

		if err := repos.LikeRepo().DeleteByPoem(ctx, poemID); err != nil {
			return err
		}
		if err := repos.RatingRepo().DeleteByPoem(ctx, poemID); err != nil {
			return err
		}
		if err := repos.SavedPoetryRepo().DeleteByPoem(ctx, poemID); err != nil {
			return err
		}

		return repos.PoemRepo().Delete(ctx, poemID)
	})
}
