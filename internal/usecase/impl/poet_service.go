package impl

import (
	"context"
	"fmt"

	"sukhan/config"
	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	"sukhan/internal/domain/service"
	"sukhan/internal/usecase"
	"sukhan/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxSlugAttempts bounds the collision suffix search.
const maxSlugAttempts = 50

type poetService struct {
	txManager     repository.TransactionManager
	poetRepo      repository.PoetRepository
	settings      usecase.SettingsUsecase
	qrcodeService service.QRCodeService
	baseURL       string
}

// PoetServiceParams holds dependencies for PoetService, injected by Fx.
type PoetServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PoetRepo      repository.PoetRepository
	Settings      usecase.SettingsUsecase
	QRCodeService service.QRCodeService
	Config        *config.Config
}

// NewPoetService creates a new poet service instance.
func NewPoetService(params PoetServiceParams) usecase.PoetUsecase {
	baseURL := ""
	if params.Config.Site != nil {
		baseURL = params.Config.Site.BaseURL
	}

	return &poetService{
		txManager:     params.TxManager,
		poetRepo:      params.PoetRepo,
		settings:      params.Settings,
		qrcodeService: params.QRCodeService,
		baseURL:       baseURL,
	}
}

// RegisterPoet creates a poet profile for the user.
func (s *poetService) RegisterPoet(ctx context.Context, userID uuid.UUID, input usecase.PoetInput) (*entity.Poet, error) {
	snapshot, err := s.settings.ModerationSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot.MaintenanceMode {
		return nil, domainerrors.ErrMaintenanceMode
	}
	if !snapshot.PoetRegistrationEnabled {
		return nil, domainerrors.ErrPoetRegistrationClosed
	}

	if _, err := s.poetRepo.FindByUser(ctx, userID); err == nil {
		return nil, domainerrors.ErrPoetProfileExists
	} else if !errors.Is(err, repository.ErrPoetNotFound) {
		return nil, errors.Wrap(err, "failed to check existing poet profile")
	}

	slug, err := s.deriveSlug(ctx, input.NameRoman)
	if err != nil {
		return nil, err
	}

	poet := &entity.Poet{
		ID:          uuid.New(),
		UserID:      userID,
		NameRoman:   input.NameRoman,
		NameUrdu:    input.NameUrdu,
		Takhallus:   input.Takhallus,
		Slug:        slug,
		Bio:         input.Bio,
		ImageURL:    input.ImageURL,
		City:        input.City,
		Country:     input.Country,
		DateOfBirth: input.DateOfBirth,
	}

	if err := s.poetRepo.Create(ctx, poet); err != nil {
		if errors.Is(err, repository.ErrDuplicatePoet) {
			return nil, domainerrors.ErrPoetProfileExists
		}

		return nil, err
	}

	return poet, nil
}

// GetPoet returns a poet by ID.
func (s *poetService) GetPoet(ctx context.Context, id uuid.UUID) (*entity.Poet, error) {
	poet, err := s.poetRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPoetNotFound) {
			return nil, domainerrors.ErrPoetNotFound
		}

		return nil, errors.Wrap(err, "failed to load poet")
	}

	return poet, nil
}

// GetPoetBySlug returns a poet by slug.
func (s *poetService) GetPoetBySlug(ctx context.Context, slug string) (*entity.Poet, error) {
	poet, err := s.poetRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrPoetNotFound) {
			return nil, domainerrors.ErrPoetNotFound
		}

		return nil, errors.Wrap(err, "failed to load poet by slug")
	}

	return poet, nil
}

// GetOwnPoet returns the poet profile owned by the user, if any.
func (s *poetService) GetOwnPoet(ctx context.Context, userID uuid.UUID) (*entity.Poet, error) {
	poet, err := s.poetRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPoetNotFound) {
			return nil, domainerrors.ErrPoetNotFound
		}

		return nil, errors.Wrap(err, "failed to load own poet profile")
	}

	return poet, nil
}

// ListPoets returns published poets.
func (s *poetService) ListPoets(ctx context.Context, sort repository.PoetSort, limit int) ([]*entity.Poet, error) {
	return s.poetRepo.ListPublished(ctx, sort, limit)
}

// ListAllPoets returns every poet for the admin back office.
func (s *poetService) ListAllPoets(ctx context.Context) ([]*entity.Poet, error) {
	return s.poetRepo.ListAll(ctx)
}

// UpdatePoet applies profile changes. Only the owning user may edit.
// The slug is immutable after registration so shared links keep working.
func (s *poetService) UpdatePoet(ctx context.Context, userID, poetID uuid.UUID, input usecase.PoetInput) (*entity.Poet, error) {
	poet, err := s.GetPoet(ctx, poetID)
	if err != nil {
		return nil, err
	}

	if poet.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	poet.NameRoman = input.NameRoman
	poet.NameUrdu = input.NameUrdu
	poet.Takhallus = input.Takhallus
	poet.Bio = input.Bio
	poet.ImageURL = input.ImageURL
	poet.City = input.City
	poet.Country = input.Country
	poet.DateOfBirth = input.DateOfBirth

	if err := s.poetRepo.Update(ctx, poet); err != nil {
		return nil, errors.Wrap(err, "failed to update poet")
	}

	return poet, nil
}

// SetPoetPublished toggles poet visibility.
func (s *poetService) SetPoetPublished(ctx context.Context, actor usecase.Actor, poetID uuid.UUID, published bool) error {
	if !actor.IsAdmin {
		return domainerrors.ErrForbidden
	}

	if err := s.poetRepo.SetPublished(ctx, poetID, published); err != nil {
		if errors.Is(err, repository.ErrPoetNotFound) {
			return domainerrors.ErrPoetNotFound
		}

		return errors.Wrap(err, "failed to set poet visibility")
	}

	return nil
}

// DeletePoet removes the poet, its poems and every engagement fact
// referencing them, in one transaction.
func (s *poetService) DeletePoet(ctx context.Context, actor usecase.Actor, poetID uuid.UUID) error {
	if !actor.IsAdmin {
		return domainerrors.ErrForbidden
	}

	return s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		if _, err := repos.PoetRepo().FindByID(ctx, poetID); err != nil {
			if errors.Is(err, repository.ErrPoetNotFound) {
				return domainerrors.ErrPoetNotFound
			}

			return errors.Wrap(err, "failed to load poet")
		}

		return cascadeDeletePoet(ctx, repos, poetID)
	})
}

// cascadeDeletePoet removes the poet's poems, the engagement facts
// referencing them, the follow edges and finally the poet row itself.
// Callers run it inside a transaction; user deletion shares it so a
// deleted account never leaves its poet profile behind.
func cascadeDeletePoet(ctx context.Context, repos repository.RepositoryFactory, poetID uuid.UUID) error {
	poemIDs, err := repos.PoemRepo().ListByPoet(ctx, poetID)
	if err != nil {
		return err
	}

	for _, poemID := range poemIDs {
		if err := repos.LikeRepo().DeleteByPoem(ctx, poemID); err != nil {
			return err
		}
		if err := repos.RatingRepo().DeleteByPoem(ctx, poemID); err != nil {
			return err
		}
		if err := repos.SavedPoetryRepo().DeleteByPoem(ctx, poemID); err != nil {
			return err
		}
		if err := repos.PoemRepo().Delete(ctx, poemID); err != nil {
			return err
		}
	}

	if err := repos.FollowRepo().DeleteByPoet(ctx, poetID); err != nil {
		return err
	}

	return repos.PoetRepo().Delete(ctx, poetID)
}

// ShareQR renders a QR code pointing at the poet's public page.
func (s *poetService) ShareQR(ctx context.Context, slug string) ([]byte, error) {
	poet, err := s.GetPoetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/poets/%s", s.baseURL, poet.Slug)

	return s.qrcodeService.GenerateShareQR(url)
}

// deriveSlug turns a roman name into a unique slug, appending a numeric
// suffix while the base is taken.
func (s *poetService) deriveSlug(ctx context.Context, nameRoman string) (string, error) {
	base := util.Slugify(nameRoman)
	if base == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("name does not produce a valid slug")
	}

	for n := 0; n < maxSlugAttempts; n++ {
		candidate := util.SlugWithSuffix(base, n)

		taken, err := s.poetRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug availability")
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", domainerrors.ErrConflict.WrapMessage("could not find a free slug")
}
