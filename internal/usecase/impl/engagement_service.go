// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	"sukhan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type engagementService struct {
	txManager  repository.TransactionManager
	likeRepo   repository.LikeRepository
	ratingRepo repository.RatingRepository
	followRepo repository.FollowRepository
	savedRepo  repository.SavedPoetryRepository
	logger     *slog.Logger
}

// EngagementServiceParams holds dependencies for EngagementService, injected by Fx.
type EngagementServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	LikeRepo   repository.LikeRepository
	RatingRepo repository.RatingRepository
	FollowRepo repository.FollowRepository
	SavedRepo  repository.SavedPoetryRepository
	Logger     *slog.Logger
}

// NewEngagementService creates a new engagement service instance.
func NewEngagementService(params EngagementServiceParams) usecase.EngagementUsecase {
	return &engagementService{
		txManager:  params.TxManager,
		likeRepo:   params.LikeRepo,
		ratingRepo: params.RatingRepo,
		followRepo: params.FollowRepo,
		savedRepo:  params.SavedRepo,
		logger:     params.Logger,
	}
}

// LikePoem records that the user liked the poem. The fact insert and the
// counter bump commit in one transaction; a duplicate fact makes the
// whole call an idempotent success without touching the counter.
func (s *engagementService) LikePoem(ctx context.Context, userID, poetryID uuid.UUID) (usecase.Outcome, error) {
	outcome := usecase.OutcomeApplied

	err := s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		exists, err := repos.PoemRepo().Exists(ctx, poetryID)
		if err != nil {
			return errors.Wrap(err, "failed to check poem existence")
		}
		if !exists {
			return domainerrors.ErrPoetryNotFound
		}

		// Find first, then create. The unique index catches the race
		// where two requests pass the find at the same time.
		if _, err := repos.LikeRepo().FindByUserAndPoem(ctx, userID, poetryID); err == nil {
			outcome = usecase.OutcomeAlreadyExisted

			return nil
		} else if !errors.Is(err, repository.ErrLikeNotFound) {
			return errors.Wrap(err, "failed to look up existing like")
		}

		like := &entity.Like{
			ID:       uuid.New(),
			UserID:   userID,
			PoetryID: poetryID,
		}

		if err := repos.LikeRepo().Create(ctx, like); err != nil {
			if errors.Is(err, repository.ErrDuplicateLike) {
				outcome = usecase.OutcomeAlreadyExisted

				return nil
			}

			return errors.Wrap(err, "failed to create like")
		}

		return repos.PoemRepo().AdjustLikesCount(ctx, poetryID, 1)
	})
	if err != nil {
		return "", err
	}

	return outcome, nil
}

// UnlikePoem removes the like fact if present. Absence is a silent
// no-op; the target poem is never checked, so unliking a deleted poem
// still succeeds.
func (s *engagementService) UnlikePoem(ctx context.Context, userID, poetryID uuid.UUID) (usecase.Outcome, error) {
	outcome := usecase.OutcomeNoop

	err := s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		deleted, err := repos.LikeRepo().DeleteByUserAndPoem(ctx, userID, poetryID)
		if err != nil {
			return errors.Wrap(err, "failed to delete like")
		}
		if !deleted {
			return nil
		}

		outcome = usecase.OutcomeApplied

		return repos.PoemRepo().AdjustLikesCount(ctx, poetryID, -1)
	})
	if err != nil {
		return "", err
	}

	return outcome, nil
}

// RatePoem records or overwrites the user's score. The ratings counter
// moves only on first-time creation; the average is recomputed from the
// facts in both cases, inside the same transaction.
func (s *engagementService) RatePoem(ctx context.Context, userID, poetryID uuid.UUID, score int) (*usecase.RatingResult, error) {
	rating := &entity.Rating{Score: score}
	if !rating.ValidScore() {
		return nil, domainerrors.ErrInvalidRatingScore
	}

	result := &usecase.RatingResult{Score: score}

	err := s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		exists, err := repos.PoemRepo().Exists(ctx, poetryID)
		if err != nil {
			return errors.Wrap(err, "failed to check poem existence")
		}
		if !exists {
			return domainerrors.ErrPoetryNotFound
		}

		existing, err := repos.RatingRepo().FindByUserAndPoem(ctx, userID, poetryID)
		switch {
		case err == nil:
			result.Outcome = usecase.OutcomeAlreadyExisted

			if existing.Score != score {
				if err := repos.RatingRepo().UpdateScore(ctx, existing.ID, score); err != nil {
					return errors.Wrap(err, "failed to update rating score")
				}
			}
		case errors.Is(err, repository.ErrRatingNotFound):
			result.Outcome = usecase.OutcomeApplied

			fact := &entity.Rating{
				ID:       uuid.New(),
				UserID:   userID,
				PoetryID: poetryID,
				Score:    score,
			}

			if createErr := repos.RatingRepo().Create(ctx, fact); createErr != nil {
				if !errors.Is(createErr, repository.ErrDuplicateRating) {
					return errors.Wrap(createErr, "failed to create rating")
				}

				// Lost the race against a concurrent first rating by the
				// same user. Fall back to an overwrite.
				result.Outcome = usecase.OutcomeAlreadyExisted

				raced, findErr := repos.RatingRepo().FindByUserAndPoem(ctx, userID, poetryID)
				if findErr != nil {
					return errors.Wrap(findErr, "failed to reload rating after duplicate")
				}
				if updateErr := repos.RatingRepo().UpdateScore(ctx, raced.ID, score); updateErr != nil {
					return errors.Wrap(updateErr, "failed to update rating score")
				}
			}

			if result.Outcome == usecase.OutcomeApplied {
				if err := repos.PoemRepo().AdjustRatingsCount(ctx, poetryID, 1); err != nil {
					return err
				}
			}
		default:
			return errors.Wrap(err, "failed to look up existing rating")
		}

		if err := repos.PoemRepo().RecomputeAverageRating(ctx, poetryID); err != nil {
			return err
		}

		poem, err := repos.PoemRepo().FindByID(ctx, poetryID)
		if err != nil {
			return errors.Wrap(err, "failed to reload poem after rating")
		}

		result.AverageRating = poem.AverageRating
		result.RatingsCount = poem.RatingsCount

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RemoveRating deletes the user's rating fact if present.
func (s *engagementService) RemoveRating(ctx context.Context, userID, poetryID uuid.UUID) (usecase.Outcome, error) {
	outcome := usecase.OutcomeNoop

	err := s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		deleted, err := repos.RatingRepo().DeleteByUserAndPoem(ctx, userID, poetryID)
		if err != nil {
			return errors.Wrap(err, "failed to delete rating")
		}
		if !deleted {
			return nil
		}

		outcome = usecase.OutcomeApplied

		if err := repos.PoemRepo().AdjustRatingsCount(ctx, poetryID, -1); err != nil {
			return err
		}

		return repos.PoemRepo().RecomputeAverageRating(ctx, poetryID)
	})
	if err != nil {
		return "", err
	}

	return outcome, nil
}

// FollowPoet records that the user follows the poet.
func (s *engagementService) FollowPoet(ctx context.Context, userID, poetID uuid.UUID) (usecase.Outcome, error) {
	outcome := usecase.OutcomeApplied

	err := s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		exists, err := repos.PoetRepo().Exists(ctx, poetID)
		if err != nil {
			return errors.Wrap(err, "failed to check poet existence")
		}
		if !exists {
			return domainerrors.ErrPoetNotFound
		}

		if _, err := repos.FollowRepo().FindByUserAndPoet(ctx, userID, poetID); err == nil {
			outcome = usecase.OutcomeAlreadyExisted

			return nil
		} else if !errors.Is(err, repository.ErrFollowNotFound) {
			return errors.Wrap(err, "failed to look up existing follow")
		}

		follow := &entity.Follow{
			ID:     uuid.New(),
			UserID: userID,
			PoetID: poetID,
		}

		if err := repos.FollowRepo().Create(ctx, follow); err != nil {
			if errors.Is(err, repository.ErrDuplicateFollow) {
				outcome = usecase.OutcomeAlreadyExisted

				return nil
			}

			return errors.Wrap(err, "failed to create follow")
		}

		return repos.PoetRepo().AdjustFollowersCount(ctx, poetID, 1)
	})
	if err != nil {
		return "", err
	}

	return outcome, nil
}

// UnfollowPoet removes the follow fact if present.
func (s *engagementService) UnfollowPoet(ctx context.Context, userID, poetID uuid.UUID) (usecase.Outcome, error) {
	outcome := usecase.OutcomeNoop

	err := s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		deleted, err := repos.FollowRepo().DeleteByUserAndPoet(ctx, userID, poetID)
		if err != nil {
			return errors.Wrap(err, "failed to delete follow")
		}
		if !deleted {
			return nil
		}

		outcome = usecase.OutcomeApplied

		return repos.PoetRepo().AdjustFollowersCount(ctx, poetID, -1)
	})
	if err != nil {
		return "", err
	}

	return outcome, nil
}

// SavePoem records that the user saved the poem. Saves carry no
// denormalized counter, so there is no adjustment step.
func (s *engagementService) SavePoem(ctx context.Context, userID, poetryID uuid.UUID) (usecase.Outcome, error) {
	outcome := usecase.OutcomeApplied

	err := s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		exists, err := repos.PoemRepo().Exists(ctx, poetryID)
		if err != nil {
			return errors.Wrap(err, "failed to check poem existence")
		}
		if !exists {
			return domainerrors.ErrPoetryNotFound
		}

		if _, err := repos.SavedPoetryRepo().FindByUserAndPoem(ctx, userID, poetryID); err == nil {
			outcome = usecase.OutcomeAlreadyExisted

			return nil
		} else if !errors.Is(err, repository.ErrSavedPoetryNotFound) {
			return errors.Wrap(err, "failed to look up existing save")
		}

		saved := &entity.SavedPoetry{
			ID:       uuid.New(),
			UserID:   userID,
			PoetryID: poetryID,
		}

		if err := repos.SavedPoetryRepo().Create(ctx, saved); err != nil {
			if errors.Is(err, repository.ErrDuplicateSavedPoetry) {
				outcome = usecase.OutcomeAlreadyExisted

				return nil
			}

			return errors.Wrap(err, "failed to create save")
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return outcome, nil
}

// UnsavePoem removes the saved fact if present.
func (s *engagementService) UnsavePoem(ctx context.Context, userID, poetryID uuid.UUID) (usecase.Outcome, error) {
	deleted, err := s.savedRepo.DeleteByUserAndPoem(ctx, userID, poetryID)
	if err != nil {
		return "", errors.Wrap(err, "failed to delete save")
	}

	if deleted {
		return usecase.OutcomeApplied, nil
	}

	return usecase.OutcomeNoop, nil
}

// CheckLike reports whether the like fact exists.
func (s *engagementService) CheckLike(ctx context.Context, userID, poetryID uuid.UUID) (bool, error) {
	if _, err := s.likeRepo.FindByUserAndPoem(ctx, userID, poetryID); err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to look up like")
	}

	return true, nil
}

// CheckRating reports the user's score for the poem, if any.
func (s *engagementService) CheckRating(ctx context.Context, userID, poetryID uuid.UUID) (int, bool, error) {
	rating, err := s.ratingRepo.FindByUserAndPoem(ctx, userID, poetryID)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return 0, false, nil
		}

		return 0, false, errors.Wrap(err, "failed to look up rating")
	}

	return rating.Score, true, nil
}

// CheckFollow reports whether the follow fact exists.
func (s *engagementService) CheckFollow(ctx context.Context, userID, poetID uuid.UUID) (bool, error) {
	if _, err := s.followRepo.FindByUserAndPoet(ctx, userID, poetID); err != nil {
		if errors.Is(err, repository.ErrFollowNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to look up follow")
	}

	return true, nil
}

// CheckSaved reports whether the saved fact exists.
func (s *engagementService) CheckSaved(ctx context.Context, userID, poetryID uuid.UUID) (bool, error) {
	if _, err := s.savedRepo.FindByUserAndPoem(ctx, userID, poetryID); err != nil {
		if errors.Is(err, repository.ErrSavedPoetryNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to look up save")
	}

	return true, nil
}

// GetUserEngagement returns the user's complete engagement state.
func (s *engagementService) GetUserEngagement(ctx context.Context, userID uuid.UUID) (*usecase.UserEngagement, error) {
	likes, err := s.likeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list likes")
	}

	saves, err := s.savedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saves")
	}

	follows, err := s.followRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list follows")
	}

	ratings, err := s.ratingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	engagement := &usecase.UserEngagement{
		LikedPoemIDs:    make([]uuid.UUID, 0, len(likes)),
		SavedPoemIDs:    make([]uuid.UUID, 0, len(saves)),
		FollowedPoetIDs: make([]uuid.UUID, 0, len(follows)),
		Ratings:         ratings,
	}

	for _, like := range likes {
		engagement.LikedPoemIDs = append(engagement.LikedPoemIDs, like.PoetryID)
	}
	for _, saved := range saves {
		engagement.SavedPoemIDs = append(engagement.SavedPoemIDs, saved.PoetryID)
	}
	for _, follow := range follows {
		engagement.FollowedPoetIDs = append(engagement.FollowedPoetIDs, follow.PoetID)
	}

	return engagement, nil
}

// ReconcileCounters recomputes every denormalized counter from the live
// facts in one transaction.
func (s *engagementService) ReconcileCounters(ctx context.Context) error {
	start := time.Now()

	err := s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		if err := repos.PoemRepo().ReconcileCounters(ctx); err != nil {
			return err
		}

		return repos.PoetRepo().ReconcileFollowerCounts(ctx)
	})
	if err != nil {
		return err
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "counter reconcile completed",
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}
