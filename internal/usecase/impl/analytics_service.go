package impl

import (
	"context"
	"time"

	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	"sukhan/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultBoardSize    = 5
	defaultGrowthWindow = 30
)

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	AnalyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service instance.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo: params.AnalyticsRepo,
	}
}

// GetDashboard assembles the admin dashboard.
func (s *analyticsService) GetDashboard(ctx context.Context) (*usecase.Dashboard, error) {
	counts, err := s.analyticsRepo.DashboardCounts(ctx)
	if err != nil {
		return nil, err
	}

	mostLoved, err := s.analyticsRepo.MostLovedPoems(ctx, defaultBoardSize)
	if err != nil {
		return nil, err
	}

	mostSaved, err := s.analyticsRepo.MostSavedPoems(ctx, defaultBoardSize)
	if err != nil {
		return nil, err
	}

	topRated, err := s.analyticsRepo.TopRatedPoems(ctx, defaultBoardSize)
	if err != nil {
		return nil, err
	}

	ratio := 0.0
	if counts.Poets > 0 {
		ratio = float64(counts.Users) / float64(counts.Poets)
	}

	return &usecase.Dashboard{
		Counts:        counts,
		MostLoved:     mostLoved,
		MostSaved:     mostSaved,
		TopRated:      topRated,
		UserPoetRatio: ratio,
	}, nil
}

// TopPoems returns one engagement leaderboard with a caller-chosen size.
func (s *analyticsService) TopPoems(ctx context.Context, board usecase.TopPoemsBoard, limit int) ([]*repository.PoemEngagement, error) {
	if limit <= 0 {
		limit = defaultBoardSize
	}

	switch board {
	case usecase.BoardMostLoved:
		return s.analyticsRepo.MostLovedPoems(ctx, limit)
	case usecase.BoardMostSaved:
		return s.analyticsRepo.MostSavedPoems(ctx, limit)
	case usecase.BoardTopRated:
		return s.analyticsRepo.TopRatedPoems(ctx, limit)
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown leaderboard")
	}
}

// GetGrowth returns daily sign-up and submission counts over the last
// given number of days.
func (s *analyticsService) GetGrowth(ctx context.Context, days int) (*usecase.GrowthReport, error) {
	if days <= 0 {
		days = defaultGrowthWindow
	}

	since := time.Now().AddDate(0, 0, -days).Truncate(24 * time.Hour)

	users, err := s.analyticsRepo.UserGrowth(ctx, since)
	if err != nil {
		return nil, err
	}

	poems, err := s.analyticsRepo.PoemGrowth(ctx, since)
	if err != nil {
		return nil, err
	}

	return &usecase.GrowthReport{
		Since: since,
		Users: users,
		Poems: poems,
	}, nil
}

// GetRecentActivity returns the latest engagement events.
func (s *analyticsService) GetRecentActivity(ctx context.Context, limit int) ([]*repository.ActivityEntry, error) {
	return s.analyticsRepo.RecentActivity(ctx, limit)
}
