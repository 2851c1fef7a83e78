package usecase

import (
	"context"
	"time"

	"sukhan/internal/domain/repository"
)

// Dashboard is the admin landing payload: headline counts plus the
// engagement leaderboards.
type Dashboard struct {
	Counts        *repository.DashboardCounts  `json:"counts"`
	MostLoved     []*repository.PoemEngagement `json:"mostLoved"`
	MostSaved     []*repository.PoemEngagement `json:"mostSaved"`
	TopRated      []*repository.PoemEngagement `json:"topRated"`
	UserPoetRatio float64                      `json:"userPoetRatio"`
}

// TopPoemsBoard selects which engagement leaderboard to read.
type TopPoemsBoard string

const (
	BoardMostLoved TopPoemsBoard = "loved"
	BoardMostSaved TopPoemsBoard = "saved"
	BoardTopRated  TopPoemsBoard = "rated"
)

// GrowthReport pairs the sign-up and submission series over one window.
type GrowthReport struct {
	Since time.Time                 `json:"since"`
	Users []*repository.GrowthPoint `json:"users"`
	Poems []*repository.GrowthPoint `json:"poems"`
}

// AnalyticsUsecase is the read-only aggregation surface for admins. It
// reads committed data only and never blocks the write path.
type AnalyticsUsecase interface {
	// GetDashboard assembles the admin dashboard.
	GetDashboard(ctx context.Context) (*Dashboard, error)

	// TopPoems returns one engagement leaderboard with a caller-chosen
	// size. A non-positive limit falls back to the dashboard board size.
	TopPoems(ctx context.Context, board TopPoemsBoard, limit int) ([]*repository.PoemEngagement, error)

	// GetGrowth returns daily sign-up and submission counts over the last
	// given number of days.
	GetGrowth(ctx context.Context, days int) (*GrowthReport, error)

	// GetRecentActivity returns the latest engagement events.
	GetRecentActivity(ctx context.Context, limit int) ([]*repository.ActivityEntry, error)
}
