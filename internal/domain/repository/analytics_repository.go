package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DashboardCounts holds the headline totals for the admin dashboard.
type DashboardCounts struct {
	Users          int64 `json:"users"`
	Poets          int64 `json:"poets"`
	Poems          int64 `json:"poems"`
	PendingPoems   int64 `json:"pendingPoems"`
	PublishedPoems int64 `json:"publishedPoems"`
	RejectedPoems  int64 `json:"rejectedPoems"`
	Genres         int64 `json:"genres"`
	Feedback       int64 `json:"feedback"`

	// Distinct accounts with a login recorded since midnight.
	ActiveUsersToday int64 `json:"activeUsersToday"`
	ActivePoetsToday int64 `json:"activePoetsToday"`
}

// PoemEngagement is a poem row joined with one aggregated engagement
// figure, used for the most-loved and most-saved boards.
type PoemEngagement struct {
	PoetryID  uuid.UUID `json:"poetryId"`
	TitleEn   string    `json:"titleEn"`
	TitleUr   string    `json:"titleUr"`
	Slug      string    `json:"slug"`
	PoetName  string    `json:"poetName"`
	Count     int64     `json:"count"`
	AvgRating float64   `json:"avgRating"`
}

// GrowthPoint is one day's worth of sign-ups or submissions.
type GrowthPoint struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

// ActivityEntry is a recent engagement event for the activity feed.
type ActivityEntry struct {
	Kind      string    `json:"kind"`
	UserName  string    `json:"userName"`
	PoemTitle string    `json:"poemTitle"`
	CreatedAt time.Time `json:"createdAt"`
}

// AnalyticsRepository is the read-only aggregation surface. It never
// mutates state and reads committed data only, so its queries run
// outside the transaction manager.
type AnalyticsRepository interface {
	// DashboardCounts returns the headline totals.
	DashboardCounts(ctx context.Context) (*DashboardCounts, error)

	// MostLovedPoems returns published poems ordered by like facts.
	MostLovedPoems(ctx context.Context, limit int) ([]*PoemEngagement, error)

	// MostSavedPoems returns published poems ordered by saved facts.
	MostSavedPoems(ctx context.Context, limit int) ([]*PoemEngagement, error)

	// TopRatedPoems returns published poems ordered by average rating,
	// ties broken by ratings count.
	TopRatedPoems(ctx context.Context, limit int) ([]*PoemEngagement, error)

	// UserGrowth returns daily sign-up counts since the given time.
	UserGrowth(ctx context.Context, since time.Time) ([]*GrowthPoint, error)

	// PoemGrowth returns daily submission counts since the given time.
	PoemGrowth(ctx context.Context, since time.Time) ([]*GrowthPoint, error)

	// RecentActivity returns the latest engagement events across likes,
	// ratings and follows.
	RecentActivity(ctx context.Context, limit int) ([]*ActivityEntry, error)
}
