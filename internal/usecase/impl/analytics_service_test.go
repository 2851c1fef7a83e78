package impl

import (
	"context"
	"testing"
	"time"

	"sukhan/internal/domain/repository"
	mockRepo "sukhan/internal/mocks/repository"
	"sukhan/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnalyticsService(t *testing.T) (usecase.AnalyticsUsecase, *mockRepo.MockAnalyticsRepository) {
	t.Helper()

	repo := mockRepo.NewMockAnalyticsRepository(t)
	service := NewAnalyticsService(AnalyticsServiceParams{AnalyticsRepo: repo})

	return service, repo
}

func TestAnalyticsService_GetDashboard_ComputesRatio(t *testing.T) {
	service, repo := newAnalyticsService(t)

	ctx := context.Background()

	repo.EXPECT().DashboardCounts(ctx).
		Return(&repository.DashboardCounts{Users: 40, Poets: 8, Poems: 60}, nil)
	repo.EXPECT().MostLovedPoems(ctx, defaultBoardSize).
		Return([]*repository.PoemEngagement{{TitleEn: "Dil-e-Nadaan", Count: 12}}, nil)
	repo.EXPECT().MostSavedPoems(ctx, defaultBoardSize).
		Return([]*repository.PoemEngagement{}, nil)
	repo.EXPECT().TopRatedPoems(ctx, defaultBoardSize).
		Return([]*repository.PoemEngagement{}, nil)

	dashboard, err := service.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5.0, dashboard.UserPoetRatio)
	assert.Len(t, dashboard.MostLoved, 1)
}

func TestAnalyticsService_GetDashboard_ZeroPoets(t *testing.T) {
	service, repo := newAnalyticsService(t)

	ctx := context.Background()

	repo.EXPECT().DashboardCounts(ctx).
		Return(&repository.DashboardCounts{Users: 5, Poets: 0}, nil)
	repo.EXPECT().MostLovedPoems(ctx, defaultBoardSize).Return(nil, nil)
	repo.EXPECT().MostSavedPoems(ctx, defaultBoardSize).Return(nil, nil)
	repo.EXPECT().TopRatedPoems(ctx, defaultBoardSize).Return(nil, nil)

	dashboard, err := service.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Zero(t, dashboard.UserPoetRatio)
}

func TestAnalyticsService_TopPoems_SelectsBoard(t *testing.T) {
	service, repo := newAnalyticsService(t)

	ctx := context.Background()

	repo.EXPECT().MostSavedPoems(ctx, 12).
		Return([]*repository.PoemEngagement{{TitleEn: "Bol", Count: 7}}, nil)

	poems, err := service.TopPoems(ctx, usecase.BoardMostSaved, 12)
	require.NoError(t, err)
	require.Len(t, poems, 1)
	assert.Equal(t, "Bol", poems[0].TitleEn)
}

func TestAnalyticsService_TopPoems_DefaultsLimit(t *testing.T) {
	service, repo := newAnalyticsService(t)

	ctx := context.Background()

	repo.EXPECT().MostLovedPoems(ctx, defaultBoardSize).
		Return([]*repository.PoemEngagement{}, nil)

	_, err := service.TopPoems(ctx, usecase.BoardMostLoved, 0)
	require.NoError(t, err)
}

func TestAnalyticsService_TopPoems_UnknownBoard(t *testing.T) {
	service, _ := newAnalyticsService(t)

	_, err := service.TopPoems(context.Background(), "viral", 5)
	assert.Error(t, err)
}

func TestAnalyticsService_GetGrowth_DefaultsWindow(t *testing.T) {
	service, repo := newAnalyticsService(t)

	ctx := context.Background()

	sinceMatches := func(since time.Time) bool {
		expected := time.Now().AddDate(0, 0, -defaultGrowthWindow)

		return expected.Sub(since).Abs() < 25*time.Hour
	}
	repo.EXPECT().UserGrowth(ctx, mock.MatchedBy(sinceMatches)).
		Return([]*repository.GrowthPoint{}, nil)
	repo.EXPECT().PoemGrowth(ctx, mock.MatchedBy(sinceMatches)).
		Return([]*repository.GrowthPoint{}, nil)

	report, err := service.GetGrowth(ctx, 0)
	require.NoError(t, err)
	assert.False(t, report.Since.IsZero())
}

func TestAnalyticsService_GetRecentActivity(t *testing.T) {
	service, repo := newAnalyticsService(t)

	ctx := context.Background()

	repo.EXPECT().RecentActivity(ctx, 20).
		Return([]*repository.ActivityEntry{{Kind: "like", PoemTitle: "Bol"}}, nil)

	entries, err := service.GetRecentActivity(ctx, 20)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "like", entries[0].Kind)
}
