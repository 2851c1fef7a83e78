package postgres

import (
	"context"
	"time"

	"sukhan/internal/domain/entity"
	"sukhan/internal/domain/repository"
	"sukhan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// analyticsRepository implements the repository.AnalyticsRepository
// interface. It only reads committed data, so it runs on the plain
// connection rather than inside the transaction manager.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// DashboardCounts returns the headline totals.
func (repo *analyticsRepository) DashboardCounts(ctx context.Context) (*repository.DashboardCounts, error) {
	counts := &repository.DashboardCounts{}

	type target struct {
		dest  *int64
		query *gorm.DB
	}

	targets := []target{
		{&counts.Users, repo.db.WithContext(ctx).Model(&model.UserModel{})},
		{&counts.Poets, repo.db.WithContext(ctx).Model(&model.PoetModel{})},
		{&counts.Poems, repo.db.WithContext(ctx).Model(&model.PoemModel{})},
		{&counts.PendingPoems, repo.db.WithContext(ctx).Model(&model.PoemModel{}).
			Where("status = ?", entity.PoemStatusPending.String())},
		{&counts.PublishedPoems, repo.db.WithContext(ctx).Model(&model.PoemModel{}).
			Where("status = ?", entity.PoemStatusPublished.String())},
		{&counts.RejectedPoems, repo.db.WithContext(ctx).Model(&model.PoemModel{}).
			Where("status = ?", entity.PoemStatusRejected.String())},
		{&counts.Genres, repo.db.WithContext(ctx).Model(&model.GenreModel{})},
		{&counts.Feedback, repo.db.WithContext(ctx).Model(&model.FeedbackModel{})},
	}

	for _, t := range targets {
		if err := t.query.Count(t.dest).Error; err != nil {
			return nil, errors.Wrap(err, "failed to load dashboard counts")
		}
	}

	if err := repo.db.WithContext(ctx).
		Raw(`SELECT COUNT(DISTINCT user_id) FROM login_histories
			WHERE login_time >= DATE_TRUNC('day', NOW())`).
		Scan(&counts.ActiveUsersToday).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count active users")
	}

	if err := repo.db.WithContext(ctx).
		Raw(`SELECT COUNT(DISTINCT lh.user_id) FROM login_histories lh
			JOIN poets pt ON pt.user_id = lh.user_id
			WHERE lh.login_time >= DATE_TRUNC('day', NOW()) AND pt.deleted_at IS NULL`).
		Scan(&counts.ActivePoetsToday).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count active poets")
	}

	return counts, nil
}

// MostLovedPoems returns published poems ordered by like facts.
func (repo *analyticsRepository) MostLovedPoems(ctx context.Context, limit int) ([]*repository.PoemEngagement, error) {
	return repo.poemEngagementBoard(ctx, "likes", limit)
}

// MostSavedPoems returns published poems ordered by saved facts.
func (repo *analyticsRepository) MostSavedPoems(ctx context.Context, limit int) ([]*repository.PoemEngagement, error) {
	return repo.poemEngagementBoard(ctx, "saved_poetries", limit)
}

// poemEngagementBoard joins a fact table against published poems and
// orders by the live fact count. The boards count facts directly instead
// of trusting the denormalized columns so that a drifted counter never
// reorders a leaderboard.
func (repo *analyticsRepository) poemEngagementBoard(ctx context.Context, factTable string, limit int) ([]*repository.PoemEngagement, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT p.id AS poetry_id,
		       p.title_roman AS title_en,
		       p.title_urdu AS title_ur,
		       pt.slug AS slug,
		       pt.name_roman AS poet_name,
		       COUNT(f.id) AS count,
		       p.average_rating AS avg_rating
		FROM poems p
		JOIN poets pt ON pt.id = p.poet_id
		LEFT JOIN ` + factTable + ` f ON f.poetry_id = p.id
		WHERE p.status = ? AND p.deleted_at IS NULL
		GROUP BY p.id, p.title_roman, p.title_urdu, pt.slug, pt.name_roman, p.average_rating
		ORDER BY count DESC, p.created_at DESC
		LIMIT ?
	`

	var rows []*repository.PoemEngagement
	if err := repo.db.WithContext(ctx).
		Raw(query, entity.PoemStatusPublished.String(), limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load poem engagement board")
	}

	return rows, nil
}

// TopRatedPoems returns published poems ordered by average rating.
func (repo *analyticsRepository) TopRatedPoems(ctx context.Context, limit int) ([]*repository.PoemEngagement, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT p.id AS poetry_id,
		       p.title_roman AS title_en,
		       p.title_urdu AS title_ur,
		       pt.slug AS slug,
		       pt.name_roman AS poet_name,
		       p.ratings_count AS count,
		       p.average_rating AS avg_rating
		FROM poems p
		JOIN poets pt ON pt.id = p.poet_id
		WHERE p.status = ? AND p.deleted_at IS NULL AND p.ratings_count > 0
		ORDER BY p.average_rating DESC, p.ratings_count DESC, p.created_at DESC
		LIMIT ?
	`

	var rows []*repository.PoemEngagement
	if err := repo.db.WithContext(ctx).
		Raw(query, entity.PoemStatusPublished.String(), limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load top rated poems")
	}

	return rows, nil
}

// UserGrowth returns daily sign-up counts since the given time.
func (repo *analyticsRepository) UserGrowth(ctx context.Context, since time.Time) ([]*repository.GrowthPoint, error) {
	return repo.growthSeries(ctx, "users", since)
}

// PoemGrowth returns daily submission counts since the given time.
func (repo *analyticsRepository) PoemGrowth(ctx context.Context, since time.Time) ([]*repository.GrowthPoint, error) {
	return repo.growthSeries(ctx, "poems", since)
}

func (repo *analyticsRepository) growthSeries(ctx context.Context, table string, since time.Time) ([]*repository.GrowthPoint, error) {
	query := `
		SELECT DATE_TRUNC('day', created_at) AS date, COUNT(*) AS count
		FROM ` + table + `
		WHERE created_at >= ? AND deleted_at IS NULL
		GROUP BY DATE_TRUNC('day', created_at)
		ORDER BY date ASC
	`

	var points []*repository.GrowthPoint
	if err := repo.db.WithContext(ctx).
		Raw(query, since).
		Scan(&points).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load growth series")
	}

	return points, nil
}

// RecentActivity returns the latest engagement events across likes,
// ratings and follows.
func (repo *analyticsRepository) RecentActivity(ctx context.Context, limit int) ([]*repository.ActivityEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT * FROM (
			SELECT 'like' AS kind,
			       u.full_name AS user_name,
			       p.title_roman AS poem_title,
			       l.created_at AS created_at
			FROM likes l
			JOIN users u ON u.id = l.user_id
			JOIN poems p ON p.id = l.poetry_id
			UNION ALL
			SELECT 'rating' AS kind,
			       u.full_name AS user_name,
			       p.title_roman AS poem_title,
			       r.created_at AS created_at
			FROM ratings r
			JOIN users u ON u.id = r.user_id
			JOIN poems p ON p.id = r.poetry_id
			UNION ALL
			SELECT 'follow' AS kind,
			       u.full_name AS user_name,
			       pt.name_roman AS poem_title,
			       f.created_at AS created_at
			FROM follows f
			JOIN users u ON u.id = f.user_id
			JOIN poets pt ON pt.id = f.poet_id
		) activity
		ORDER BY created_at DESC
		LIMIT ?
	`

	var entries []*repository.ActivityEntry
	if err := repo.db.WithContext(ctx).
		Raw(query, limit).
		Scan(&entries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load recent activity")
	}

	return entries, nil
}
