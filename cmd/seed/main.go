// Command seed fills a development database with plausible poetry data:
// accounts, poet profiles, poems across the moderation states and enough
// engagement facts to make the dashboards interesting. Counters are
// reconciled from the facts at the end, so the seeded data starts
// consistent.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"sukhan/config"
	"sukhan/internal/domain/entity"
	"sukhan/internal/infra/persistence/model"
	"sukhan/internal/util"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	seedUserCount    = 40
	seedPoetCount    = 12
	seedPoemsPerPoet = 6
	seedPassword     = "sukhan-dev-password"
)

var genreNames = []string{"Ghazal", "Nazm", "Rubai", "Qasida", "Marsiya", "Hamd", "Naat"}

var takhallusPool = []string{"Raaz", "Saher", "Shab", "Noor", "Qalandar", "Dard", "Ifshaa", "Bekhud"}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := seed(db, logger); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seeding complete")
}

func seed(db *gorm.DB, logger *slog.Logger) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pg_uuidv7").Error; err != nil {
		return fmt.Errorf("failed to install uuid extension: %w", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.OtpModel{},
		&model.LoginHistoryModel{},
		&model.PoetModel{},
		&model.PoemModel{},
		&model.GenreModel{},
		&model.LikeModel{},
		&model.RatingModel{},
		&model.FollowModel{},
		&model.SavedPoetryModel{},
		&model.FeedbackModel{},
		&model.SettingModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	gofakeit.Seed(42)
	rng := rand.New(rand.NewSource(42))

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	genres, err := seedGenres(db)
	if err != nil {
		return err
	}
	logger.Info("Seeded genres", slog.Int("count", len(genres)))

	users, err := seedUsers(db, string(passwordHash))
	if err != nil {
		return err
	}
	logger.Info("Seeded users", slog.Int("count", len(users)))

	poets, err := seedPoets(db, users, rng)
	if err != nil {
		return err
	}
	logger.Info("Seeded poets", slog.Int("count", len(poets)))

	poems, err := seedPoems(db, poets, genres, rng)
	if err != nil {
		return err
	}
	logger.Info("Seeded poems", slog.Int("count", len(poems)))

	if err := seedEngagement(db, users, poets, poems, rng); err != nil {
		return err
	}

	if err := reconcileCounters(db); err != nil {
		return err
	}
	logger.Info("Reconciled counters from seeded facts")

	return nil
}

func seedGenres(db *gorm.DB) ([]*model.GenreModel, error) {
	genres := make([]*model.GenreModel, 0, len(genreNames))
	for _, name := range genreNames {
		genres = append(genres, &model.GenreModel{
			ID:          uuid.New(),
			Name:        name,
			Slug:        util.Slugify(name),
			Description: gofakeit.Sentence(12),
		})
	}

	if err := db.Create(&genres).Error; err != nil {
		return nil, fmt.Errorf("failed to seed genres: %w", err)
	}

	return genres, nil
}

func seedUsers(db *gorm.DB, passwordHash string) ([]*model.UserModel, error) {
	users := make([]*model.UserModel, 0, seedUserCount+1)

	// One known admin so the back office is reachable out of the box.
	users = append(users, &model.UserModel{
		ID:           uuid.New(),
		Email:        "admin@sukhan.local",
		PasswordHash: passwordHash,
		FullName:     "Sukhan Admin",
		Username:     "admin",
		IsAdmin:      true,
		IsVerified:   true,
	})

	for i := 0; i < seedUserCount; i++ {
		person := gofakeit.Person()
		users = append(users, &model.UserModel{
			ID:            uuid.New(),
			Email:         strings.ToLower(fmt.Sprintf("%s.%d@%s", person.FirstName, i, gofakeit.DomainName())),
			PasswordHash:  passwordHash,
			FullName:      person.FirstName + " " + person.LastName,
			Username:      strings.ToLower(person.FirstName) + fmt.Sprint(i),
			FavoriteShair: gofakeit.RandomString([]string{"Ghalib", "Iqbal", "Faiz", "Mir", "Parveen Shakir", ""}),
			IsVerified:    true,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}

	return users, nil
}

func seedPoets(db *gorm.DB, users []*model.UserModel, rng *rand.Rand) ([]*model.PoetModel, error) {
	poets := make([]*model.PoetModel, 0, seedPoetCount)

	// The first user is the admin; poets start after it.
	for i := 0; i < seedPoetCount && i+1 < len(users); i++ {
		owner := users[i+1]
		name := owner.FullName
		poets = append(poets, &model.PoetModel{
			ID:          uuid.New(),
			UserID:      owner.ID,
			NameRoman:   name,
			Takhallus:   takhallusPool[i%len(takhallusPool)],
			Slug:        util.SlugWithSuffix(util.Slugify(name), i),
			Bio:         gofakeit.Paragraph(1, 3, 12, " "),
			City:        gofakeit.City(),
			Country:     gofakeit.Country(),
			IsPublished: rng.Intn(10) > 1,
		})
	}

	if err := db.Create(&poets).Error; err != nil {
		return nil, fmt.Errorf("failed to seed poets: %w", err)
	}

	return poets, nil
}

func seedPoems(db *gorm.DB, poets []*model.PoetModel, genres []*model.GenreModel, rng *rand.Rand) ([]*model.PoemModel, error) {
	statuses := []string{
		string(entity.PoemStatusPublished),
		string(entity.PoemStatusPublished),
		string(entity.PoemStatusPublished),
		string(entity.PoemStatusPending),
		string(entity.PoemStatusRejected),
	}

	poems := make([]*model.PoemModel, 0, len(poets)*seedPoemsPerPoet)
	for _, poet := range poets {
		for j := 0; j < seedPoemsPerPoet; j++ {
			genre := genres[rng.Intn(len(genres))]
			poems = append(poems, &model.PoemModel{
				ID:           uuid.New(),
				PoetID:       poet.ID,
				UserID:       poet.UserID,
				GenreID:      genre.ID,
				TitleRoman:   gofakeit.Sentence(3),
				ContentRoman: gofakeit.Paragraph(2, 4, 8, "\n"),
				Status:       statuses[rng.Intn(len(statuses))],
			})
		}
	}

	if err := db.Create(&poems).Error; err != nil {
		return nil, fmt.Errorf("failed to seed poems: %w", err)
	}

	return poems, nil
}

func seedEngagement(db *gorm.DB, users []*model.UserModel, poets []*model.PoetModel, poems []*model.PoemModel, rng *rand.Rand) error {
	var likes []*model.LikeModel
	var ratings []*model.RatingModel
	var follows []*model.FollowModel
	var saves []*model.SavedPoetryModel

	for _, user := range users {
		for _, poem := range poems {
			if poem.Status != string(entity.PoemStatusPublished) {
				continue
			}
			roll := rng.Intn(100)
			if roll < 20 {
				likes = append(likes, &model.LikeModel{ID: uuid.New(), UserID: user.ID, PoetryID: poem.ID})
			}
			if roll < 10 {
				ratings = append(ratings, &model.RatingModel{ID: uuid.New(), UserID: user.ID, PoetryID: poem.ID, Score: 1 + rng.Intn(5)})
			}
			if roll < 6 {
				saves = append(saves, &model.SavedPoetryModel{ID: uuid.New(), UserID: user.ID, PoetryID: poem.ID})
			}
		}
		for _, poet := range poets {
			if poet.UserID != user.ID && rng.Intn(100) < 15 {
				follows = append(follows, &model.FollowModel{ID: uuid.New(), UserID: user.ID, PoetID: poet.ID})
			}
		}
	}

	if len(likes) > 0 {
		if err := db.CreateInBatches(&likes, 200).Error; err != nil {
			return fmt.Errorf("failed to seed likes: %w", err)
		}
	}
	if len(ratings) > 0 {
		if err := db.CreateInBatches(&ratings, 200).Error; err != nil {
			return fmt.Errorf("failed to seed ratings: %w", err)
		}
	}
	if len(follows) > 0 {
		if err := db.CreateInBatches(&follows, 200).Error; err != nil {
			return fmt.Errorf("failed to seed follows: %w", err)
		}
	}
	if len(saves) > 0 {
		if err := db.CreateInBatches(&saves, 200).Error; err != nil {
			return fmt.Errorf("failed to seed saves: %w", err)
		}
	}

	return nil
}

func reconcileCounters(db *gorm.DB) error {
	if err := db.Exec(`
		UPDATE poems SET
			likes_count = (SELECT COUNT(*) FROM likes WHERE likes.poetry_id = poems.id),
			ratings_count = (SELECT COUNT(*) FROM ratings WHERE ratings.poetry_id = poems.id),
			average_rating = COALESCE((SELECT AVG(score) FROM ratings WHERE ratings.poetry_id = poems.id), 0)`).Error; err != nil {
		return fmt.Errorf("failed to reconcile poem counters: %w", err)
	}

	if err := db.Exec(`
		UPDATE poets SET
			followers_count = (SELECT COUNT(*) FROM follows WHERE follows.poet_id = poets.id)`).Error; err != nil {
		return fmt.Errorf("failed to reconcile poet counters: %w", err)
	}

	return nil
}
