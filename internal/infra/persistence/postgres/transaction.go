// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"sukhan/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) OtpRepo() repository.OTPRepository {
	return NewOtpRepository(f.tx)
}

func (f *gormRepositoryFactory) PoetRepo() repository.PoetRepository {
	return NewPoetRepository(f.tx)
}

func (f *gormRepositoryFactory) PoemRepo() repository.PoemRepository {
	return NewPoemRepository(f.tx)
}

func (f *gormRepositoryFactory) GenreRepo() repository.GenreRepository {
	return NewGenreRepository(f.tx)
}

func (f *gormRepositoryFactory) LikeRepo() repository.LikeRepository {
	return NewLikeRepository(f.tx)
}

func (f *gormRepositoryFactory) RatingRepo() repository.RatingRepository {
	return NewRatingRepository(f.tx)
}

func (f *gormRepositoryFactory) FollowRepo() repository.FollowRepository {
	return NewFollowRepository(f.tx)
}

func (f *gormRepositoryFactory) SavedPoetryRepo() repository.SavedPoetryRepository {
	return NewSavedPoetryRepository(f.tx)
}

func (f *gormRepositoryFactory) FeedbackRepo() repository.FeedbackRepository {
	return NewFeedbackRepository(f.tx)
}

func (f *gormRepositoryFactory) LoginHistoryRepo() repository.LoginHistoryRepository {
	return NewLoginHistoryRepository(f.tx)
}

func (f *gormRepositoryFactory) SettingRepo() repository.SettingRepository {
	return NewSettingRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
// Engagement fact mutations and their counter adjustments both go through
// here so that they commit or roll back as one unit.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(ctx context.Context, repos repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback
	// function, the transaction is always rolled back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(ctx, factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Log the rollback error, but return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
