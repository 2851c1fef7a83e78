package repository

import (
	"context"
)

// TransactionManager coordinates multi-repository work inside a single
// database transaction. Fact mutations and their counter effects must
// commit or roll back together, so every engagement operation runs
// through Execute.
type TransactionManager interface {
	// Execute runs fn within a transaction. The RepositoryFactory handed to
	// fn produces repositories bound to that transaction. Returning an
	// error rolls the transaction back; a nil return commits it.
	Execute(ctx context.Context, fn func(ctx context.Context, repos RepositoryFactory) error) error
}

// RepositoryFactory produces repositories bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	OtpRepo() OTPRepository
	PoetRepo() PoetRepository
	PoemRepo() PoemRepository
	GenreRepo() GenreRepository
	LikeRepo() LikeRepository
	RatingRepo() RatingRepository
	FollowRepo() FollowRepository
	SavedPoetryRepo() SavedPoetryRepository
	FeedbackRepo() FeedbackRepository
	LoginHistoryRepo() LoginHistoryRepository
	SettingRepo() SettingRepository
}
