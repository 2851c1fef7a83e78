package model

import (
	"time"

	"github.com/google/uuid"
)

// The engagement fact tables are hard-delete only. A soft delete would
// leave the composite unique index occupied and block the user from
// re-creating the same fact later.

// LikeModel mirrors the 'likes' table. The composite unique index is the
// serialization point for concurrent likes of the same poem.
type LikeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_poetry"`
	PoetryID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_poetry;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// RatingModel mirrors the 'ratings' table. One row per (user, poem) pair;
// a re-rating updates Score in place.
type RatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_poetry"`
	PoetryID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_poetry;index"`
	Score     int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// FollowModel mirrors the 'follows' table.
type FollowModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_user_poet"`
	PoetID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_user_poet;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "follows"
}

// SavedPoetryModel mirrors the 'saved_poetries' table.
type SavedPoetryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_poetry"`
	PoetryID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_poetry;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedPoetryModel) TableName() string {
	return "saved_poetries"
}
