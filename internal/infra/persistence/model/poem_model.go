package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PoemModel mirrors the 'poems' table. The three counter columns are
// denormalized from the like and rating facts; they are only ever written
// through atomic SQL adjustments inside the same transaction as the fact
// mutation that caused them.
type PoemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PoetID        uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	GenreID       uuid.UUID `gorm:"type:uuid;not null;index"`
	TitleUrdu     string    `gorm:"type:varchar(255)"`
	TitleRoman    string    `gorm:"type:varchar(255)"`
	ContentUrdu   string    `gorm:"type:text"`
	ContentRoman  string    `gorm:"type:text"`
	AudioURL      string    `gorm:"type:varchar(500)"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	LikesCount    int64     `gorm:"not null;default:0"`
	RatingsCount  int64     `gorm:"not null;default:0"`
	AverageRating float64   `gorm:"type:decimal(3,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PoemModel) TableName() string {
	return "poems"
}
