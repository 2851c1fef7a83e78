package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PoetModel mirrors the 'poets' table. FollowersCount is only ever written
// through atomic SQL adjustments, never through full-row saves.
type PoetModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	NameRoman      string    `gorm:"type:varchar(100);not null"`
	NameUrdu       string    `gorm:"type:varchar(100)"`
	Takhallus      string    `gorm:"type:varchar(100)"`
	Slug           string    `gorm:"type:varchar(120);unique;not null"`
	Bio            string    `gorm:"type:text"`
	ImageURL       string    `gorm:"type:varchar(500)"`
	City           string    `gorm:"type:varchar(100)"`
	Country        string    `gorm:"type:varchar(100)"`
	DateOfBirth    *time.Time
	IsPublished    bool  `gorm:"not null;default:false"`
	FollowersCount int64 `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PoetModel) TableName() string {
	return "poets"
}
