package model

import (
	"time"

	"github.com/google/uuid"
)

// GenreModel mirrors the 'genres' table.
type GenreModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Slug        string    `gorm:"type:varchar(120);unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GenreModel) TableName() string {
	return "genres"
}
