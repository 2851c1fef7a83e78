package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	FullName      string    `gorm:"type:varchar(100);not null"`
	Username      string    `gorm:"type:varchar(50)"`
	FavoriteShair string    `gorm:"type:varchar(100)"`
	IsAdmin       bool      `gorm:"not null;default:false"`
	IsVerified    bool      `gorm:"not null;default:false"`
	IsBlocked     bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
