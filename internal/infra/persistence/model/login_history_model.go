package model

import (
	"time"

	"github.com/google/uuid"
)

// LoginHistoryModel mirrors the 'login_histories' table.
type LoginHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	LoginTime time.Time `gorm:"not null;index"`
	IPAddress string    `gorm:"type:varchar(45)"`
	UserAgent string    `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (LoginHistoryModel) TableName() string {
	return "login_histories"
}
