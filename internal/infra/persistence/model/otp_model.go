package model

import (
	"time"

	"github.com/google/uuid"
)

// OtpModel mirrors the 'otps' table. Codes are short-lived, so rows are
// hard deleted once consumed or superseded.
type OtpModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Code      string    `gorm:"type:varchar(10);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OtpModel) TableName() string {
	return "otps"
}
