package model

import (
	"time"
)

// SettingModel mirrors the 'settings' table. The key is the primary key;
// writes are upserts.
type SettingModel struct {
	Key         string `gorm:"type:varchar(100);primary_key"`
	Value       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:varchar(255)"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
