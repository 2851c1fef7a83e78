package repository

import (
	"context"

	"sukhan/internal/domain/entity"
	"sukhan/internal/errors"
)

// ErrSettingNotFound is returned when a setting key is not present.
var ErrSettingNotFound = errors.New("setting not found")

// SettingRepository defines the interface for platform settings.
type SettingRepository interface {
	// FindByKey retrieves a setting by its key.
	FindByKey(ctx context.Context, key string) (*entity.Setting, error)

	// List retrieves all settings.
	List(ctx context.Context) ([]*entity.Setting, error)

	// Upsert creates or overwrites the value for a key.
	Upsert(ctx context.Context, setting *entity.Setting) error
}
