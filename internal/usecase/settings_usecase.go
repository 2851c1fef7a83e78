package usecase

import (
	"context"

	"sukhan/internal/domain/entity"
)

// SettingsUsecase covers the operator-tunable platform settings.
type SettingsUsecase interface {
	// GetSettings returns all stored settings merged over the defaults.
	GetSettings(ctx context.Context) ([]*entity.Setting, error)

	// UpdateSetting upserts one key. Admin only.
	UpdateSetting(ctx context.Context, key, value string) (*entity.Setting, error)

	// ModerationSnapshot loads the settings the submission and moderation
	// paths consult, falling back to defaults for unset keys.
	ModerationSnapshot(ctx context.Context) (entity.ModerationSettings, error)
}
