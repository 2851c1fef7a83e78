package impl

import (
	"context"
	"sort"

	"sukhan/internal/domain/entity"
	domainerrors "sukhan/internal/domain/errors"
	"sukhan/internal/domain/repository"
	"sukhan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// settingDefaults describes the known keys and their fallback values.
// Unknown keys are rejected so a typo cannot silently create a setting
// that nothing reads.
var settingDefaults = map[string]string{
	entity.SettingAutoApprovePoetry:       "false",
	entity.SettingPoetRegistrationEnabled: "true",
	entity.SettingFeaturedPoetryLimit:     "10",
	entity.SettingSessionTimeout:          "10080",
	entity.SettingMaintenanceMode:         "false",
}

type settingsService struct {
	settingRepo repository.SettingRepository
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingRepo repository.SettingRepository
}

// NewSettingsService creates a new settings service instance.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingRepo: params.SettingRepo,
	}
}

// GetSettings returns all stored settings merged over the defaults, so
// the admin UI always sees every known key.
func (s *settingsService) GetSettings(ctx context.Context) ([]*entity.Setting, error) {
	stored, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list settings")
	}

	byKey := make(map[string]*entity.Setting, len(stored))
	for _, setting := range stored {
		byKey[setting.Key] = setting
	}

	merged := make([]*entity.Setting, 0, len(settingDefaults))
	for key, def := range settingDefaults {
		if setting, ok := byKey[key]; ok {
			merged = append(merged, setting)

			continue
		}

		merged = append(merged, &entity.Setting{Key: key, Value: def})
	}

	// Map iteration order is random; the admin UI expects a stable list.
	sort.Slice(merged, func(i, j int) bool { return merged[i].Key < merged[j].Key })

	return merged, nil
}

// UpdateSetting upserts one key.
func (s *settingsService) UpdateSetting(ctx context.Context, key, value string) (*entity.Setting, error) {
	if _, ok := settingDefaults[key]; !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown setting key")
	}

	setting := &entity.Setting{Key: key, Value: value}
	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	return setting, nil
}

// ModerationSnapshot loads the settings the submission and moderation
// paths consult. The snapshot is taken per call; nothing caches it, so a
// settings change applies to the next request.
func (s *settingsService) ModerationSnapshot(ctx context.Context) (entity.ModerationSettings, error) {
	snapshot := entity.DefaultModerationSettings()

	stored, err := s.settingRepo.List(ctx)
	if err != nil {
		return snapshot, errors.Wrap(err, "failed to load settings")
	}

	for _, setting := range stored {
		switch setting.Key {
		case entity.SettingAutoApprovePoetry:
			snapshot.AutoApprovePoetry = setting.BoolValue()
		case entity.SettingPoetRegistrationEnabled:
			snapshot.PoetRegistrationEnabled = setting.BoolValue()
		case entity.SettingFeaturedPoetryLimit:
			snapshot.FeaturedPoetryLimit = setting.IntValue(snapshot.FeaturedPoetryLimit)
		case entity.SettingMaintenanceMode:
			snapshot.MaintenanceMode = setting.BoolValue()
		}
	}

	return snapshot, nil
}
