package impl

import (
	"context"
	"sort"
	"testing"

	"sukhan/internal/domain/entity"
	mockRepo "sukhan/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSettingsService(t *testing.T) (*settingsService, *mockRepo.MockSettingRepository) {
	t.Helper()

	repo := mockRepo.NewMockSettingRepository(t)
	service := NewSettingsService(SettingsServiceParams{SettingRepo: repo})

	return service.(*settingsService), repo
}

func TestSettingsService_GetSettings_MergesDefaults(t *testing.T) {
	service, repo := newSettingsService(t)

	ctx := context.Background()

	repo.EXPECT().List(ctx).Return([]*entity.Setting{
		{Key: entity.SettingAutoApprovePoetry, Value: "true"},
	}, nil)

	settings, err := service.GetSettings(ctx)
	require.NoError(t, err)
	require.Len(t, settings, len(settingDefaults))

	byKey := make(map[string]string, len(settings))
	for _, setting := range settings {
		byKey[setting.Key] = setting.Value
	}
	assert.Equal(t, "true", byKey[entity.SettingAutoApprovePoetry])
	assert.Equal(t, "true", byKey[entity.SettingPoetRegistrationEnabled])
	assert.Equal(t, "10", byKey[entity.SettingFeaturedPoetryLimit])
}

func TestSettingsService_GetSettings_StableOrder(t *testing.T) {
	service, repo := newSettingsService(t)

	ctx := context.Background()

	repo.EXPECT().List(ctx).Return([]*entity.Setting{}, nil)

	settings, err := service.GetSettings(ctx)
	require.NoError(t, err)

	keys := make([]string, len(settings))
	for i, setting := range settings {
		keys[i] = setting.Key
	}
	assert.True(t, sort.StringsAreSorted(keys), "settings should be sorted by key, got %v", keys)
}

func TestSettingsService_UpdateSetting_RejectsUnknownKey(t *testing.T) {
	service, _ := newSettingsService(t)

	_, err := service.UpdateSetting(context.Background(), "autoAproovePoetry", "true")
	assert.Error(t, err)
}

func TestSettingsService_UpdateSetting_Upserts(t *testing.T) {
	service, repo := newSettingsService(t)

	ctx := context.Background()

	repo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(setting *entity.Setting) bool {
			return setting.Key == entity.SettingMaintenanceMode && setting.Value == "true"
		})).
		Return(nil)

	setting, err := service.UpdateSetting(ctx, entity.SettingMaintenanceMode, "true")
	require.NoError(t, err)
	assert.Equal(t, "true", setting.Value)
}

func TestSettingsService_ModerationSnapshot_AppliesStoredOverrides(t *testing.T) {
	service, repo := newSettingsService(t)

	ctx := context.Background()

	repo.EXPECT().List(ctx).Return([]*entity.Setting{
		{Key: entity.SettingAutoApprovePoetry, Value: "true"},
		{Key: entity.SettingPoetRegistrationEnabled, Value: "false"},
		{Key: entity.SettingFeaturedPoetryLimit, Value: "not-a-number"},
	}, nil)

	snapshot, err := service.ModerationSnapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.AutoApprovePoetry)
	assert.False(t, snapshot.PoetRegistrationEnabled)
	// Unparseable values fall back to the default.
	assert.Equal(t, 10, snapshot.FeaturedPoetryLimit)
}

func TestSettingsService_ModerationSnapshot_DefaultsWhenEmpty(t *testing.T) {
	service, repo := newSettingsService(t)

	ctx := context.Background()

	repo.EXPECT().List(ctx).Return([]*entity.Setting{}, nil)

	snapshot, err := service.ModerationSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultModerationSettings(), snapshot)
}
