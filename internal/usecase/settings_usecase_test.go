package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	repo "github.com/raven-ibanez/Yong-Convenient-Store/internal/repository"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type SettingRepoMock struct{ mock.Mock }

func (m *SettingRepoMock) ListAll(ctx context.Context) ([]model.SiteSetting, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.SiteSetting)
	return rows, args.Error(1)
}

func (m *SettingRepoMock) UpdateValue(ctx context.Context, id string, value string) error {
	args := m.Called(ctx, id, value)
	return args.Error(0)
}

func (m *SettingRepoMock) Upsert(ctx context.Context, s model.SiteSetting) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func TestSettingsUsecase_GetSiteSettings_FallsBackToDefaults(t *testing.T) {
	sRepo := new(SettingRepoMock)
	sRepo.On("ListAll", mock.Anything).Return([]model.SiteSetting{}, nil)

	uc := usecase.NewSettingsUsecase(sRepo)

	out, err := uc.GetSiteSettings(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Yong Convenient Store", out.SiteName)
	assert.Equal(t, "PHP", out.CurrencyCode)
	assert.True(t, out.BannerPickupEnabled)
	assert.True(t, out.BannerPaydayEnabled)
}

func TestSettingsUsecase_GetSiteSettings_RowsOverrideDefaults(t *testing.T) {
	sRepo := new(SettingRepoMock)
	sRepo.On("ListAll", mock.Anything).Return([]model.SiteSetting{
		{ID: "site_name", Value: "Beracah Cafe", Type: model.SettingTypeText},
		{ID: "banner_payday_enabled", Value: "false", Type: model.SettingTypeBoolean},
	}, nil)

	uc := usecase.NewSettingsUsecase(sRepo)

	out, err := uc.GetSiteSettings(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Beracah Cafe", out.SiteName)
	assert.False(t, out.BannerPaydayEnabled)

	// 行が無いキーは既定値のまま
	assert.True(t, out.BannerDeliveryEnabled)
}

func TestSettingsUsecase_GetSiteSettings_InvalidBoolFallsBack(t *testing.T) {
	sRepo := new(SettingRepoMock)
	sRepo.On("ListAll", mock.Anything).Return([]model.SiteSetting{
		{ID: "banner_pickup_enabled", Value: "yes please", Type: model.SettingTypeBoolean},
	}, nil)

	uc := usecase.NewSettingsUsecase(sRepo)

	out, err := uc.GetSiteSettings(context.Background())
	assert.NoError(t, err)
	assert.True(t, out.BannerPickupEnabled)
}

func TestSettingsUsecase_UpdateSetting_NotFound(t *testing.T) {
	sRepo := new(SettingRepoMock)
	sRepo.On("UpdateValue", mock.Anything, "ghost", "v").Return(repo.ErrNotFound)

	uc := usecase.NewSettingsUsecase(sRepo)

	_, err := uc.UpdateSetting(context.Background(), "ghost", "v")
	assertHTTPError(t, err, http.StatusNotFound, "not found")
}

func TestSettingsUsecase_UpdateSetting_RefetchesResolvedView(t *testing.T) {
	sRepo := new(SettingRepoMock)
	sRepo.On("UpdateValue", mock.Anything, "site_name", "Beracah Cafe").Return(nil)
	sRepo.On("ListAll", mock.Anything).Return([]model.SiteSetting{
		{ID: "site_name", Value: "Beracah Cafe", Type: model.SettingTypeText},
	}, nil)

	uc := usecase.NewSettingsUsecase(sRepo)

	out, err := uc.UpdateSetting(context.Background(), "site_name", "Beracah Cafe")
	assert.NoError(t, err)
	assert.Equal(t, "Beracah Cafe", out.SiteName)

	sRepo.AssertExpectations(t)
}

func TestSettingsUsecase_SeedBannerSettings_UpsertsAllBannerKeys(t *testing.T) {
	sRepo := new(SettingRepoMock)
	sRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(s model.SiteSetting) bool {
		switch s.ID {
		case "banner_pickup_enabled", "banner_delivery_enabled", "banner_payday_enabled":
			return s.Type == model.SettingTypeBoolean && s.Value == "true"
		case "pricing_note":
			return s.Type == model.SettingTypeText && s.Value != ""
		default:
			return false
		}
	})).Return(nil).Times(4)
	sRepo.On("ListAll", mock.Anything).Return([]model.SiteSetting{}, nil)

	uc := usecase.NewSettingsUsecase(sRepo)

	_, err := uc.SeedBannerSettings(context.Background())
	assert.NoError(t, err)

	sRepo.AssertExpectations(t)
}
