package usecase

import (
	"context"
	"net/http"
	"strconv"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	repo "github.com/raven-ibanez/Yong-Convenient-Store/internal/repository"
)

// サイト設定の解決済みビュー。行が無いキーは既定値に落ちる。
type SiteSettings struct {
	SiteName        string `json:"site_name"`
	SiteLogo        string `json:"site_logo"`
	SiteDescription string `json:"site_description"`
	Currency        string `json:"currency"`
	CurrencyCode    string `json:"currency_code"`

	FooterAddress       string `json:"footer_address"`
	FooterPhone         string `json:"footer_phone"`
	FooterEmail         string `json:"footer_email"`
	FooterBusinessHours string `json:"footer_business_hours"`

	PromoPickupTitle       string `json:"promo_pickup_title"`
	PromoPickupSubtitle    string `json:"promo_pickup_subtitle"`
	PromoPickupCode        string `json:"promo_pickup_code"`
	PromoPickupDates       string `json:"promo_pickup_dates"`
	PromoPickupMinPurchase string `json:"promo_pickup_min_purchase"`

	PromoDeliveryTitle    string `json:"promo_delivery_title"`
	PromoDeliverySubtitle string `json:"promo_delivery_subtitle"`

	PromoPaydayTitle       string `json:"promo_payday_title"`
	PromoPaydaySubtitle    string `json:"promo_payday_subtitle"`
	PromoPaydayCode        string `json:"promo_payday_code"`
	PromoPaydayDates       string `json:"promo_payday_dates"`
	PromoPaydayMinPurchase string `json:"promo_payday_min_purchase"`

	BannerPickupEnabled   bool `json:"banner_pickup_enabled"`
	BannerDeliveryEnabled bool `json:"banner_delivery_enabled"`
	BannerPaydayEnabled   bool `json:"banner_payday_enabled"`

	PricingNote string `json:"pricing_note"`
}

// キーごとの既定値
var settingDefaults = map[string]string{
	"site_name":        "Yong Convenient Store",
	"site_logo":        "",
	"site_description": "",
	"currency":         "PHP",
	"currency_code":    "PHP",

	"footer_address":        "123 Main Street\nCity, Province 1234\nPhilippines",
	"footer_phone":          "+63 912 345 6789",
	"footer_email":          "info@yongconvenience.com",
	"footer_business_hours": "Mon - Sun: 6:00 AM - 10:00 PM\nOpen 7 days a week",

	"promo_pickup_title":        "PICK-UP HIGHLIGHT",
	"promo_pickup_subtitle":     "GET P200 OFF WHEN YOU PICK UP YOUR ORDER!",
	"promo_pickup_code":         "PICKUPSEPTEMBER",
	"promo_pickup_dates":        "September 15 & 30",
	"promo_pickup_min_purchase": "P1,500",

	"promo_delivery_title":    "Delivery Schedule",
	"promo_delivery_subtitle": "Orders received before 11am Same Day Delivery",

	"promo_payday_title":        "PAYDAY SPECIALS",
	"promo_payday_subtitle":     "FREE DELIVERY",
	"promo_payday_code":         "SAHODNASEP",
	"promo_payday_dates":        "on September 15 and 30, 2025 with a min. spend of P3,000",
	"promo_payday_min_purchase": "P3,000",

	"banner_pickup_enabled":   "true",
	"banner_delivery_enabled": "true",
	"banner_payday_enabled":   "true",

	"pricing_note": "Note: For the Wholesale Price and Bulk Order Price, Please contact the General Manager.",
}

type SettingsUsecase struct {
	settingRepo repo.SiteSettingRepository
}

// DI
func NewSettingsUsecase(settingRepo repo.SiteSettingRepository) *SettingsUsecase {
	return &SettingsUsecase{settingRepo: settingRepo}
}

func resolve(rows []model.SiteSetting) SiteSettings {
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.ID] = row.Value
	}

	get := func(key string) string {
		if v, ok := values[key]; ok {
			return v
		}
		return settingDefaults[key]
	}
	getBool := func(key string) bool {
		b, err := strconv.ParseBool(get(key))
		if err != nil {
			return settingDefaults[key] == "true"
		}
		return b
	}

	return SiteSettings{
		SiteName:        get("site_name"),
		SiteLogo:        get("site_logo"),
		SiteDescription: get("site_description"),
		Currency:        get("currency"),
		CurrencyCode:    get("currency_code"),

		FooterAddress:       get("footer_address"),
		FooterPhone:         get("footer_phone"),
		FooterEmail:         get("footer_email"),
		FooterBusinessHours: get("footer_business_hours"),

		PromoPickupTitle:       get("promo_pickup_title"),
		PromoPickupSubtitle:    get("promo_pickup_subtitle"),
		PromoPickupCode:        get("promo_pickup_code"),
		PromoPickupDates:       get("promo_pickup_dates"),
		PromoPickupMinPurchase: get("promo_pickup_min_purchase"),

		PromoDeliveryTitle:    get("promo_delivery_title"),
		PromoDeliverySubtitle: get("promo_delivery_subtitle"),

		PromoPaydayTitle:       get("promo_payday_title"),
		PromoPaydaySubtitle:    get("promo_payday_subtitle"),
		PromoPaydayCode:        get("promo_payday_code"),
		PromoPaydayDates:       get("promo_payday_dates"),
		PromoPaydayMinPurchase: get("promo_payday_min_purchase"),

		BannerPickupEnabled:   getBool("banner_pickup_enabled"),
		BannerDeliveryEnabled: getBool("banner_delivery_enabled"),
		BannerPaydayEnabled:   getBool("banner_payday_enabled"),

		PricingNote: get("pricing_note"),
	}
}

// GetSiteSettings は全行を読み、型付き既定値で解決して返す。
func (u *SettingsUsecase) GetSiteSettings(ctx context.Context) (SiteSettings, error) {
	rows, err := u.settingRepo.ListAll(ctx)
	if err != nil {
		return SiteSettings{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return resolve(rows), nil
}

// 管理画面向けの生の行
func (u *SettingsUsecase) AdminListSettings(ctx context.Context) ([]model.SiteSetting, error) {
	rows, err := u.settingRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rows, nil
}

// 1キー更新→解決済みビューをリフェッチ
func (u *SettingsUsecase) UpdateSetting(ctx context.Context, id string, value string) (SiteSettings, error) {
	if id == "" {
		return SiteSettings{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.settingRepo.UpdateValue(ctx, id, value)
	if err == repo.ErrNotFound {
		return SiteSettings{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return SiteSettings{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetSiteSettings(ctx)
}

// 複数キーの一括更新。途中で失敗したら残りは更新しない。
func (u *SettingsUsecase) UpdateSettings(ctx context.Context, updates map[string]string) (SiteSettings, error) {
	for id, value := range updates {
		if err := u.settingRepo.UpdateValue(ctx, id, value); err != nil {
			if err == repo.ErrNotFound {
				return SiteSettings{}, NewHTTPError(http.StatusNotFound, "unknown setting: "+id)
			}
			return SiteSettings{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return u.GetSiteSettings(ctx)
}

// バナー設定の種まき。既に行があれば既定値で上書きする（Upsert）。
func (u *SettingsUsecase) SeedBannerSettings(ctx context.Context) (SiteSettings, error) {
	seeds := []model.SiteSetting{
		{ID: "banner_pickup_enabled", Value: "true", Type: model.SettingTypeBoolean, Description: "Enable/disable pickup promotional banner"},
		{ID: "banner_delivery_enabled", Value: "true", Type: model.SettingTypeBoolean, Description: "Enable/disable delivery schedule banner"},
		{ID: "banner_payday_enabled", Value: "true", Type: model.SettingTypeBoolean, Description: "Enable/disable payday specials banner"},
		{ID: "pricing_note", Value: settingDefaults["pricing_note"], Type: model.SettingTypeText, Description: "Informational pricing note displayed to customers"},
	}

	for _, s := range seeds {
		if err := u.settingRepo.Upsert(ctx, s); err != nil {
			return SiteSettings{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	return u.GetSiteSettings(ctx)
}
