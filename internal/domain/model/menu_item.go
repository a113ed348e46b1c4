package model

import "time"

// メニュー1品。バリエーション・アドオンを子テーブルで持つ。
// EffectivePrice / IsOnDiscount は取得時に計算する派生値（§カタログ正規化）。
type MenuItem struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	BasePrice   float64 `gorm:"not null" json:"base_price"`
	CategoryID  string  `gorm:"type:varchar(64);not null;index" json:"category"`
	Popular     bool    `gorm:"not null;default:false" json:"popular"`
	Available   bool    `gorm:"not null;default:true" json:"available"`
	ImageURL    string  `gorm:"type:text" json:"image_url"`

	// 割引ウィンドウ
	DiscountPrice     *float64   `json:"discount_price,omitempty"`
	DiscountStartDate *time.Time `json:"discount_start_date,omitempty"`
	DiscountEndDate   *time.Time `json:"discount_end_date,omitempty"`
	DiscountActive    bool       `gorm:"not null;default:false" json:"discount_active"`

	// 派生値（DBには保存しない）
	EffectivePrice float64 `gorm:"-" json:"effective_price"`
	IsOnDiscount   bool    `gorm:"-" json:"is_on_discount"`

	Variations []Variation `gorm:"constraint:OnDelete:CASCADE" json:"variations"`
	AddOns     []AddOn     `gorm:"constraint:OnDelete:CASCADE" json:"add_ons"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// サイズ等のバリエーション。Priceは実効価格への加算分。
type Variation struct {
	ID         string  `gorm:"type:uuid;primaryKey" json:"id"`
	MenuItemID string  `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	Price      float64 `gorm:"not null" json:"price"`
}

// トッピング等のアドオン。Quantityはカート投入時の選択数（カタログ上は0）。
type AddOn struct {
	ID         string  `gorm:"type:uuid;primaryKey" json:"id"`
	MenuItemID string  `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	Price      float64 `gorm:"not null" json:"price"`
	Category   string  `gorm:"type:varchar(64)" json:"category"`

	Quantity int `gorm:"-" json:"quantity,omitempty"`
}
