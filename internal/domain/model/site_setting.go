package model

import "time"

type SettingType string

const (
	SettingTypeText    SettingType = "text"
	SettingTypeImage   SettingType = "image"
	SettingTypeBoolean SettingType = "boolean"
	SettingTypeNumber  SettingType = "number"
)

// サイト設定の1行。キーがそのままID。値は文字列で持ち、型はTypeで表す。
type SiteSetting struct {
	ID          string      `gorm:"type:varchar(64);primaryKey" json:"id"`
	Value       string      `gorm:"type:text;not null" json:"value"`
	Type        SettingType `gorm:"type:varchar(20);not null;default:'text'" json:"type"`
	Description string      `gorm:"type:text" json:"description"`
	UpdatedAt   time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
