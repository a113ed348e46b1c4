package model

import "time"

// 支払い方法（GCash / Maya / 銀行振込など）。QRコード画像は画像ストレージのURL。
type PaymentMethod struct {
	ID            string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	AccountNumber string    `gorm:"type:varchar(255)" json:"account_number"`
	AccountName   string    `gorm:"type:varchar(255)" json:"account_name"`
	QRCodeURL     string    `gorm:"type:text" json:"qr_code_url"`
	Active        bool      `gorm:"not null;default:true" json:"active"`
	SortOrder     int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
