package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

type ServiceType string

const (
	ServiceTypeDineIn   ServiceType = "dine-in"
	ServiceTypePickup   ServiceType = "pickup"
	ServiceTypeDelivery ServiceType = "delivery"
)

// チェックアウト時点のカートを確定した注文。
// 明細は OrderItem にスナップショットで保存する。
type Order struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ReferenceNumber string      `gorm:"type:varchar(64);not null;uniqueIndex" json:"reference_number"`
	CustomerName    string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	ContactNumber   string      `gorm:"type:varchar(64);not null" json:"contact_number"`
	ServiceType     ServiceType `gorm:"type:varchar(20);not null" json:"service_type"`
	Address         string      `gorm:"type:text" json:"address,omitempty"`
	PickupTime      string      `gorm:"type:varchar(64)" json:"pickup_time,omitempty"`
	PartySize       int         `json:"party_size,omitempty"`
	DineInTime      string      `gorm:"type:varchar(64)" json:"dine_in_time,omitempty"`
	PaymentMethodID string      `gorm:"type:varchar(64);not null" json:"payment_method"`
	PaymentRef      string      `gorm:"type:varchar(255)" json:"payment_ref,omitempty"`
	Notes           string      `gorm:"type:text" json:"notes,omitempty"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalPrice      float64     `gorm:"not null" json:"total_price"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 注文明細。名称・単価は注文時点の値を保存する（カタログが変わっても崩れない）。
type OrderItem struct {
	ID            int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64   `gorm:"not null;index" json:"order_id"`
	LineID        string  `gorm:"type:varchar(255);not null" json:"line_id"`
	MenuItemID    string  `gorm:"type:uuid;not null" json:"menu_item_id"`
	Name          string  `gorm:"type:varchar(255);not null" json:"name"`
	VariationName string  `gorm:"type:varchar(255)" json:"variation_name,omitempty"`
	AddOnSummary  string  `gorm:"type:text" json:"add_on_summary,omitempty"`
	Quantity      int     `gorm:"not null" json:"quantity"`
	UnitPrice     float64 `gorm:"not null;column:unit_price_snapshot" json:"unit_price"`
}
