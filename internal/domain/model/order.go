package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// ValidOrderStatus はステータスが列挙値かだけを確認する。
// 遷移順の制約はかけない（どの状態からどの状態へも可）。
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// 注文。チェックアウト時に1回だけ作成し、以後削除しない。
// total_amount は作成時点の Σ(数量×単価) で固定する。
type Order struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"order_id"`
	UserID      int64           `gorm:"not null;index" json:"user_id"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	ShippingAddress string `gorm:"type:varchar(255);not null" json:"shipping_address"`
	ShippingCity    string `gorm:"type:varchar(100);not null" json:"shipping_city"`
	ShippingState   string `gorm:"type:varchar(100);not null" json:"shipping_state"`
	ShippingZip     string `gorm:"type:varchar(20);not null" json:"shipping_zip"`
	ShippingCountry string `gorm:"type:varchar(100);not null" json:"shipping_country"`
	PaymentMethod   string `gorm:"type:varchar(50);not null" json:"payment_method"`

	Status        OrderStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"payment_status"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
