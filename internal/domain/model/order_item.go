package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。price は購入時点の単価スナップショットで、
// 以後の商品価格の変更に追従しない。
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"order_item_id"`
	OrderID   int64           `gorm:"not null;index" json:"order_id"`
	ProductID int64           `gorm:"not null;index" json:"product_id"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
