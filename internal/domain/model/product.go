package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 商品。物理削除はせず is_active で論理削除する
// （注文明細から参照されるため行は残す）。
type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"product_id"`
	CategoryID  int64  `gorm:"not null;index" json:"category_id"`
	ProductName string `gorm:"type:varchar(200);not null" json:"product_name"`
	Description string `gorm:"type:text" json:"description"`

	//仕様はJSON文字列で保存する
	Specifications string `gorm:"type:text" json:"specifications"`

	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity int64           `gorm:"not null;default:0" json:"stock_quantity"`
	ImageURL      string          `gorm:"type:varchar(500)" json:"image_url"`
	Brand         string          `gorm:"type:varchar(100);index" json:"brand"`
	Model         string          `gorm:"type:varchar(100)" json:"model"`
	IsFeatured    bool            `gorm:"not null;default:false" json:"is_featured"`
	IsActive      bool            `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
