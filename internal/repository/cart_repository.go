package repository

import (
	"context"
	"time"

	"shop/internal/domain/model"

	"github.com/shopspring/decimal"
)

// カート明細と商品情報を結合した表示用の行。
// unit_price と stock_quantity は取得時点の商品の生値。
type CartLine struct {
	CartItemID    int64           `json:"cart_id"`
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int64           `json:"quantity"`
	StockQuantity int64           `json:"stock_quantity"`
	ImageURL      string          `json:"image_url"`
	Brand         string          `json:"brand"`
	AddedAt       time.Time       `json:"added_at"`
}

type CartRepository interface {
	//明細をカート投入順で返す
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)

	//商品情報を結合した表示用の一覧（公開商品のみ）
	ListLines(ctx context.Context, userID int64) ([]CartLine, error)

	// 同一商品は数量加算
	Upsert(ctx context.Context, userID int64, productID int64, addQty int64) error

	UpdateQuantity(ctx context.Context, cartItemID int64, userID int64, qty int64) error
	Remove(ctx context.Context, cartItemID int64, userID int64) error

	//全明細を削除して削除件数を返す
	Clear(ctx context.Context, userID int64) (int64, error)

	//数量合計
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}
