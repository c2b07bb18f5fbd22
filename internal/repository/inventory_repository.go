package repository

import (
	"context"

	"shop/internal/domain/model"
)

type InventoryRepository interface {
	// 在庫が足りるときだけ減算。減らせなければ false
	DecrementStockIfAvailable(ctx context.Context, productID int64, qty int64) (bool, error)

	// 差分調整（正負どちらも）。結果が負になる調整は false
	AdjustStock(ctx context.Context, productID int64, delta int64) (bool, error)

	// 調整履歴作成
	CreateAdjustment(ctx context.Context, adjustment model.InventoryAdjustment) error
}
