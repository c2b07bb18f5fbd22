package usecase

import (
	"errors"
	"fmt"
)

// カートが空のまま注文しようとした。何も書き込まれていない。
var ErrEmptyCart = errors.New("cart is empty")

// 要求数量が現在在庫を超えている。対象商品を特定できる。
// 何も書き込まれていない状態で返る。
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.ProductName)
}

// 列挙外のステータス値。書き込み前に弾く。
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status: %s", e.Status)
}

// 注文トランザクションの変更フェーズで起きた失敗。
// 全体がロールバック済みで、原因はラップして保持する
// （利用者には詳細を見せず、ログにだけ出す）。
type TransactionFailedError struct {
	Err error
}

func (e *TransactionFailedError) Error() string {
	return fmt.Sprintf("order transaction failed: %v", e.Err)
}

func (e *TransactionFailedError) Unwrap() error {
	return e.Err
}
