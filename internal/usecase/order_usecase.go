package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type PlaceOrderInput struct {
	ShippingAddress string
	ShippingCity    string
	ShippingState   string
	ShippingZip     string
	ShippingCountry string
	PaymentMethod   string
}

type OrderItemOutput struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderOutput struct {
	ID              int64             `json:"order_id"`
	UserID          int64             `json:"user_id"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	ShippingAddress string            `json:"shipping_address"`
	ShippingCity    string            `json:"shipping_city"`
	ShippingState   string            `json:"shipping_state"`
	ShippingZip     string            `json:"shipping_zip"`
	ShippingCountry string            `json:"shipping_country"`
	PaymentMethod   string            `json:"payment_method"`
	Status          string            `json:"status"`
	PaymentStatus   string            `json:"payment_status"`
	CreatedAt       time.Time         `json:"created_at"`
	Items           []OrderItemOutput `json:"items"`
}

// PlaceOrder はカートを注文に変換する。
// 前提条件（カート非空・全明細の在庫充足）を満たさなければ何も書かずに返す。
// 変更フェーズは注文作成・明細作成・在庫減算・カート削除を
// 1トランザクションで行い、途中で失敗したら全て巻き戻す。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (int64, error) {
	if userID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateShipping(in); err != nil {
		return 0, err
	}

	var orderID int64

	txErr := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//明細はカート投入順で処理する
		cartItems, err := r.Carts().ListByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		//前提条件の確認。全明細の商品行をロックして在庫を見る。
		//ここまで一切書き込みをしない
		products := make([]model.Product, 0, len(cartItems))
		for _, ci := range cartItems {
			p, err := r.Products().FindByIDForUpdate(ctx, ci.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusBadRequest, "product no longer available")
			}
			if err != nil {
				return err
			}
			if !p.IsActive {
				return NewHTTPError(http.StatusBadRequest, "product no longer available")
			}
			if ci.Quantity > p.StockQuantity {
				return &InsufficientStockError{ProductID: p.ID, ProductName: p.ProductName}
			}
			products = append(products, p)
		}

		//合計はチェックアウト時点の商品単価で確定する。
		//以後の価格変更には追従しない
		total := decimal.Zero
		items := make([]model.OrderItem, 0, len(cartItems))
		for i, ci := range cartItems {
			p := products[i]
			total = total.Add(p.Price.Mul(decimal.NewFromInt(ci.Quantity)))
			items = append(items, model.OrderItem{
				ProductID: p.ID,
				Quantity:  ci.Quantity,
				Price:     p.Price,
			})
		}

		//ここから変更フェーズ
		id, err := r.Orders().Create(ctx, model.Order{
			UserID:          userID,
			TotalAmount:     total,
			ShippingAddress: in.ShippingAddress,
			ShippingCity:    in.ShippingCity,
			ShippingState:   in.ShippingState,
			ShippingZip:     in.ShippingZip,
			ShippingCountry: in.ShippingCountry,
			PaymentMethod:   in.PaymentMethod,
			Status:          model.OrderStatusPending,
			PaymentStatus:   model.PaymentStatusPending,
		})
		if err != nil {
			return err
		}

		if err := r.OrderItems().CreateBulk(ctx, id, items); err != nil {
			return err
		}

		for _, ci := range cartItems {
			ok, err := r.Inventory().DecrementStockIfAvailable(ctx, ci.ProductID, ci.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				//行ロック下では起きないはずだが、起きたら全体を失敗させる
				return fmt.Errorf("stock decrement conflict on product %d", ci.ProductID)
			}
		}

		if _, err := r.Carts().Clear(ctx, userID); err != nil {
			return err
		}

		orderID = id
		return nil
	})

	if txErr != nil {
		//前提条件エラーは何も書いていないのでそのまま返す
		if errors.Is(txErr, ErrEmptyCart) {
			return 0, txErr
		}
		var stockErr *InsufficientStockError
		if errors.As(txErr, &stockErr) {
			return 0, txErr
		}
		if _, ok := AsHTTPError(txErr); ok {
			return 0, txErr
		}
		//変更フェーズの失敗。ロールバック済み
		return 0, &TransactionFailedError{Err: txErr}
	}

	return orderID, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64, page int, limit int) ([]OrderOutput, int64, error) {
	if userID <= 0 {
		return []OrderOutput{}, 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var outs []OrderOutput
	var total int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, n, err := r.Orders().ListByUserID(ctx, userID, page, limit)
		if err != nil {
			return err
		}
		total = n

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return err
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})
	if err != nil {
		return []OrderOutput{}, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return outs, total, nil
}

func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID {
			//他人の注文は「存在しない扱い」にする
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}

	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return OrderOutput{
		ID:              o.ID,
		UserID:          o.UserID,
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		ShippingCity:    o.ShippingCity,
		ShippingState:   o.ShippingState,
		ShippingZip:     o.ShippingZip,
		ShippingCountry: o.ShippingCountry,
		PaymentMethod:   o.PaymentMethod,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		CreatedAt:       o.CreatedAt,
		Items:           outItems,
	}
}

// 配送先と支払い方法の必須チェック
func validateShipping(in PlaceOrderInput) error {
	fields := []struct {
		name  string
		value string
	}{
		{"shipping_address", in.ShippingAddress},
		{"shipping_city", in.ShippingCity},
		{"shipping_state", in.ShippingState},
		{"shipping_zip", in.ShippingZip},
		{"shipping_country", in.ShippingCountry},
		{"payment_method", in.PaymentMethod},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return NewHTTPError(http.StatusBadRequest, f.name+" is required")
		}
	}
	return nil
}
