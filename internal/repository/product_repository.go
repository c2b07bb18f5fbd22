package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Page       int
	Limit      int
	Search     string
	CategoryID *int64
	Brand      string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal

	//管理者一覧では非公開商品も含める
	IncludeInactive bool
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	ListFeatured(ctx context.Context, limit int) ([]model.Product, error)
	ListBrands(ctx context.Context) ([]string, error)

	//公開中（is_active）の商品のみ
	FindByID(ctx context.Context, id int64) (model.Product, error)

	//行ロック付き取得。トランザクション内でのみ使う
	FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error)

	//非公開も含めて取得（管理者用）
	FindByIDAdmin(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error

	//is_active=false の論理削除
	Deactivate(ctx context.Context, id int64) error
}
