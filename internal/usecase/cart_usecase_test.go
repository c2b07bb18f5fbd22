package usecase_test

import (
	"context"
	"testing"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartRepoMock) ListLines(ctx context.Context, userID int64) ([]repo.CartLine, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]repo.CartLine)
	return lines, args.Error(1)
}

func (m *CartRepoMock) Upsert(ctx context.Context, userID int64, productID int64, addQty int64) error {
	args := m.Called(ctx, userID, productID, addQty)
	return args.Error(0)
}

func (m *CartRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, userID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, userID, qty)
	return args.Error(0)
}

func (m *CartRepoMock) Remove(ctx context.Context, cartItemID int64, userID int64) error {
	args := m.Called(ctx, cartItemID, userID)
	return args.Error(0)
}

func (m *CartRepoMock) Clear(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CartRepoMock) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type CartProductRepoMock struct{ mock.Mock }

func (m *CartProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) ListFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) ListBrands(ctx context.Context) ([]string, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CartProductRepoMock) FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) FindByIDAdmin(ctx context.Context, id int64) (model.Product, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) Update(ctx context.Context, p model.Product) error {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) Deactivate(ctx context.Context, id int64) error {
	panic("not used in CartUsecase tests")
}

func TestCartUsecase_AddToCart_Success(t *testing.T) {
	carts := &CartRepoMock{}
	products := &CartProductRepoMock{}
	uc := usecase.NewCartUsecase(carts, products)
	ctx := context.Background()

	products.On("FindByID", ctx, int64(101)).Return(model.Product{
		ID: 101, ProductName: "A", Price: decimal.RequireFromString("10.50"),
		StockQuantity: 5, IsActive: true,
	}, nil)
	carts.On("Upsert", ctx, int64(7), int64(101), int64(2)).Return(nil)
	carts.On("ListLines", ctx, int64(7)).Return([]repo.CartLine{
		{CartItemID: 1, ProductID: 101, ProductName: "A",
			UnitPrice: decimal.RequireFromString("10.50"), Quantity: 2, StockQuantity: 5},
	}, nil)

	out, err := uc.AddToCart(ctx, 7, usecase.AddCartInput{ProductID: 101, Quantity: 2})

	assert.NoError(t, err)
	assert.Equal(t, 1, out.ItemCount)
	assert.True(t, decimal.RequireFromString("21.00").Equal(out.Total))
	carts.AssertExpectations(t)
}

func TestCartUsecase_AddToCart_ProductNotFound(t *testing.T) {
	carts := &CartRepoMock{}
	products := &CartProductRepoMock{}
	uc := usecase.NewCartUsecase(carts, products)
	ctx := context.Background()

	products.On("FindByID", ctx, int64(101)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddToCart(ctx, 7, usecase.AddCartInput{ProductID: 101, Quantity: 1})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
	carts.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddToCart_InsufficientStockAtAddTime(t *testing.T) {
	carts := &CartRepoMock{}
	products := &CartProductRepoMock{}
	uc := usecase.NewCartUsecase(carts, products)
	ctx := context.Background()

	products.On("FindByID", ctx, int64(101)).Return(model.Product{
		ID: 101, ProductName: "A", Price: decimal.RequireFromString("10.50"),
		StockQuantity: 1, IsActive: true,
	}, nil)

	_, err := uc.AddToCart(ctx, 7, usecase.AddCartInput{ProductID: 101, Quantity: 3})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestCartUsecase_AddToCart_InvalidQuantity(t *testing.T) {
	uc := usecase.NewCartUsecase(&CartRepoMock{}, &CartProductRepoMock{})

	_, err := uc.AddToCart(context.Background(), 7, usecase.AddCartInput{ProductID: 101, Quantity: 0})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

// 数量0以下の更新は削除扱い
func TestCartUsecase_UpdateCartItem_ZeroQuantityRemoves(t *testing.T) {
	carts := &CartRepoMock{}
	products := &CartProductRepoMock{}
	uc := usecase.NewCartUsecase(carts, products)
	ctx := context.Background()

	carts.On("Remove", ctx, int64(1), int64(7)).Return(nil)
	carts.On("ListLines", ctx, int64(7)).Return([]repo.CartLine{}, nil)

	out, err := uc.UpdateCartItem(ctx, 7, usecase.UpdateCartItemInput{CartItemID: 1, Quantity: 0})

	assert.NoError(t, err)
	assert.Equal(t, 0, out.ItemCount)
	carts.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_UpdateCartItem_NotFound(t *testing.T) {
	carts := &CartRepoMock{}
	products := &CartProductRepoMock{}
	uc := usecase.NewCartUsecase(carts, products)
	ctx := context.Background()

	carts.On("UpdateQuantity", ctx, int64(1), int64(7), int64(3)).Return(repo.ErrNotFound)

	_, err := uc.UpdateCartItem(ctx, 7, usecase.UpdateCartItemInput{CartItemID: 1, Quantity: 3})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestCartUsecase_GetCart_TotalUsesCurrentPrices(t *testing.T) {
	carts := &CartRepoMock{}
	products := &CartProductRepoMock{}
	uc := usecase.NewCartUsecase(carts, products)
	ctx := context.Background()

	carts.On("ListLines", ctx, int64(7)).Return([]repo.CartLine{
		{CartItemID: 1, ProductID: 101, UnitPrice: decimal.RequireFromString("10.50"), Quantity: 2},
		{CartItemID: 2, ProductID: 102, UnitPrice: decimal.RequireFromString("24.00"), Quantity: 1},
	}, nil)

	out, err := uc.GetCart(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, 2, out.ItemCount)
	assert.True(t, decimal.RequireFromString("45.00").Equal(out.Total))
}

func TestCartUsecase_ClearCart_ReturnsRemovedCount(t *testing.T) {
	carts := &CartRepoMock{}
	uc := usecase.NewCartUsecase(carts, &CartProductRepoMock{})
	ctx := context.Background()

	carts.On("Clear", ctx, int64(7)).Return(int64(3), nil)

	removed, err := uc.ClearCart(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestCartUsecase_GetCartCount(t *testing.T) {
	carts := &CartRepoMock{}
	uc := usecase.NewCartUsecase(carts, &CartProductRepoMock{})
	ctx := context.Background()

	carts.On("CountByUserID", ctx, int64(7)).Return(int64(5), nil)

	count, err := uc.GetCartCount(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
