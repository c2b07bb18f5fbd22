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

type ProdRepoMock struct{ mock.Mock }

func (m *ProdRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProdRepoMock) ListFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProdRepoMock) ListBrands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	brands, _ := args.Get(0).([]string)
	return brands, args.Error(1)
}

func (m *ProdRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProdRepoMock) FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProdRepoMock) FindByIDAdmin(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProdRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProdRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProdRepoMock) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ProdInventoryRepoMock struct{ mock.Mock }

func (m *ProdInventoryRepoMock) DecrementStockIfAvailable(ctx context.Context, productID int64, qty int64) (bool, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProdInventoryRepoMock) AdjustStock(ctx context.Context, productID int64, delta int64) (bool, error) {
	args := m.Called(ctx, productID, delta)
	return args.Get(0).(bool), args.Error(1)
}

func (m *ProdInventoryRepoMock) CreateAdjustment(ctx context.Context, adjustment model.InventoryAdjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

func newProductTestEnv() (*usecase.ProductUsecase, *ProdRepoMock, *ProdInventoryRepoMock, *AuditRepoMock) {
	products := &ProdRepoMock{}
	inventory := &ProdInventoryRepoMock{}
	audit := &AuditRepoMock{}
	return usecase.NewProductUsecase(products, inventory, audit), products, inventory, audit
}

func TestProductUsecase_ListPublicProducts_InvalidPriceRange(t *testing.T) {
	uc, _, _, _ := newProductTestEnv()

	minP := decimal.RequireFromString("50.00")
	maxP := decimal.RequireFromString("10.00")

	_, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{
		Page: 1, Limit: 20, MinPrice: &minP, MaxPrice: &maxP,
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestProductUsecase_GetProductDetail_NotFound(t *testing.T) {
	uc, products, _, _ := newProductTestEnv()
	ctx := context.Background()

	products.On("FindByID", ctx, int64(5)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(ctx, 5)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestProductUsecase_AdminCreateProduct_Success_WritesAudit(t *testing.T) {
	uc, products, _, audit := newProductTestEnv()
	ctx := context.Background()

	in := usecase.ProductInput{
		CategoryID:    1,
		ProductName:   "ThinkBook 14",
		Price:         decimal.RequireFromString("799.99"),
		StockQuantity: 10,
		IsActive:      true,
	}

	products.On("Create", ctx, mock.AnythingOfType("model.Product")).Return(model.Product{
		ID: 55, CategoryID: 1, ProductName: "ThinkBook 14",
		Price: decimal.RequireFromString("799.99"), StockQuantity: 10, IsActive: true,
	}, nil)
	audit.On("Create", ctx, mock.AnythingOfType("model.AuditLog")).Return(nil)

	created, err := uc.AdminCreateProduct(ctx, 1, in)

	assert.NoError(t, err)
	assert.Equal(t, int64(55), created.ID)
	audit.AssertExpectations(t)
}

func TestProductUsecase_AdminCreateProduct_InvalidPrice(t *testing.T) {
	uc, products, _, _ := newProductTestEnv()

	_, err := uc.AdminCreateProduct(context.Background(), 1, usecase.ProductInput{
		CategoryID:  1,
		ProductName: "ThinkBook 14",
		Price:       decimal.Zero,
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUsecase_AdminAdjustStock_Success(t *testing.T) {
	uc, products, inventory, audit := newProductTestEnv()
	ctx := context.Background()

	products.On("FindByIDAdmin", ctx, int64(55)).Return(model.Product{
		ID: 55, ProductName: "ThinkBook 14", StockQuantity: 10,
	}, nil)
	inventory.On("AdjustStock", ctx, int64(55), int64(-4)).Return(true, nil)

	var adj model.InventoryAdjustment
	inventory.On("CreateAdjustment", ctx, mock.AnythingOfType("model.InventoryAdjustment")).
		Run(func(args mock.Arguments) {
			adj = args.Get(1).(model.InventoryAdjustment)
		}).
		Return(nil)
	audit.On("Create", ctx, mock.AnythingOfType("model.AuditLog")).Return(nil)

	err := uc.AdminAdjustStock(ctx, 1, 55, usecase.StockAdjustInput{Delta: -4, Reason: "damaged units"})

	assert.NoError(t, err)
	assert.Equal(t, int64(-4), adj.Delta)
	assert.Equal(t, "damaged units", adj.Reason)
	assert.Equal(t, int64(1), adj.AdminUserID)
}

func TestProductUsecase_AdminAdjustStock_WouldGoNegative(t *testing.T) {
	uc, products, inventory, _ := newProductTestEnv()
	ctx := context.Background()

	products.On("FindByIDAdmin", ctx, int64(55)).Return(model.Product{
		ID: 55, StockQuantity: 2,
	}, nil)
	inventory.On("AdjustStock", ctx, int64(55), int64(-5)).Return(false, nil)

	err := uc.AdminAdjustStock(ctx, 1, 55, usecase.StockAdjustInput{Delta: -5, Reason: "shrinkage"})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
	inventory.AssertNotCalled(t, "CreateAdjustment", mock.Anything, mock.Anything)
}

func TestProductUsecase_AdminAdjustStock_ReasonRequired(t *testing.T) {
	uc, _, inventory, _ := newProductTestEnv()

	err := uc.AdminAdjustStock(context.Background(), 1, 55, usecase.StockAdjustInput{Delta: 3, Reason: "  "})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
	inventory.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductUsecase_AdminDeleteProduct_Deactivates(t *testing.T) {
	uc, products, _, audit := newProductTestEnv()
	ctx := context.Background()

	products.On("Deactivate", ctx, int64(55)).Return(nil)
	audit.On("Create", ctx, mock.AnythingOfType("model.AuditLog")).Return(nil)

	err := uc.AdminDeleteProduct(ctx, 1, 55)

	assert.NoError(t, err)
	products.AssertExpectations(t)
}
