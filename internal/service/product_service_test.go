package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rakhigifts/shop-service/internal/domain"
)

func TestCreateProductDefaults(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewProductService(products, zap.NewNop())

	created, err := svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		Name:        "Pearl Rakhi",
		Description: "A pearl-studded rakhi",
		Price:       14.99,
		Category:    domain.CategoryRakhi,
		SKU:         "RAK-PEARL-01",
		Stock:       25,
		DeliveryInfo: domain.DeliveryInfo{
			EstimatedDays: 3,
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive, "products default to active")
	assert.NotNil(t, created.Images, "nil slices are stored as empty")
	assert.NotNil(t, created.DeliveryInfo.AvailableZipCodes)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateProductExplicitInactive(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), zap.NewNop())

	inactive := false
	created, err := svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		Name:         "Draft Hamper",
		Description:  "Not yet for sale",
		Price:        49.99,
		Category:     domain.CategoryHampers,
		SKU:          "HAM-DRAFT-01",
		IsActive:     &inactive,
		DeliveryInfo: domain.DeliveryInfo{EstimatedDays: 5},
	})
	require.NoError(t, err)
	assert.False(t, created.IsActive)
}

func TestListProductsOnlyActive(t *testing.T) {
	active := testProduct("p1", 10.00, 5)
	hidden := testProduct("p2", 10.00, 5)
	hidden.IsActive = false
	svc := NewProductService(newFakeProductRepo(active, hidden), zap.NewNop())

	got, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestUpdateProductPartial(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", 10.00, 5))
	svc := NewProductService(products, zap.NewNop())

	price := 12.50
	updated, err := svc.UpdateProduct(context.Background(), "p1", domain.ProductUpdate{
		Price: &price,
	})
	require.NoError(t, err)

	assert.Equal(t, 12.50, updated.Price)
	assert.Equal(t, "Gold Rakhi p1", updated.Name, "unset fields keep their value")
	assert.Equal(t, 5, updated.Stock)
}

func TestUpdateProductUnknown(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), zap.NewNop())

	name := "Renamed"
	_, err := svc.UpdateProduct(context.Background(), "ghost", domain.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", 10.00, 5))
	svc := NewProductService(products, zap.NewNop())

	require.NoError(t, svc.DeleteProduct(context.Background(), "p1"))

	_, err := svc.GetProduct(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
