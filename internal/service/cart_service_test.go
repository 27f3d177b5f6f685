package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rakhigifts/shop-service/internal/domain"
)

func testProduct(id string, price float64, stock int) *domain.Product {
	return &domain.Product{
		ID:       id,
		Name:     "Gold Rakhi " + id,
		Price:    price,
		Category: domain.CategoryRakhi,
		Images:   []string{"https://cdn.example.com/" + id + ".jpg"},
		Stock:    stock,
		SKU:      "SKU-" + id,
		IsActive: true,
	}
}

func testCartItem(id, userID, productID string, price float64, quantity int) *domain.CartItem {
	now := time.Now().UTC()
	return &domain.CartItem{
		ID:        id,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
		Name:      "Gold Rakhi " + productID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestGetCartComputesTotals(t *testing.T) {
	carts := newFakeCartRepo(
		testCartItem("c1", "user-a", "p1", 30.00, 2),
	)
	svc := NewCartService(carts, newFakeProductRepo(), zap.NewNop())

	cart, err := svc.GetCart(context.Background(), "user-a")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 60.00, cart.Totals.Subtotal)
	assert.Equal(t, 4.80, cart.Totals.Tax)
	assert.Equal(t, 0.00, cart.Totals.Shipping)
	assert.Equal(t, 64.80, cart.Totals.Total)
}

func TestGetCartIgnoresOtherUsers(t *testing.T) {
	carts := newFakeCartRepo(
		testCartItem("c1", "user-a", "p1", 10.00, 1),
		testCartItem("c2", "user-b", "p1", 10.00, 5),
	)
	svc := NewCartService(carts, newFakeProductRepo(), zap.NewNop())

	cart, err := svc.GetCart(context.Background(), "user-a")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 10.00, cart.Totals.Subtotal)
	assert.Equal(t, 9.99, cart.Totals.Shipping)
	assert.Equal(t, 20.79, cart.Totals.Total)
}

func TestAddToCartSnapshotsProduct(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", 25.00, 10))
	carts := newFakeCartRepo()
	svc := NewCartService(carts, products, zap.NewNop())

	item, err := svc.AddToCart(context.Background(), "user-a", domain.AddToCartRequest{
		ProductID: "p1",
		Quantity:  2,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "user-a", item.UserID)
	assert.Equal(t, 25.00, item.Price)
	assert.Equal(t, "Gold Rakhi p1", item.Name)
	assert.Equal(t, "https://cdn.example.com/p1.jpg", item.Image)
	assert.Equal(t, 1, carts.puts)
}

func TestAddToCartDefaultsQuantity(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", 25.00, 10))
	svc := NewCartService(newFakeCartRepo(), products, zap.NewNop())

	item, err := svc.AddToCart(context.Background(), "user-a", domain.AddToCartRequest{ProductID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), newFakeProductRepo(), zap.NewNop())

	_, err := svc.AddToCart(context.Background(), "user-a", domain.AddToCartRequest{ProductID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAddToCartStockBoundary(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", 25.00, 3))
	carts := newFakeCartRepo()
	svc := NewCartService(carts, products, zap.NewNop())

	// Quantity equal to stock is allowed.
	_, err := svc.AddToCart(context.Background(), "user-a", domain.AddToCartRequest{
		ProductID: "p1",
		Quantity:  3,
	})
	require.NoError(t, err)

	// One more than stock is not.
	_, err = svc.AddToCart(context.Background(), "user-a", domain.AddToCartRequest{
		ProductID: "p1",
		Quantity:  4,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 1, carts.puts)
}

func TestUpdateItemRejectsNonPositiveQuantity(t *testing.T) {
	carts := newFakeCartRepo(testCartItem("c1", "user-a", "p1", 10.00, 1))
	svc := NewCartService(carts, newFakeProductRepo(), zap.NewNop())

	for _, qty := range []int{0, -1} {
		_, err := svc.UpdateItem(context.Background(), "user-a", "c1", qty)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
	// Never reached the store.
	assert.Equal(t, 0, carts.updateCalls)
}

func TestUpdateItemOwnership(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", 10.00, 10))
	carts := newFakeCartRepo(testCartItem("c1", "user-a", "p1", 10.00, 1))
	svc := NewCartService(carts, products, zap.NewNop())

	_, err := svc.UpdateItem(context.Background(), "user-b", "c1", 2)
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
	assert.Equal(t, 0, carts.updateCalls)
}

func TestUpdateItemRechecksCurrentStock(t *testing.T) {
	// Stock dropped to 1 after the item was added with quantity 1.
	products := newFakeProductRepo(testProduct("p1", 10.00, 1))
	carts := newFakeCartRepo(testCartItem("c1", "user-a", "p1", 10.00, 1))
	svc := NewCartService(carts, products, zap.NewNop())

	_, err := svc.UpdateItem(context.Background(), "user-a", "c1", 5)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	updated, err := svc.UpdateItem(context.Background(), "user-a", "c1", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Quantity)
}

func TestRemoveItem(t *testing.T) {
	carts := newFakeCartRepo(testCartItem("c1", "user-a", "p1", 10.00, 1))
	svc := NewCartService(carts, newFakeProductRepo(), zap.NewNop())

	require.NoError(t, svc.RemoveItem(context.Background(), "user-a", "c1"))

	err := svc.RemoveItem(context.Background(), "user-a", "c1")
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestRemoveItemForeignUser(t *testing.T) {
	carts := newFakeCartRepo(testCartItem("c1", "user-a", "p1", 10.00, 1))
	svc := NewCartService(carts, newFakeProductRepo(), zap.NewNop())

	err := svc.RemoveItem(context.Background(), "user-b", "c1")
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)

	// Item still present for its owner.
	_, err = carts.Get(context.Background(), "c1")
	assert.NoError(t, err)
}
