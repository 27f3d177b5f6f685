package service

import (
	"context"

	"github.com/rakhigifts/shop-service/internal/domain"
)

// Store and event interfaces the services are constructed with. The DynamoDB
// repositories satisfy them in production; tests inject fakes.

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Get(ctx context.Context, productID string) (*domain.Product, error)
	ListActive(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, productID string, upd domain.ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, productID string) error
}

type CartRepository interface {
	Put(ctx context.Context, item *domain.CartItem) error
	Get(ctx context.Context, itemID string) (*domain.CartItem, error)
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	UpdateQuantity(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error)
	Delete(ctx context.Context, itemID string) error
}

type OrderRepository interface {
	Put(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	MarkPaid(ctx context.Context, orderID string) error
	UpdateStatus(ctx context.Context, orderID, status, trackingNumber string) (*domain.Order, error)
}

type BlogRepository interface {
	Put(ctx context.Context, post *domain.BlogPost) error
	Get(ctx context.Context, slug string) (*domain.BlogPost, error)
}

type EventPublisher interface {
	OrderCreated(ctx context.Context, order *domain.Order) error
	OrderPaid(ctx context.Context, orderID string) error
}
