package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rakhigifts/shop-service/internal/domain"
)

type CartService struct {
	carts    CartRepository
	products ProductRepository
	logger   *zap.Logger
}

func NewCartService(carts CartRepository, products ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		logger:   logger,
	}
}

// GetCart totals use the price snapshot on each cart item, not the live
// product price; checkout re-prices against the catalog.
func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(domain.LineSubtotal(item.Price, item.Quantity))
	}

	return &domain.Cart{
		Items:  items,
		Totals: domain.CalculateTotals(subtotal),
	}, nil
}

func (s *CartService) AddToCart(ctx context.Context, userID string, req domain.AddToCartRequest) (*domain.CartItem, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.products.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	if product.Stock < quantity {
		return nil, domain.ErrInsufficientStock
	}

	now := time.Now().UTC()
	item := &domain.CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  quantity,
		Price:     product.Price,
		Name:      product.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(product.Images) > 0 {
		item.Image = product.Images[0]
	}

	if err := s.carts.Put(ctx, item); err != nil {
		s.logger.Error("Failed to save cart item",
			zap.String("user_id", userID),
			zap.String("product_id", product.ID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Item added to cart",
		zap.String("cart_item_id", item.ID),
		zap.String("product_id", product.ID),
		zap.Int("quantity", quantity))

	return item, nil
}

func (s *CartService) UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	item, err := s.carts.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		// Foreign items read as absent; ownership is not disclosed.
		return nil, domain.ErrCartItemNotFound
	}

	// Stock can drift after add-time, so re-check against the current
	// product record.
	product, err := s.products.Get(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, domain.ErrInsufficientStock
	}

	updated, err := s.carts.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		s.logger.Error("Failed to update cart item",
			zap.String("cart_item_id", itemID),
			zap.Error(err))
		return nil, err
	}

	return updated, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	item, err := s.carts.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return domain.ErrCartItemNotFound
	}

	if err := s.carts.Delete(ctx, itemID); err != nil {
		s.logger.Error("Failed to remove cart item",
			zap.String("cart_item_id", itemID),
			zap.Error(err))
		return err
	}

	return nil
}
