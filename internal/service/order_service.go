package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/rakhigifts/shop-service/internal/domain"
)

type OrderService struct {
	orders OrderRepository
	logger *zap.Logger
}

func NewOrderService(orders OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		logger: logger,
	}
}

func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *OrderService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list all orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// UpdateStatus is the administrative transition on the status axis; the
// payment axis moves only through the gateway webhook.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest) (*domain.Order, error) {
	if !domain.ValidOrderStatus(req.Status) {
		return nil, domain.ErrInvalidStatus
	}

	order, err := s.orders.UpdateStatus(ctx, orderID, req.Status, req.TrackingNumber)
	if err != nil {
		s.logger.Error("Failed to update order status",
			zap.String("order_id", orderID),
			zap.String("status", req.Status),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("status", req.Status))

	return order, nil
}
