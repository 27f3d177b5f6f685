package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rakhigifts/shop-service/internal/domain"
	"github.com/rakhigifts/shop-service/internal/payment"
)

type CheckoutService struct {
	carts       CartRepository
	products    ProductRepository
	orders      OrderRepository
	gateway     payment.Gateway
	publisher   EventPublisher
	frontendURL string
	logger      *zap.Logger
}

func NewCheckoutService(
	carts CartRepository,
	products ProductRepository,
	orders OrderRepository,
	gateway payment.Gateway,
	publisher EventPublisher,
	frontendURL string,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		carts:       carts,
		products:    products,
		orders:      orders,
		gateway:     gateway,
		publisher:   publisher,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// CreateSession converts the user's cart into an order with a hosted payment
// session. The cart is cleared only after both the session and the order
// write succeed; any earlier failure leaves the cart intact.
func (s *CheckoutService) CreateSession(ctx context.Context, userID string, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	cartItems, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, domain.ErrEmptyCart
	}

	// Stock and price drift between add-to-cart and checkout, so every line
	// is validated and priced against the current product record.
	lineItems := make([]payment.LineItem, 0, len(cartItems))
	subtotal := decimal.Zero

	for _, cartItem := range cartItems {
		product, err := s.products.Get(ctx, cartItem.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", cartItem.ProductID, err)
		}
		if product.Stock < cartItem.Quantity {
			return nil, fmt.Errorf("%s: %w", product.Name, domain.ErrInsufficientStock)
		}

		li := payment.LineItem{
			Name:        product.Name,
			Description: product.Description,
			UnitAmount:  toCents(product.Price),
			Quantity:    cartItem.Quantity,
		}
		if len(product.Images) > 0 {
			li.Image = product.Images[0]
		}
		lineItems = append(lineItems, li)

		subtotal = subtotal.Add(domain.LineSubtotal(product.Price, cartItem.Quantity))
	}

	totals := domain.CalculateTotals(subtotal)

	orderID := uuid.NewString()
	session, err := s.gateway.CreateSession(ctx, payment.SessionParams{
		OrderID:        orderID,
		UserID:         userID,
		LineItems:      lineItems,
		ShippingAmount: toCents(totals.Shipping),
		SuccessURL:     s.frontendURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:      s.frontendURL + "/checkout/cancel",
	})
	if err != nil {
		s.logger.Error("Failed to create payment session",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, err
	}

	billing := req.ShippingAddress
	if req.BillingAddress != nil {
		billing = *req.BillingAddress
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:              orderID,
		UserID:          userID,
		Status:          domain.OrderStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		PaymentIntentID: session.PaymentIntentID,
		SessionID:       session.ID,
		Items:           snapshotItems(cartItems),
		Totals:          totals,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  billing,
		DeliveryDate:    req.DeliveryDate,
		GiftMessage:     req.GiftMessage,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Put(ctx, order); err != nil {
		s.logger.Error("Failed to save order",
			zap.String("order_id", orderID),
			zap.Error(err))
		return nil, err
	}

	// Best effort from here: the order exists and the session is live, so a
	// failed delete only leaves stale cart items behind. Deletes are
	// idempotent and a retried checkout clears them.
	for _, cartItem := range cartItems {
		if err := s.carts.Delete(ctx, cartItem.ID); err != nil {
			s.logger.Warn("Failed to clear cart item after checkout",
				zap.String("cart_item_id", cartItem.ID),
				zap.String("order_id", orderID),
				zap.Error(err))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.OrderCreated(ctx, order); err != nil {
			s.logger.Warn("Failed to publish order created event",
				zap.String("order_id", orderID),
				zap.Error(err))
		}
	}

	s.logger.Info("Checkout session created",
		zap.String("order_id", orderID),
		zap.String("session_id", session.ID),
		zap.Float64("total", totals.Total))

	return &domain.CheckoutResult{
		SessionID: session.ID,
		URL:       session.URL,
		OrderID:   orderID,
	}, nil
}

// HandleWebhook processes a signed gateway callback. Completion events mark
// the order paid; anything else is acknowledged without side effect. Replays
// re-apply the same paid state, so the handler is idempotent.
func (s *CheckoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		s.logger.Warn("Webhook verification failed", zap.Error(err))
		return err
	}

	if event.Type != payment.EventCheckoutCompleted {
		s.logger.Info("Ignoring webhook event", zap.String("type", event.Type))
		return nil
	}

	if event.OrderID == "" {
		s.logger.Warn("Completed session without order correlation",
			zap.String("session_id", event.SessionID))
		return nil
	}

	if err := s.orders.MarkPaid(ctx, event.OrderID); err != nil {
		s.logger.Error("Failed to mark order paid",
			zap.String("order_id", event.OrderID),
			zap.Error(err))
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.OrderPaid(ctx, event.OrderID); err != nil {
			s.logger.Warn("Failed to publish order paid event",
				zap.String("order_id", event.OrderID),
				zap.Error(err))
		}
	}

	s.logger.Info("Order marked paid",
		zap.String("order_id", event.OrderID),
		zap.String("session_id", event.SessionID))

	return nil
}

func snapshotItems(cartItems []domain.CartItem) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(cartItems))
	for _, it := range cartItems {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Name:      it.Name,
		})
	}
	return items
}

func toCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
