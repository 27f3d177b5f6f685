package domain

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Address struct {
	Name     string `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Address1 string `dynamodbav:"address1" json:"address1" binding:"required"`
	Address2 string `dynamodbav:"address2,omitempty" json:"address2,omitempty"`
	City     string `dynamodbav:"city" json:"city" binding:"required"`
	State    string `dynamodbav:"state" json:"state" binding:"required"`
	ZipCode  string `dynamodbav:"zipCode" json:"zipCode" binding:"required"`
	Country  string `dynamodbav:"country,omitempty" json:"country,omitempty"`
	Phone    string `dynamodbav:"phone,omitempty" json:"phone,omitempty"`
}

// OrderItem is the immutable per-line snapshot copied from the cart when the
// order is created.
type OrderItem struct {
	ProductID string  `dynamodbav:"productId" json:"productId"`
	Quantity  int     `dynamodbav:"quantity" json:"quantity"`
	Price     float64 `dynamodbav:"price" json:"price"`
	Name      string  `dynamodbav:"name" json:"name"`
}

type Order struct {
	ID              string      `dynamodbav:"id" json:"id"`
	UserID          string      `dynamodbav:"userId" json:"userId,omitempty"`
	Status          string      `dynamodbav:"status" json:"status"`
	PaymentStatus   string      `dynamodbav:"paymentStatus" json:"paymentStatus"`
	PaymentIntentID string      `dynamodbav:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	SessionID       string      `dynamodbav:"sessionId,omitempty" json:"sessionId,omitempty"`
	Items           []OrderItem `dynamodbav:"items" json:"items"`
	Totals          Totals      `dynamodbav:"totals" json:"totals"`
	ShippingAddress Address     `dynamodbav:"shippingAddress" json:"shippingAddress"`
	BillingAddress  Address     `dynamodbav:"billingAddress" json:"billingAddress"`
	DeliveryDate    string      `dynamodbav:"deliveryDate,omitempty" json:"deliveryDate,omitempty"`
	GiftMessage     string      `dynamodbav:"giftMessage,omitempty" json:"giftMessage,omitempty"`
	TrackingNumber  string      `dynamodbav:"trackingNumber,omitempty" json:"trackingNumber,omitempty"`
	CreatedAt       time.Time   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time   `dynamodbav:"updatedAt" json:"updatedAt"`
}

type CheckoutRequest struct {
	ShippingAddress Address  `json:"shippingAddress" binding:"required"`
	BillingAddress  *Address `json:"billingAddress"`
	DeliveryDate    string   `json:"deliveryDate"`
	GiftMessage     string   `json:"giftMessage"`
}

type CheckoutResult struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
	OrderID   string `json:"orderId"`
}

type UpdateOrderStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"trackingNumber"`
}
