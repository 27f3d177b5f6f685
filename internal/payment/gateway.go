// Package payment wraps the hosted-checkout provider. Services depend on the
// Gateway interface so tests can substitute a fake.
package payment

import "context"

const EventCheckoutCompleted = "checkout.session.completed"

// LineItem amounts are in minor currency units (cents).
type LineItem struct {
	Name        string
	Description string
	Image       string
	UnitAmount  int64
	Quantity    int
}

type SessionParams struct {
	OrderID        string
	UserID         string
	LineItems      []LineItem
	ShippingAmount int64
	SuccessURL     string
	CancelURL      string
}

type Session struct {
	ID              string
	URL             string
	PaymentIntentID string
}

type WebhookEvent struct {
	Type      string
	OrderID   string
	SessionID string
}

type Gateway interface {
	CreateSession(ctx context.Context, params SessionParams) (*Session, error)
	// VerifyWebhook authenticates the raw payload against the signature
	// header and decodes the event. A verification failure is the caller's
	// signal to reject without processing.
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
