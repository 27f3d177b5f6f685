package domain

import "github.com/shopspring/decimal"

// Single pricing policy for cart display and checkout. Both paths must agree
// on tax and shipping or the order totals drift from what the cart showed.
var (
	taxRate               = decimal.NewFromFloat(0.08)
	freeShippingThreshold = decimal.NewFromInt(50)
	flatShippingRate      = decimal.NewFromFloat(9.99)
)

type Totals struct {
	Subtotal float64 `dynamodbav:"subtotal" json:"subtotal"`
	Tax      float64 `dynamodbav:"tax" json:"tax"`
	Shipping float64 `dynamodbav:"shipping" json:"shipping"`
	Total    float64 `dynamodbav:"total" json:"total"`
}

// LineSubtotal is price*quantity without rounding; callers sum lines and
// round once in CalculateTotals.
func LineSubtotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

// CalculateTotals applies 8% tax and the flat shipping rate, waived on
// subtotals strictly above the free-shipping threshold. Every component is
// rounded to cents before summing.
func CalculateTotals(subtotal decimal.Decimal) Totals {
	sub := subtotal.Round(2)
	tax := sub.Mul(taxRate).Round(2)

	shipping := flatShippingRate
	if sub.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}

	total := sub.Add(tax).Add(shipping).Round(2)

	return Totals{
		Subtotal: sub.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}
