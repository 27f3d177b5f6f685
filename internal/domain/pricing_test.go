package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     Totals
	}{
		{
			name:     "free shipping over threshold",
			subtotal: 60.00,
			want:     Totals{Subtotal: 60.00, Tax: 4.80, Shipping: 0, Total: 64.80},
		},
		{
			name:     "flat shipping under threshold",
			subtotal: 10.00,
			want:     Totals{Subtotal: 10.00, Tax: 0.80, Shipping: 9.99, Total: 20.79},
		},
		{
			name:     "threshold is strict",
			subtotal: 50.00,
			want:     Totals{Subtotal: 50.00, Tax: 4.00, Shipping: 9.99, Total: 63.99},
		},
		{
			name:     "just over threshold",
			subtotal: 50.01,
			want:     Totals{Subtotal: 50.01, Tax: 4.00, Shipping: 0, Total: 54.01},
		},
		{
			name:     "empty cart",
			subtotal: 0,
			want:     Totals{Subtotal: 0, Tax: 0, Shipping: 9.99, Total: 9.99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotals(decimal.NewFromFloat(tt.subtotal))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateTotalsRoundsTax(t *testing.T) {
	// 10.55 * 0.08 = 0.844, rounds down to 0.84.
	got := CalculateTotals(decimal.NewFromFloat(10.55))
	assert.Equal(t, 0.84, got.Tax)
	assert.Equal(t, 21.38, got.Total)
}

func TestLineSubtotal(t *testing.T) {
	sub := LineSubtotal(30.00, 2)
	assert.True(t, sub.Equal(decimal.NewFromInt(60)))

	// Float-hostile price stays exact through decimal arithmetic.
	sub = LineSubtotal(0.10, 3)
	assert.True(t, sub.Equal(decimal.NewFromFloat(0.30)))
}
