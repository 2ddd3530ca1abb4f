package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tishe/storefront/internal/domain"
	"github.com/tishe/storefront/internal/pricing"
	"golang.org/x/text/currency"
)

func TestCartEstimate(t *testing.T) {
	cfg := pricing.DefaultConfig()

	tests := []struct {
		name         string
		items        []domain.LineItem
		wantSubtotal string
		wantShipping string
		wantTax      string
		wantTotal    string
	}{
		{
			name:         "empty cart: no shipping, no tax",
			items:        nil,
			wantSubtotal: "0",
			wantShipping: "0",
			wantTax:      "0",
			wantTotal:    "0",
		},
		{
			name: "single item",
			items: []domain.LineItem{
				lineItem("a", "100", 2),
			},
			wantSubtotal: "200",
			wantShipping: "4.99",
			wantTax:      "10",
			wantTotal:    "214.99",
		},
		{
			name: "multiple items",
			items: []domain.LineItem{
				lineItem("a", "599.99", 1),
				lineItem("b", "149.99", 2),
			},
			wantSubtotal: "899.97",
			wantShipping: "4.99",
			wantTax:      "44.9985",
			wantTotal:    "949.9585",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := cfg.CartEstimate(tt.items)

			assertAmount(t, tt.wantSubtotal, summary.Subtotal)
			assertAmount(t, tt.wantShipping, summary.Shipping)
			assertAmount(t, tt.wantTax, summary.Tax)
			assertAmount(t, tt.wantTotal, summary.Total)
		})
	}
}

func TestCheckoutQuote(t *testing.T) {
	cfg := pricing.DefaultConfig()
	options := pricing.DeliveryOptions()
	require.Len(t, options, 2)

	subtotal := decimal.NewFromInt(1000)

	t.Run("standard delivery is free", func(t *testing.T) {
		summary := cfg.CheckoutQuote(subtotal, options[0])

		assertAmount(t, "1000", summary.Subtotal)
		assertAmount(t, "0", summary.Shipping)
		assertAmount(t, "50", summary.Tax)
		assertAmount(t, "1050", summary.Total)
	})

	t.Run("express delivery adds its price", func(t *testing.T) {
		summary := cfg.CheckoutQuote(subtotal, options[1])

		assertAmount(t, "249", summary.Shipping)
		assertAmount(t, "1299", summary.Total)
	})
}

// The cart page and checkout apply the same tax rate to the same subtotal.
func TestOneTaxRateEverywhere(t *testing.T) {
	cfg := pricing.DefaultConfig()

	items := []domain.LineItem{lineItem("a", "100", 1)}
	estimate := cfg.CartEstimate(items)
	quote := cfg.CheckoutQuote(pricing.Subtotal(items), pricing.DeliveryOptions()[0])

	assert.True(t, estimate.Tax.Amount.Equal(quote.Tax.Amount),
		"cart tax %s != checkout tax %s", estimate.Tax.Amount, quote.Tax.Amount)
}

func TestSummaryCurrency(t *testing.T) {
	cfg := pricing.DefaultConfig()
	cfg.Currency = currency.USD

	summary := cfg.CartEstimate([]domain.LineItem{lineItem("a", "10", 1)})

	assert.Equal(t, currency.USD, summary.Subtotal.Currency)
	assert.Equal(t, currency.USD, summary.Total.Currency)
}

func lineItem(id, price string, quantity int) domain.LineItem {
	return domain.LineItem{
		ID:       id,
		Price:    decimal.RequireFromString(price),
		Quantity: quantity,
	}
}

func assertAmount(t *testing.T, want string, got domain.Money) {
	t.Helper()

	expected := decimal.RequireFromString(want)
	assert.True(t, expected.Equal(got.Amount), "want %s, got %s", expected, got.Amount)
}
