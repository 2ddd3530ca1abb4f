// Package pricing computes the order summaries shown on the cart and
// checkout screens. The functions are pure: no stored state, recomputed
// from the current cart on every call.
//
// One tax rate applies everywhere. The shipping rules differ on purpose:
// the cart page shows a flat-fee estimate before a delivery speed exists,
// checkout charges the selected delivery option.
package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/tishe/storefront/internal/domain"
	"golang.org/x/text/currency"
)

type Config struct {
	TaxRate         decimal.Decimal
	CartShippingFee decimal.Decimal
	Currency        currency.Unit
}

func DefaultConfig() Config {
	return Config{
		TaxRate:         decimal.NewFromFloat(0.05),
		CartShippingFee: decimal.NewFromFloat(4.99),
		Currency:        currency.INR,
	}
}

// DeliveryOptions is the storefront's default delivery speed set.
func DeliveryOptions() []domain.DeliveryOption {
	return []domain.DeliveryOption{
		{ID: "standard", Name: "Standard Delivery", ETA: "3-5 business days", Price: decimal.Zero},
		{ID: "express", Name: "Express Delivery", ETA: "1-2 business days", Price: decimal.NewFromInt(249)},
	}
}

// CartEstimate prices the cart page summary: a flat shipping fee whenever
// the cart is non-empty, tax on the subtotal.
func (c Config) CartEstimate(items []domain.LineItem) domain.Summary {
	subtotal := Subtotal(items)

	shipping := decimal.Zero
	if len(items) > 0 {
		shipping = c.CartShippingFee
	}

	return c.summary(subtotal, shipping)
}

// CheckoutQuote prices the checkout summary: shipping is whatever the
// selected delivery option costs.
func (c Config) CheckoutQuote(subtotal decimal.Decimal, delivery domain.DeliveryOption) domain.Summary {
	return c.summary(subtotal, delivery.Price)
}

// Subtotal is the sum of price*quantity over the items.
func Subtotal(items []domain.LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return subtotal
}

func (c Config) summary(subtotal, shipping decimal.Decimal) domain.Summary {
	tax := subtotal.Mul(c.TaxRate)

	return domain.Summary{
		Subtotal: c.money(subtotal),
		Shipping: c.money(shipping),
		Tax:      c.money(tax),
		Total:    c.money(subtotal.Add(shipping).Add(tax)),
	}
}

func (c Config) money(amount decimal.Decimal) domain.Money {
	return domain.Money{Amount: amount, Currency: c.Currency}
}
