package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// Summary is a priced order breakdown as shown on the cart and checkout
// screens. All four amounts share one currency.
type Summary struct {
	Subtotal Money
	Shipping Money
	Tax      Money
	Total    Money
}
