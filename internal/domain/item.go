package domain

import "github.com/shopspring/decimal"

// LineItem is a cart entry: a canonical product reference plus the purchase
// quantity. At most one LineItem per ID exists in a cart; a quantity of zero
// or less is never kept, such items are removed instead.
type LineItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
}

// WishlistItem is a saved-for-later product reference. Membership is binary,
// keyed by ID; there is no quantity.
type WishlistItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
}

// ProductRecord is a product document as received from the catalog
// collaborator. Fields are optional and loosely typed; the normalize package
// resolves a record into a canonical item.
type ProductRecord map[string]any
