// Package normalize converts loosely-shaped product records into the
// canonical item shapes the cart and wishlist stores own. Missing or
// malformed fields never cause an error; every field has a documented
// fallback.
package normalize

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tishe/storefront/internal/domain"
)

const (
	defaultName     = "Untitled Product"
	defaultCategory = "Jewelry"

	// Shown when a record carries no usable image.
	placeholderImage = "https://images.unsplash.com/photo-1522312346375-d1a52e2b99b3?auto=format&fit=crop&w=500&q=60"
)

// LineItem resolves a product record into a cart line item. A requested
// quantity of zero or less becomes 1.
func LineItem(rec domain.ProductRecord, quantity int) domain.LineItem {
	if quantity <= 0 {
		quantity = 1
	}

	base := WishlistItem(rec)

	return domain.LineItem{
		ID:       base.ID,
		Name:     base.Name,
		Price:    base.Price,
		Image:    base.Image,
		Category: base.Category,
		Quantity: quantity,
	}
}

// WishlistItem resolves a product record into a wishlist item:
//   - id: record id, then sku, then a generated unique token
//   - name: "Untitled Product" when absent or empty
//   - price: coerced to a non-negative decimal, zero when unusable
//   - image: record image, then the first of images, then a placeholder
//   - category: categoryName, then category, then "Jewelry"
func WishlistItem(rec domain.ProductRecord) domain.WishlistItem {
	return domain.WishlistItem{
		ID:       itemID(rec),
		Name:     stringField(rec, defaultName, "name"),
		Price:    price(rec["price"]),
		Image:    image(rec),
		Category: stringField(rec, defaultCategory, "categoryName", "category"),
	}
}

func itemID(rec domain.ProductRecord) string {
	if id := stringField(rec, "", "id", "sku"); id != "" {
		return id
	}
	return uuid.NewString()
}

// stringField returns the first non-empty string among the named fields.
func stringField(rec domain.ProductRecord, fallback string, fields ...string) string {
	for _, f := range fields {
		if s, ok := rec[f].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

func image(rec domain.ProductRecord) string {
	if s, ok := rec["image"].(string); ok && s != "" {
		return s
	}

	switch images := rec["images"].(type) {
	case []string:
		if len(images) > 0 && images[0] != "" {
			return images[0]
		}
	case []any:
		if len(images) > 0 {
			if s, ok := images[0].(string); ok && s != "" {
				return s
			}
		}
	}

	return placeholderImage
}

// price coerces the record's price field to a non-negative decimal.
// Records arrive from a document boundary, so numbers show up as native
// numerics, json.Number, or numeric strings. Anything else is zero.
func price(v any) decimal.Decimal {
	var d decimal.Decimal

	switch n := v.(type) {
	case decimal.Decimal:
		d = n
	case float64:
		d = decimal.NewFromFloat(n)
	case float32:
		d = decimal.NewFromFloat32(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	case int64:
		d = decimal.NewFromInt(n)
	case json.Number:
		parsed, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		d = parsed
	case string:
		parsed, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero
		}
		d = parsed
	default:
		return decimal.Zero
	}

	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
