package normalize_test

import (
	"encoding/json"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tishe/storefront/internal/domain"
	"github.com/tishe/storefront/internal/normalize"
)

const placeholderImage = "https://images.unsplash.com/photo-1522312346375-d1a52e2b99b3?auto=format&fit=crop&w=500&q=60"

func TestWishlistItem(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.ProductRecord
		want domain.WishlistItem
	}{
		{
			name: "complete record: all fields kept",
			rec: domain.ProductRecord{
				"id":       "p-1",
				"name":     "Diamond Solitaire Ring",
				"price":    599.99,
				"image":    "https://example.com/ring.jpg",
				"category": "Rings",
			},
			want: domain.WishlistItem{
				ID:       "p-1",
				Name:     "Diamond Solitaire Ring",
				Price:    decimal.NewFromFloat(599.99),
				Image:    "https://example.com/ring.jpg",
				Category: "Rings",
			},
		},
		{
			name: "sku when id absent",
			rec:  domain.ProductRecord{"sku": "SKU-9", "name": "Bangle"},
			want: domain.WishlistItem{
				ID:       "SKU-9",
				Name:     "Bangle",
				Price:    decimal.Zero,
				Image:    placeholderImage,
				Category: "Jewelry",
			},
		},
		{
			name: "categoryName wins over category",
			rec: domain.ProductRecord{
				"id":           "p-2",
				"name":         "Pearl Necklace",
				"categoryName": "Necklaces",
				"category":     "necklaces-slug",
			},
			want: domain.WishlistItem{
				ID:       "p-2",
				Name:     "Pearl Necklace",
				Price:    decimal.Zero,
				Image:    placeholderImage,
				Category: "Necklaces",
			},
		},
		{
			name: "first of images when image absent",
			rec: domain.ProductRecord{
				"id":     "p-3",
				"name":   "Hoops",
				"images": []any{"https://example.com/a.jpg", "https://example.com/b.jpg"},
			},
			want: domain.WishlistItem{
				ID:       "p-3",
				Name:     "Hoops",
				Price:    decimal.Zero,
				Image:    "https://example.com/a.jpg",
				Category: "Jewelry",
			},
		},
		{
			name: "empty record: all fallbacks except generated id",
			rec:  domain.ProductRecord{},
			want: domain.WishlistItem{
				Name:     "Untitled Product",
				Price:    decimal.Zero,
				Image:    placeholderImage,
				Category: "Jewelry",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize.WishlistItem(tt.rec)

			if tt.want.ID == "" {
				assert.NotEmpty(t, got.ID)
				got.ID = ""
			}
			assertItemEqual(t, tt.want, got)
		})
	}
}

func TestWishlistItem_GeneratedIDsAreUnique(t *testing.T) {
	rec := domain.ProductRecord{"name": gofakeit.ProductName()}

	first := normalize.WishlistItem(rec)
	second := normalize.WishlistItem(rec)

	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestLineItem_Quantity(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "positive quantity kept", requested: 3, want: 3},
		{name: "zero becomes one", requested: 0, want: 1},
		{name: "negative becomes one", requested: -5, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := normalize.LineItem(domain.ProductRecord{"id": "p-1"}, tt.requested)
			assert.Equal(t, tt.want, item.Quantity)
		})
	}
}

func TestPriceCoercion(t *testing.T) {
	tests := []struct {
		name  string
		price any
		want  decimal.Decimal
	}{
		{name: "float64", price: 149.99, want: decimal.NewFromFloat(149.99)},
		{name: "int", price: 249, want: decimal.NewFromInt(249)},
		{name: "int64", price: int64(199), want: decimal.NewFromInt(199)},
		{name: "decimal", price: decimal.NewFromFloat(12.5), want: decimal.NewFromFloat(12.5)},
		{name: "numeric string", price: "599.99", want: decimal.NewFromFloat(599.99)},
		{name: "json number", price: json.Number("299.99"), want: decimal.NewFromFloat(299.99)},
		{name: "missing", price: nil, want: decimal.Zero},
		{name: "non-numeric string", price: "free", want: decimal.Zero},
		{name: "unsupported type", price: []string{"10"}, want: decimal.Zero},
		{name: "negative clamped to zero", price: -10.0, want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := normalize.LineItem(domain.ProductRecord{"id": "p-1", "price": tt.price}, 1)
			assert.True(t, tt.want.Equal(item.Price),
				"want %s, got %s", tt.want, item.Price)
		})
	}
}

func TestLineItem_FromProductRecord(t *testing.T) {
	product := domain.Product{
		ID:       gofakeit.UUID(),
		Name:     gofakeit.ProductName(),
		Price:    decimal.NewFromFloat(gofakeit.Price(1, 1000)),
		Image:    gofakeit.URL(),
		Category: "Rings",
	}

	item := normalize.LineItem(product.Record(), 2)

	assert.Equal(t, product.ID, item.ID)
	assert.Equal(t, product.Name, item.Name)
	assert.True(t, product.Price.Equal(item.Price))
	assert.Equal(t, product.Image, item.Image)
	assert.Equal(t, product.Category, item.Category)
	assert.Equal(t, 2, item.Quantity)
}

func assertItemEqual(t *testing.T, want, got domain.WishlistItem) {
	t.Helper()

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.True(t, want.Price.Equal(got.Price), "want price %s, got %s", want.Price, got.Price)
	assert.Equal(t, want.Image, got.Image)
	assert.Equal(t, want.Category, got.Category)
}
