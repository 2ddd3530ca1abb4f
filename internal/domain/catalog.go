package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog record as stored by the admin dashboard.
// Category holds the denormalized category name, matching what the
// storefront renders on product cards.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Image       string
	Category    string
	Description string
	InStock     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Record converts the typed product into the loose document shape the
// normalize package consumes.
func (p Product) Record() ProductRecord {
	return ProductRecord{
		"id":       p.ID,
		"name":     p.Name,
		"price":    p.Price,
		"image":    p.Image,
		"category": p.Category,
	}
}

type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Image       string
	IsActive    bool
	IsFeatured  bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeliveryOption is a checkout shipping choice.
type DeliveryOption struct {
	ID    string
	Name  string
	ETA   string
	Price decimal.Decimal
}

// User is the identity the auth collaborator reports for the current
// session.
type User struct {
	UID         string
	Email       string
	DisplayName string
}
