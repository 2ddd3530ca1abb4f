package port

import (
	"context"

	"github.com/tishe/storefront/internal/domain"
)

// SnapshotStore is the persistence boundary for cart and wishlist
// snapshots. Read reports a missing key via ok=false rather than an error;
// Write replaces the whole snapshot under the key.
type SnapshotStore interface {
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
}

// Notifier receives the user-facing messages that store mutations emit,
// such as "added to cart" or "saved to wishlist".
type Notifier interface {
	Notify(message string)
}

type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string, limit, offset int) ([]domain.Product, error)
	Search(ctx context.Context, query string, limit, offset int) ([]domain.Product, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	ListFeatured(ctx context.Context) ([]domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (domain.Category, error)
	Update(ctx context.Context, category domain.Category) error
	Delete(ctx context.Context, id string) (bool, error)
}
