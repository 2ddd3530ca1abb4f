// Seeds the catalog with the starter categories and products. Safe to run
// repeatedly: rows that already exist are skipped.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tishe/storefront/internal/catalog"
	"github.com/tishe/storefront/internal/domain"
	"github.com/tishe/storefront/internal/port"
	"github.com/tishe/storefront/pkg/config"
	"github.com/tishe/storefront/pkg/logger"
	"github.com/tishe/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "seed", Env: cfg.AppEnv, Level: cfg.LogLevel})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("pgxpool.New failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	products := catalog.NewProducts(pool)
	categories := catalog.NewCategories(pool)

	if err := seed(ctx, products, categories, log); err != nil {
		log.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	log.Info("seeding complete")
}

func seed(ctx context.Context, products port.ProductRepository, categories port.CategoryRepository, log *slog.Logger) error {
	for _, category := range seedCategories() {
		_, err := categories.FindBySlug(ctx, category.Slug)
		if err == nil {
			log.Info("category exists, skipping", "slug", category.Slug)
			continue
		}
		if !errors.Is(err, catalog.ErrNotFound) {
			return err
		}

		created, err := categories.Create(ctx, category)
		if err != nil {
			return err
		}
		log.Info("category created", "id", created.ID, "slug", created.Slug)
	}

	for _, product := range seedProducts() {
		_, err := products.Get(ctx, product.ID)
		if err == nil {
			log.Info("product exists, skipping", "id", product.ID)
			continue
		}
		if !errors.Is(err, catalog.ErrNotFound) {
			return err
		}

		created, err := products.Create(ctx, product)
		if err != nil {
			return err
		}
		log.Info("product created", "id", created.ID, "name", created.Name)
	}

	return nil
}

func seedCategories() []domain.Category {
	names := []string{"Rings", "Necklaces", "Earrings", "Bracelets"}

	categories := make([]domain.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, domain.Category{
			ID:         "seed-category-" + catalog.Slugify(name),
			Name:       name,
			Slug:       catalog.Slugify(name),
			IsActive:   true,
			IsFeatured: true,
		})
	}

	return categories
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "seed-product-1",
			Name:        "Diamond Solitaire Ring",
			Price:       decimal.NewFromFloat(599.99),
			Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
			Category:    "Rings",
			Description: "A beautiful diamond solitaire ring that sparkles with every movement.",
			InStock:     true,
		},
		{
			ID:          "seed-product-2",
			Name:        "Pearl Necklace",
			Price:       decimal.NewFromFloat(299.99),
			Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
			Category:    "Necklaces",
			Description: "Elegant pearl necklace that adds a touch of class to any outfit.",
			InStock:     true,
		},
		{
			ID:          "seed-product-3",
			Name:        "Gold Hoop Earrings",
			Price:       decimal.NewFromFloat(149.99),
			Image:       "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
			Category:    "Earrings",
			Description: "Classic gold hoop earrings that never go out of style.",
			InStock:     true,
		},
		{
			ID:          "seed-product-4",
			Name:        "Silver Bangle",
			Price:       decimal.NewFromFloat(199.99),
			Image:       "https://i.etsystatic.com/25202454/r/il/12ada6/4269847150/il_1080xN.4269847150_33z5.jpg",
			Category:    "Bracelets",
			Description: "Elegant silver bangle that can be worn alone or stacked.",
			InStock:     true,
		},
	}
}
