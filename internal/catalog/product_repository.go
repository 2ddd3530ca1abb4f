// Package catalog is the Postgres-backed product/category repository behind
// the browse pages and the admin dashboard. The cart and wishlist stores
// never touch it; they only see the records it returns.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tishe/storefront/internal/domain"
	"github.com/tishe/storefront/internal/port"
)

// ErrNotFound is returned where an operation requires an existing row.
var ErrNotFound = errors.New("not found")

const defaultPageSize = 50

const productColumns = `id, name, price::text, image, category, description, in_stock, created_at, updated_at`

type productRepository struct {
	pool *pgxpool.Pool
}

func NewProducts(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	if product.Name == "" {
		return domain.Product{}, fmt.Errorf("product name is empty")
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (id, name, price, image, category, description, in_stock)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		product.ID, product.Name, product.Price.String(), product.Image,
		product.Category, product.Description, product.InStock)

	if err := row.Scan(&product.CreatedAt, &product.UpdatedAt); err != nil {
		return domain.Product{}, fmt.Errorf("row.Scan: %w", err)
	}

	return product, nil
}

func (r *productRepository) Get(ctx context.Context, id string) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	row := r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	product, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, ErrNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("scanProduct: %w", err)
	}

	return product, nil
}

func (r *productRepository) Update(ctx context.Context, product domain.Product) error {
	if product.ID == "" {
		return fmt.Errorf("id is empty")
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE products
		SET name = $2, price = $3::numeric, image = $4, category = $5,
		    description = $6, in_stock = $7, updated_at = now()
		WHERE id = $1`,
		product.ID, product.Name, product.Price.String(), product.Image,
		product.Category, product.Description, product.InStock)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("id is empty")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("pool.Exec: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *productRepository) List(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 ORDER BY created_at DESC, id
		 LIMIT $1 OFFSET $2`,
		pageSize(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}

	return collectProducts(rows)
}

func (r *productRepository) ListByCategory(ctx context.Context, category string, limit, offset int) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE category = $1
		 ORDER BY created_at DESC, id
		 LIMIT $2 OFFSET $3`,
		category, pageSize(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}

	return collectProducts(rows)
}

// Search matches the query against product names, categories and
// descriptions, case-insensitively.
func (r *productRepository) Search(ctx context.Context, query string, limit, offset int) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE name ILIKE '%' || $1 || '%'
		    OR category ILIKE '%' || $1 || '%'
		    OR description ILIKE '%' || $1 || '%'
		 ORDER BY created_at DESC, id
		 LIMIT $2 OFFSET $3`,
		query, pageSize(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}

	return collectProducts(rows)
}

func pageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	return limit
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		p     domain.Product
		price string
	)

	err := row.Scan(&p.ID, &p.Name, &price, &p.Image, &p.Category,
		&p.Description, &p.InStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Product{}, err
	}

	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("price[%s] is not valid: %w", price, err)
	}

	return p, nil
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanProduct: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return products, nil
}
