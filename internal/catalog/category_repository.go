package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tishe/storefront/internal/domain"
	"github.com/tishe/storefront/internal/port"
)

const categoryColumns = `id, name, slug, description, image, is_active, is_featured, created_by, created_at, updated_at`

type categoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategories(pool *pgxpool.Pool) port.CategoryRepository {
	return &categoryRepository{pool: pool}
}

// Create inserts the category. The slug is normalized, or derived from the
// name when absent; slugs are unique across categories.
func (r *categoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	if category.Name == "" {
		return domain.Category{}, fmt.Errorf("category name is empty")
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	category.Slug = Slugify(category.Slug)
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (id, name, slug, description, image, is_active, is_featured, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		category.ID, category.Name, category.Slug, category.Description,
		category.Image, category.IsActive, category.IsFeatured, category.CreatedBy)

	if err := row.Scan(&category.CreatedAt, &category.UpdatedAt); err != nil {
		return domain.Category{}, fmt.Errorf("row.Scan: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}

	return collectCategories(rows)
}

func (r *categoryRepository) ListFeatured(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories
		 WHERE is_featured AND is_active
		 ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}

	return collectCategories(rows)
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (domain.Category, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, Slugify(slug))

	category, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Category{}, ErrNotFound
	}
	if err != nil {
		return domain.Category{}, fmt.Errorf("scanCategory: %w", err)
	}

	return category, nil
}

// Update rewrites the category. A rename also rewrites the denormalized
// category name on every product that carried the old one, in the same
// transaction.
func (r *categoryRepository) Update(ctx context.Context, category domain.Category) error {
	if category.ID == "" {
		return fmt.Errorf("id is empty")
	}
	if category.Name == "" {
		return fmt.Errorf("category name is empty")
	}

	category.Slug = Slugify(category.Slug)
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}

	_, err := withTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		var oldName string
		err := tx.QueryRow(ctx,
			`SELECT name FROM categories WHERE id = $1 FOR UPDATE`, category.ID).Scan(&oldName)
		if errors.Is(err, pgx.ErrNoRows) {
			return struct{}{}, ErrNotFound
		}
		if err != nil {
			return struct{}{}, fmt.Errorf("tx.QueryRow: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE categories
			SET name = $2, slug = $3, description = $4, image = $5,
			    is_active = $6, is_featured = $7, updated_at = now()
			WHERE id = $1`,
			category.ID, category.Name, category.Slug, category.Description,
			category.Image, category.IsActive, category.IsFeatured)
		if err != nil {
			return struct{}{}, fmt.Errorf("tx.Exec categories: %w", err)
		}

		if category.Name != oldName {
			_, err = tx.Exec(ctx,
				`UPDATE products SET category = $1, updated_at = now() WHERE category = $2`,
				category.Name, oldName)
			if err != nil {
				return struct{}{}, fmt.Errorf("tx.Exec products: %w", err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

func (r *categoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("id is empty")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("pool.Exec: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanCategory(row pgx.Row) (domain.Category, error) {
	var c domain.Category

	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image,
		&c.IsActive, &c.IsFeatured, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Category{}, err
	}

	return c, nil
}

func collectCategories(rows pgx.Rows) ([]domain.Category, error) {
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanCategory: %w", err)
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return categories, nil
}
