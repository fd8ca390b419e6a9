package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duynhne/store-service/internal/core/domain"
)

const productColumns = `id, name, description, price, stock, owner_id, created_at, updated_at`

// PgxProductRepository implements domain.ProductRepository using pgxpool.
type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new PgxProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{pool: pool}
}

// Create inserts a new product owned by ownerID and returns the stored row.
func (r *PgxProductRepository) Create(ctx context.Context, name string, description *string, price float64, stock int, ownerID int64) (*domain.ProductRow, error) {
	query := `
		INSERT INTO products (name, description, price, stock, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns

	return scanProduct(r.pool.QueryRow(ctx, query, name, description, price, stock, ownerID))
}

// GetByID returns the product with the given id, (nil, nil) when absent.
func (r *PgxProductRepository) GetByID(ctx context.Context, id int64) (*domain.ProductRow, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	row, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return row, nil
}

// List returns all products ordered by id.
func (r *PgxProductRepository) List(ctx context.Context) ([]domain.ProductRow, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.ProductRow
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}

	return products, rows.Err()
}

// Update applies a partial update and returns the updated row,
// (nil, nil) when no product matches.
func (r *PgxProductRepository) Update(ctx context.Context, id int64, upd domain.ProductUpdate) (*domain.ProductRow, error) {
	query := `
		UPDATE products
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    price = COALESCE($4, price),
		    stock = COALESCE($5, stock),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns

	row, err := scanProduct(r.pool.QueryRow(ctx, query, id, upd.Name, upd.Description, upd.Price, upd.Stock))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return row, nil
}

// Delete removes the product. Returns false when no product matches.
func (r *PgxProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func scanProduct(row pgx.Row) (*domain.ProductRow, error) {
	var p domain.ProductRow
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
