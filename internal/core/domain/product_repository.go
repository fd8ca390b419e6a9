package domain

import (
	"context"
	"time"
)

// ProductRow represents a product record returned from the database.
type ProductRow struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
	Stock       int
	OwnerID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductUpdate describes a partial product update. Nil fields are left unchanged.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

// ProductRepository defines the data-access contract for product operations.
type ProductRepository interface {
	// Create inserts a new product owned by ownerID and returns the stored row.
	Create(ctx context.Context, name string, description *string, price float64, stock int, ownerID int64) (*ProductRow, error)

	// GetByID returns the product with the given id, (nil, nil) when absent.
	GetByID(ctx context.Context, id int64) (*ProductRow, error)

	// List returns all products ordered by id.
	List(ctx context.Context) ([]ProductRow, error)

	// Update applies a partial update and returns the updated row,
	// (nil, nil) when no product matches.
	Update(ctx context.Context, id int64, upd ProductUpdate) (*ProductRow, error)

	// Delete removes the product. Returns false when no product matches.
	// Attached reviews are removed with it.
	Delete(ctx context.Context, id int64) (bool, error)
}
