package domain

import (
	"context"
	"time"
)

// ReviewRow represents a review record returned from the database.
// AuthorName is populated only by queries that join the author.
type ReviewRow struct {
	ID         int64
	ProductID  int64
	AuthorID   int64
	Rating     int
	Comment    *string
	AuthorName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ReviewRepository defines the data-access contract for review operations.
//
// Mutations are keyed by (id, product_id, author_id): a review that exists
// but belongs to another author or another product is reported exactly like
// a missing one, so existence never leaks through authorization failures.
type ReviewRepository interface {
	// ListByProduct returns all reviews of the product ordered by id,
	// with AuthorName populated.
	ListByProduct(ctx context.Context, productID int64) ([]ReviewRow, error)

	// Create inserts a new review and returns the stored row.
	Create(ctx context.Context, productID, authorID int64, rating int, comment *string) (*ReviewRow, error)

	// UpdateOwned updates the review matching (id, productID, authorID) and
	// returns the updated row, (nil, nil) when nothing matches.
	UpdateOwned(ctx context.Context, id, productID, authorID int64, rating int, comment *string) (*ReviewRow, error)

	// DeleteOwned removes the review matching (id, productID, authorID).
	// Returns false when nothing matches.
	DeleteOwned(ctx context.Context, id, productID, authorID int64) (bool, error)
}
