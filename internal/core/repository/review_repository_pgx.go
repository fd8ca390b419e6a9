package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duynhne/store-service/internal/core/domain"
)

const reviewColumns = `id, product_id, author_id, rating, comment, created_at, updated_at`

// PgxReviewRepository implements domain.ReviewRepository using pgxpool.
type PgxReviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository creates a new PgxReviewRepository.
func NewReviewRepository(pool *pgxpool.Pool) *PgxReviewRepository {
	return &PgxReviewRepository{pool: pool}
}

// ListByProduct returns all reviews of the product ordered by id,
// with the author name joined in.
func (r *PgxReviewRepository) ListByProduct(ctx context.Context, productID int64) ([]domain.ReviewRow, error) {
	query := `
		SELECT r.id, r.product_id, r.author_id, r.rating, r.comment, u.name, r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.product_id = $1
		ORDER BY r.id
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.ReviewRow
	for rows.Next() {
		var rv domain.ReviewRow
		err := rows.Scan(&rv.ID, &rv.ProductID, &rv.AuthorID, &rv.Rating, &rv.Comment,
			&rv.AuthorName, &rv.CreatedAt, &rv.UpdatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	return reviews, rows.Err()
}

// Create inserts a new review and returns the stored row.
func (r *PgxReviewRepository) Create(ctx context.Context, productID, authorID int64, rating int, comment *string) (*domain.ReviewRow, error) {
	query := `
		INSERT INTO reviews (product_id, author_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + reviewColumns

	return scanReview(r.pool.QueryRow(ctx, query, productID, authorID, rating, comment))
}

// UpdateOwned updates the review matching (id, productID, authorID) and
// returns the updated row, (nil, nil) when nothing matches. A review owned
// by someone else is indistinguishable from a missing one.
func (r *PgxReviewRepository) UpdateOwned(ctx context.Context, id, productID, authorID int64, rating int, comment *string) (*domain.ReviewRow, error) {
	query := `
		UPDATE reviews
		SET rating = $4, comment = COALESCE($5, comment), updated_at = now()
		WHERE id = $1 AND product_id = $2 AND author_id = $3
		RETURNING ` + reviewColumns

	row, err := scanReview(r.pool.QueryRow(ctx, query, id, productID, authorID, rating, comment))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return row, nil
}

// DeleteOwned removes the review matching (id, productID, authorID).
// Returns false when nothing matches.
func (r *PgxReviewRepository) DeleteOwned(ctx context.Context, id, productID, authorID int64) (bool, error) {
	query := `DELETE FROM reviews WHERE id = $1 AND product_id = $2 AND author_id = $3`

	tag, err := r.pool.Exec(ctx, query, id, productID, authorID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func scanReview(row pgx.Row) (*domain.ReviewRow, error) {
	var rv domain.ReviewRow
	err := row.Scan(&rv.ID, &rv.ProductID, &rv.AuthorID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}
