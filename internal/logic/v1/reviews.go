package v1

import (
	"context"
	"fmt"

	"github.com/duynhne/store-service/internal/core/domain"
)

// ReviewService implements review business rules. Creation requires an
// existing product; update and delete additionally require the acting user
// to be the review's author, and an ownership miss is reported exactly like
// a missing review.
type ReviewService struct {
	reviews  domain.ReviewRepository
	products domain.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews domain.ReviewRepository, products domain.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

// ReviewParams carries validated review input. Create and update share the
// same rule set: rating is always required.
type ReviewParams struct {
	Rating  int
	Comment *string
}

// ListByProduct returns all reviews of an existing product, authors included.
func (s *ReviewService) ListByProduct(ctx context.Context, productID int64) ([]domain.ReviewRow, error) {
	if err := s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.reviews.ListByProduct(ctx, productID)
}

// Create attaches a new review by the acting user to an existing product.
func (s *ReviewService) Create(ctx context.Context, actor domain.Identity, productID int64, p ReviewParams) (*domain.ReviewRow, error) {
	if err := s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}

	row, err := s.reviews.Create(ctx, productID, actor.UserID, p.Rating, p.Comment)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return row, nil
}

// Update modifies a review authored by the acting user on the given product.
// Any miss — wrong product, wrong author, or no such review — yields
// ErrReviewNotFound.
func (s *ReviewService) Update(ctx context.Context, actor domain.Identity, productID, reviewID int64, p ReviewParams) (*domain.ReviewRow, error) {
	row, err := s.reviews.UpdateOwned(ctx, reviewID, productID, actor.UserID, p.Rating, p.Comment)
	if err != nil {
		return nil, fmt.Errorf("update review %d: %w", reviewID, err)
	}
	if row == nil {
		return nil, fmt.Errorf("update review %d: %w", reviewID, ErrReviewNotFound)
	}
	return row, nil
}

// Delete removes a review authored by the acting user on the given product.
func (s *ReviewService) Delete(ctx context.Context, actor domain.Identity, productID, reviewID int64) error {
	ok, err := s.reviews.DeleteOwned(ctx, reviewID, productID, actor.UserID)
	if err != nil {
		return fmt.Errorf("delete review %d: %w", reviewID, err)
	}
	if !ok {
		return fmt.Errorf("delete review %d: %w", reviewID, ErrReviewNotFound)
	}
	return nil
}

func (s *ReviewService) requireProduct(ctx context.Context, productID int64) error {
	row, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("query product %d: %w", productID, err)
	}
	if row == nil {
		return fmt.Errorf("product %d: %w", productID, ErrProductNotFound)
	}
	return nil
}
