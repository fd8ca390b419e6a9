package v1

import (
	"context"
	"fmt"

	"github.com/duynhne/store-service/internal/core/domain"
)

// ProductService implements product management business rules. Ownership is
// recorded at creation, but mutation is open to every authenticated actor;
// the system this replaces enforces no ownership check on products. The
// asymmetry with reviews is documented in DESIGN.md, not silently fixed.
type ProductService struct {
	products domain.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(products domain.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// ProductCreateParams carries validated product creation input.
type ProductCreateParams struct {
	Name        string
	Description *string
	Price       float64
	Stock       int
}

// ProductUpdateParams carries a partial product update. Nil fields are left
// unchanged.
type ProductUpdateParams struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

// List returns all products.
func (s *ProductService) List(ctx context.Context) ([]domain.ProductRow, error) {
	return s.products.List(ctx)
}

// Get returns the product with the given id or ErrProductNotFound.
func (s *ProductService) Get(ctx context.Context, id int64) (*domain.ProductRow, error) {
	row, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query product %d: %w", id, err)
	}
	if row == nil {
		return nil, fmt.Errorf("get product %d: %w", id, ErrProductNotFound)
	}
	return row, nil
}

// Create inserts a new product owned by the acting user.
func (s *ProductService) Create(ctx context.Context, actor domain.Identity, p ProductCreateParams) (*domain.ProductRow, error) {
	row, err := s.products.Create(ctx, p.Name, p.Description, p.Price, p.Stock, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return row, nil
}

// Update applies a partial update or returns ErrProductNotFound.
func (s *ProductService) Update(ctx context.Context, id int64, p ProductUpdateParams) (*domain.ProductRow, error) {
	row, err := s.products.Update(ctx, id, domain.ProductUpdate{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	})
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	if row == nil {
		return nil, fmt.Errorf("update product %d: %w", id, ErrProductNotFound)
	}
	return row, nil
}

// Delete removes the product and its reviews, or returns ErrProductNotFound.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	ok, err := s.products.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("delete product %d: %w", id, ErrProductNotFound)
	}
	return nil
}
