package v1

import (
	"time"

	"github.com/duynhne/store-service/internal/core/domain"
)

// UserResponse is the public shape of a user. Password material is never
// serialized.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u *domain.UserRow) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func newUserResponses(rows []domain.UserRow) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, newUserResponse(&rows[i]))
	}
	return out
}

// ProductResponse is the public shape of a product.
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newProductResponse(p *domain.ProductRow) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func newProductResponses(rows []domain.ProductRow) []ProductResponse {
	out := make([]ProductResponse, 0, len(rows))
	for i := range rows {
		out = append(out, newProductResponse(&rows[i]))
	}
	return out
}

// ReviewAuthor is the embedded author view on listed reviews.
type ReviewAuthor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ReviewResponse is the public shape of a review. Author is present only
// on listings, where the author name is joined in.
type ReviewResponse struct {
	ID        int64         `json:"id"`
	ProductID int64         `json:"product_id"`
	AuthorID  int64         `json:"author_id"`
	Rating    int           `json:"rating"`
	Comment   *string       `json:"comment"`
	Author    *ReviewAuthor `json:"author,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func newReviewResponse(r *domain.ReviewRow) ReviewResponse {
	resp := ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		AuthorID:  r.AuthorID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.AuthorName != "" {
		resp.Author = &ReviewAuthor{ID: r.AuthorID, Name: r.AuthorName}
	}
	return resp
}

func newReviewResponses(rows []domain.ReviewRow) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(rows))
	for i := range rows {
		out = append(out, newReviewResponse(&rows[i]))
	}
	return out
}

// StatsResponse is the payload of GET /v1/users-stats.
type StatsResponse struct {
	UsersToday     int64 `json:"users_today"`
	UsersThisWeek  int64 `json:"users_this_week"`
	UsersThisMonth int64 `json:"users_this_month"`
}
