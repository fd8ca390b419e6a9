package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	logicv1 "github.com/duynhne/store-service/internal/logic/v1"
)

// ListReviews returns all reviews of a product, authors included.
// GET /v1/products/:id/reviews
func (h *Handler) ListReviews(c *gin.Context) {
	productID, ok := pathID(c, "id", "Product not found.")
	if !ok {
		return
	}

	rows, err := h.reviews.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		mapLogicError(c, err)
		return
	}

	respondOK(c, "", newReviewResponses(rows))
}

// CreateReview attaches a review by the authenticated user to a product.
// POST /v1/products/:id/reviews
func (h *Handler) CreateReview(c *gin.Context) {
	actor, ok := mustIdentity(c)
	if !ok {
		return
	}

	productID, ok := pathID(c, "id", "Product not found.")
	if !ok {
		return
	}

	var req ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	row, err := h.reviews.Create(c.Request.Context(), *actor, productID, logicv1.ReviewParams{
		Rating:  *req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Create review failed")
		mapLogicError(c, err)
		return
	}

	respondCreated(c, "Review created successfully.", newReviewResponse(row))
}

// UpdateReview modifies a review authored by the authenticated user.
// A review that exists but is not theirs answers 404.
// PUT /v1/products/:id/reviews/:reviewId
func (h *Handler) UpdateReview(c *gin.Context) {
	actor, ok := mustIdentity(c)
	if !ok {
		return
	}

	productID, ok := pathID(c, "id", "Product not found.")
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "reviewId", "Review not found.")
	if !ok {
		return
	}

	var req ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	row, err := h.reviews.Update(c.Request.Context(), *actor, productID, reviewID, logicv1.ReviewParams{
		Rating:  *req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		mapLogicError(c, err)
		return
	}

	respondOK(c, "Review updated successfully.", newReviewResponse(row))
}

// DeleteReview removes a review authored by the authenticated user.
// DELETE /v1/products/:id/reviews/:reviewId
func (h *Handler) DeleteReview(c *gin.Context) {
	actor, ok := mustIdentity(c)
	if !ok {
		return
	}

	productID, ok := pathID(c, "id", "Product not found.")
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "reviewId", "Review not found.")
	if !ok {
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), *actor, productID, reviewID); err != nil {
		mapLogicError(c, err)
		return
	}

	respondOK(c, "Review deleted successfully.", nil)
}
