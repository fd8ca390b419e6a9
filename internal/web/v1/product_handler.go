package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	logicv1 "github.com/duynhne/store-service/internal/logic/v1"
)

// ListProducts returns all products.
// GET /v1/products
func (h *Handler) ListProducts(c *gin.Context) {
	rows, err := h.products.List(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("List products failed")
		respondInternal(c)
		return
	}

	respondOK(c, "", newProductResponses(rows))
}

// GetProduct returns a single product.
// GET /v1/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id", "Product not found.")
	if !ok {
		return
	}

	row, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		mapLogicError(c, err)
		return
	}

	respondOK(c, "", newProductResponse(row))
}

// CreateProduct creates a product owned by the authenticated user.
// POST /v1/products
func (h *Handler) CreateProduct(c *gin.Context) {
	actor, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	row, err := h.products.Create(c.Request.Context(), *actor, logicv1.ProductCreateParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
	})
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Create product failed")
		mapLogicError(c, err)
		return
	}

	respondCreated(c, "Product created successfully.", newProductResponse(row))
}

// UpdateProduct applies a partial update to a product. Any authenticated
// user may update any product; ownership is not checked here.
// PUT /v1/products/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id", "Product not found.")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	row, err := h.products.Update(c.Request.Context(), id, logicv1.ProductUpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		mapLogicError(c, err)
		return
	}

	respondOK(c, "Product updated successfully.", newProductResponse(row))
}

// DeleteProduct removes a product and its reviews.
// DELETE /v1/products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id", "Product not found.")
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		mapLogicError(c, err)
		return
	}

	respondOK(c, "Product deleted successfully.", nil)
}
