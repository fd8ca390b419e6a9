package v1

import (
	"github.com/gin-gonic/gin"

	logicv1 "github.com/duynhne/store-service/internal/logic/v1"
)

// Handler groups HTTP handlers for the store API v1.
// Dependencies are injected via the constructor — no global state.
type Handler struct {
	auth     *logicv1.AuthService
	tokens   *logicv1.TokenService
	users    *logicv1.UserService
	products *logicv1.ProductService
	reviews  *logicv1.ReviewService
}

// NewHandler creates a new Handler with the given services.
func NewHandler(
	auth *logicv1.AuthService,
	tokens *logicv1.TokenService,
	users *logicv1.UserService,
	products *logicv1.ProductService,
	reviews *logicv1.ReviewService,
) *Handler {
	registerTagNameFunc()
	return &Handler{
		auth:     auth,
		tokens:   tokens,
		users:    users,
		products: products,
		reviews:  reviews,
	}
}

// RegisterRoutes registers all API routes on the given router group.
// Login, registration, and the direct user-create variant are public;
// everything else requires a bearer token.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/register", h.Register)

	v1 := rg.Group("/v1")
	v1.POST("/users", h.CreateUser)

	protected := v1.Group("", RequireAuth(h.tokens))
	protected.GET("/users", h.ListUsers)
	protected.GET("/users/:id", h.GetUser)
	protected.PUT("/users/:id", h.UpdateUser)
	protected.DELETE("/users/:id", h.DeleteUser)
	protected.GET("/users-stats", h.UserStats)

	protected.GET("/products", h.ListProducts)
	protected.POST("/products", h.CreateProduct)
	protected.GET("/products/:id", h.GetProduct)
	protected.PUT("/products/:id", h.UpdateProduct)
	protected.DELETE("/products/:id", h.DeleteProduct)

	protected.GET("/products/:id/reviews", h.ListReviews)
	protected.POST("/products/:id/reviews", h.CreateReview)
	protected.PUT("/products/:id/reviews/:reviewId", h.UpdateReview)
	protected.DELETE("/products/:id/reviews/:reviewId", h.DeleteReview)
}
