package v1

// Request structs double as the per-operation validation rule sets: one
// struct per operation, selected statically. Create rules mark fields
// required; update rules make them optional via pointers with omitempty.
// The configurable password minimum and email uniqueness live in the Logic
// layer, everything else is declared here.

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the body of POST /register and POST /v1/users.
type RegisterRequest struct {
	Name                 string `json:"name" binding:"required,max=255"`
	Email                string `json:"email" binding:"required,email,max=255"`
	Password             string `json:"password" binding:"required"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
}

// UpdateUserRequest is the body of PUT /v1/users/:id. Absent fields are
// left unchanged.
type UpdateUserRequest struct {
	Name                 *string `json:"name" binding:"omitempty,max=255"`
	Email                *string `json:"email" binding:"omitempty,email,max=255"`
	Password             *string `json:"password"`
	PasswordConfirmation *string `json:"password_confirmation"`
}

// CreateProductRequest is the body of POST /v1/products. Price and stock
// are pointers so that a present zero passes the required check.
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Stock       *int     `json:"stock" binding:"required,gte=0"`
}

// UpdateProductRequest is the body of PUT /v1/products/:id.
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
}

// ReviewRequest is the body of review create and update; both operations
// require a rating.
type ReviewRequest struct {
	Rating  *int    `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}
