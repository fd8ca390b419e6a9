// Package v1 provides the business logic for API version 1: authentication,
// token issuing/verification, and user/product/review operations.
//
// Error Handling:
// This package defines sentinel errors that represent common failures.
// These errors should be wrapped with context using fmt.Errorf("%w") when
// returned from business logic methods.
//
// Example Usage:
//
//	if row == nil {
//	    return nil, fmt.Errorf("authenticate %q: %w", email, ErrInvalidCredentials)
//	}
//
// Error Checking (in handlers):
//
//	switch {
//	case errors.Is(err, logicv1.ErrInvalidCredentials):
//	    c.JSON(http.StatusUnauthorized, ...)
//	case errors.Is(err, logicv1.ErrProductNotFound):
//	    c.JSON(http.StatusNotFound, ...)
//	default:
//	    c.JSON(http.StatusInternalServerError, ...)
//	}
//
// Field-level input failures are carried by *ValidationError instead of a
// sentinel, so handlers can render the per-field message map.
package v1

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for business operations.
// These errors should be wrapped with context using fmt.Errorf("%w") when returned.
var (
	// ErrInvalidCredentials indicates a failed login. Unknown email and wrong
	// password both map here so user existence is never revealed.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid indicates the bearer token matches no session.
	// HTTP Status: 401 Unauthorized
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired indicates the bearer token is past its expiry.
	// HTTP Status: 401 Unauthorized
	ErrTokenExpired = errors.New("token expired")

	// ErrUserNotFound indicates the user does not exist or is soft-deleted.
	// HTTP Status: 404 Not Found
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound indicates the product does not exist.
	// HTTP Status: 404 Not Found
	ErrProductNotFound = errors.New("product not found")

	// ErrReviewNotFound indicates the review does not exist, belongs to a
	// different product, or is not authored by the acting user. The three
	// cases are deliberately indistinguishable.
	// HTTP Status: 404 Not Found
	ErrReviewNotFound = errors.New("review not found")
)

// ValidationError aggregates per-field input failures. The operation it
// rejects performs no writes.
// HTTP Status: 422 Unprocessable Entity
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Add appends a message for the given field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error lists the failing fields in stable order.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
