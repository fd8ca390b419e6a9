package domain

import (
	"context"
	"time"
)

// SessionRow represents a session joined with its owner user,
// returned by token lookup queries. ExpiresAt is nil for sessions
// issued without an expiry.
type SessionRow struct {
	UserID    int64
	Name      string
	Email     string
	ExpiresAt *time.Time
}

// SessionRepository defines the data-access contract for session operations.
// Implementations live in internal/core/repository (Core layer).
//
// Only a hash of the token is ever stored; the plaintext token exists
// solely in the login response.
type SessionRepository interface {
	// Create inserts a new session for the given user. A nil expiresAt
	// means the session never expires.
	Create(ctx context.Context, userID int64, tokenHash string, expiresAt *time.Time) error

	// GetByTokenHash looks up the session by token hash and returns the
	// associated active user together with the session expiry time.
	// Returns (nil, nil) when the hash matches no session or the user
	// has been soft-deleted.
	GetByTokenHash(ctx context.Context, tokenHash string) (*SessionRow, error)
}
