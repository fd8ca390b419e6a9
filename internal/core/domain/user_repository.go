package domain

import (
	"context"
	"errors"
	"time"
)

// ErrEmailConflict is returned by write operations when the storage-level
// uniqueness constraint on active user emails rejects the write. It is the
// authoritative duplicate check; application-level lookups are advisory only.
var ErrEmailConflict = errors.New("email already taken")

// UserRow represents a user record returned from the database.
// It includes the password hash so the Logic layer can verify credentials;
// the hash must never leave the Logic layer.
type UserRow struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate describes a partial user update. Nil fields are left unchanged.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// UserRepository defines the data-access contract for user operations.
// Implementations live in internal/core/repository (Core layer).
// The Logic layer depends on this interface only — never on SQL or pgx directly.
//
// Soft-deleted users are invisible to every method: lookups return
// (nil, nil), writes report no match, counts skip them.
type UserRepository interface {
	// Create inserts a new user and returns the stored row.
	// Returns ErrEmailConflict when the email is already bound to an active user.
	Create(ctx context.Context, name, email, passwordHash string) (*UserRow, error)

	// GetByID returns the active user with the given id.
	// Returns (nil, nil) when no active user is found.
	GetByID(ctx context.Context, id int64) (*UserRow, error)

	// GetByEmail returns the active user with the given email.
	// Returns (nil, nil) when no active user is found.
	GetByEmail(ctx context.Context, email string) (*UserRow, error)

	// List returns all active users ordered by id.
	List(ctx context.Context) ([]UserRow, error)

	// EmailTaken reports whether an active user other than excludeID already
	// uses the given email. Pass excludeID 0 to check against all active users.
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)

	// Update applies a partial update to the active user with the given id
	// and returns the updated row. Returns (nil, nil) when no active user
	// matches, ErrEmailConflict on an email collision.
	Update(ctx context.Context, id int64, upd UserUpdate) (*UserRow, error)

	// SoftDelete marks the user as deleted. Returns false when no active
	// user matches.
	SoftDelete(ctx context.Context, id int64) (bool, error)

	// CountCreatedBetween counts active users whose creation timestamp
	// falls within [from, to].
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
