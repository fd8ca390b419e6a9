package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duynhne/store-service/internal/core/domain"
)

// PgxSessionRepository implements domain.SessionRepository using pgxpool.
type PgxSessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new PgxSessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *PgxSessionRepository {
	return &PgxSessionRepository{pool: pool}
}

// Create inserts a new session for the given user.
func (r *PgxSessionRepository) Create(ctx context.Context, userID int64, tokenHash string, expiresAt *time.Time) error {
	query := `INSERT INTO sessions (user_id, token_hash, expires_at) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, userID, tokenHash, expiresAt)
	return err
}

// GetByTokenHash looks up the session by token hash and returns the
// associated active user together with the session expiry time.
// Returns (nil, nil) when the hash matches no session or the user
// has been soft-deleted.
func (r *PgxSessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.SessionRow, error) {
	query := `
		SELECT u.id, u.name, u.email, s.expires_at
		FROM sessions s
		JOIN users u ON s.user_id = u.id
		WHERE s.token_hash = $1 AND u.deleted_at IS NULL
	`

	var row domain.SessionRow
	err := r.pool.QueryRow(ctx, query, tokenHash).Scan(
		&row.UserID, &row.Name, &row.Email, &row.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}
