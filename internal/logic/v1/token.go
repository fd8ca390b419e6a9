package v1

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/store-service/internal/core/domain"
	"github.com/duynhne/store-service/middleware"
)

// TokenService issues and verifies opaque bearer tokens. Tokens are random
// strings handed out exactly once at login; only their SHA-256 hash is kept
// for lookup. Expiry is absolute and fixed at issuance — no sliding window.
type TokenService struct {
	sessions domain.SessionRepository
}

// NewTokenService creates a new TokenService with the given session repository.
func NewTokenService(sessions domain.SessionRepository) *TokenService {
	return &TokenService{sessions: sessions}
}

// Issue generates a new token for the user and persists its hash.
// A ttl <= 0 produces a session without expiry. Issuing a token never
// invalidates earlier tokens for the same user.
func (s *TokenService) Issue(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	ctx, span := middleware.StartSpan(ctx, "token.issue", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(buf)

	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}

	if err := s.sessions.Create(ctx, userID, hashToken(token), expiresAt); err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("persist session: %w", err)
	}

	return token, nil
}

// Verify resolves a presented token to the identity it was issued for.
// Fails with ErrTokenInvalid for unknown tokens and ErrTokenExpired for
// tokens past their expiry.
func (s *TokenService) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	ctx, span := middleware.StartSpan(ctx, "token.verify", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	row, err := s.sessions.GetByTokenHash(ctx, hashToken(token))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query session: %w", err)
	}
	if row == nil {
		span.SetAttributes(attribute.Bool("token.valid", false))
		return nil, fmt.Errorf("lookup session: %w", ErrTokenInvalid)
	}

	if row.ExpiresAt != nil && time.Now().After(*row.ExpiresAt) {
		span.SetAttributes(attribute.Bool("token.valid", false))
		return nil, fmt.Errorf("session expired at %v: %w", row.ExpiresAt, ErrTokenExpired)
	}

	span.SetAttributes(
		attribute.Int64("user.id", row.UserID),
		attribute.Bool("token.valid", true),
	)

	return &domain.Identity{
		UserID: row.UserID,
		Name:   row.Name,
		Email:  row.Email,
	}, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
