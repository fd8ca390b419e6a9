package v1

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/duynhne/store-service/internal/core/domain"
	logicv1 "github.com/duynhne/store-service/internal/logic/v1"
)

type contextKey struct{}

var identityKey contextKey

// ContextWithIdentity returns a context carrying the authenticated identity.
func ContextWithIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the authenticated identity placed into the
// context by RequireAuth.
func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*domain.Identity)
	return id, ok
}

// RequireAuth extracts the bearer token, verifies it, and stores the
// resulting identity in the request context. Requests without a verifying
// token are rejected before any business logic runs. The identity travels
// as an explicit context value, never as mutable global state.
func RequireAuth(tokens *logicv1.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondUnauthorized(c, "Authorization header required.")
			c.Abort()
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) || len(authHeader) == len(bearerPrefix) {
			respondUnauthorized(c, "Invalid authorization format.")
			c.Abort()
			return
		}
		token := authHeader[len(bearerPrefix):]

		identity, err := tokens.Verify(c.Request.Context(), token)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("Token verification failed")

			switch {
			case errors.Is(err, logicv1.ErrTokenExpired):
				respondUnauthorized(c, "Token expired.")
			case errors.Is(err, logicv1.ErrTokenInvalid):
				respondUnauthorized(c, "Invalid or expired token.")
			default:
				respondInternal(c)
			}
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(ContextWithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// mustIdentity returns the identity set by RequireAuth. Handlers behind the
// middleware can rely on it being present; a miss means a wiring bug.
func mustIdentity(c *gin.Context) (*domain.Identity, bool) {
	id, ok := IdentityFromContext(c.Request.Context())
	if !ok {
		respondInternal(c)
		c.Abort()
	}
	return id, ok
}
