package v1

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/duynhne/store-service/internal/core/domain"
	"github.com/duynhne/store-service/middleware"
)

// AuthService implements registration and login business rules.
// It depends on repository interfaces (injected via constructor) and
// MUST NOT access the database or SQL directly.
type AuthService struct {
	users          domain.UserRepository
	tokens         *TokenService
	passwordMinLen int
	tokenTTL       time.Duration
}

// NewAuthService creates a new AuthService. passwordMinLen is the minimum
// accepted password length; tokenTTL is the lifetime of login tokens.
func NewAuthService(users domain.UserRepository, tokens *TokenService, passwordMinLen int, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:          users,
		tokens:         tokens,
		passwordMinLen: passwordMinLen,
		tokenTTL:       tokenTTL,
	}
}

// RegisterParams carries registration input. Format-level checks (presence,
// email syntax, length caps) happen at the web boundary; this layer owns the
// password policy and email uniqueness.
type RegisterParams struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// LoginResult is returned on successful login. Token is the plaintext
// bearer token, handed out exactly once. ExpiresIn is in seconds.
type LoginResult struct {
	User      *domain.UserRow
	Token     string
	ExpiresIn int64
}

// Register creates a new user. Policy failures aggregate into a single
// *ValidationError; nothing is written when any check fails.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (*domain.UserRow, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.register", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("email", p.Email),
	))
	defer span.End()

	ve := NewValidationError()
	s.checkPassword(ve, p.Password, p.PasswordConfirmation)

	// Advisory pre-check; the partial unique index is the authoritative
	// guard against concurrent duplicate registrations.
	taken, err := s.users.EmailTaken(ctx, p.Email, 0)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if taken {
		ve.Add("email", "The email has already been taken.")
	}

	if ve.HasErrors() {
		span.SetAttributes(attribute.Bool("registration.success", false))
		return nil, ve
	}

	passwordHash, err := hashPassword(p.Password)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	row, err := s.users.Create(ctx, p.Name, p.Email, passwordHash)
	if err != nil {
		if errors.Is(err, domain.ErrEmailConflict) {
			// Lost the race against a concurrent registration.
			ve.Add("email", "The email has already been taken.")
			return nil, ve
		}
		span.RecordError(err)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("user.id", row.ID),
		attribute.Bool("registration.success", true),
	)
	span.AddEvent("user.registered")

	return row, nil
}

// Login verifies credentials and issues a bearer token with the configured
// TTL. Unknown email and wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("email", email),
	))
	defer span.End()

	row, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query user %q: %w", email, err)
	}
	if row == nil {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate %q: %w", email, ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate %q: %w", email, ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(ctx, row.ID, s.tokenTTL)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("user.id", row.ID),
		attribute.Bool("auth.success", true),
	)
	span.AddEvent("user.authenticated")

	return &LoginResult{
		User:      row,
		Token:     token,
		ExpiresIn: int64(s.tokenTTL / time.Second),
	}, nil
}

// checkPassword applies the password policy shared by Register and user
// create/update: minimum length and confirmation equality.
func (s *AuthService) checkPassword(ve *ValidationError, password, confirmation string) {
	if len(password) < s.passwordMinLen {
		ve.Add("password", fmt.Sprintf("The password must be at least %d characters.", s.passwordMinLen))
	}
	if password != confirmation {
		ve.Add("password", "The password confirmation does not match.")
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
