package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	logicv1 "github.com/duynhne/store-service/internal/logic/v1"
	"github.com/duynhne/store-service/middleware"
)

// Login handles HTTP request for user login.
// POST /login
func (h *Handler) Login(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.login", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	var req LoginRequest
	if !bindJSON(c, &req) {
		span.SetAttributes(attribute.Bool("request.valid", false))
		return
	}

	result, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		span.RecordError(err)

		if errors.Is(err, logicv1.ErrInvalidCredentials) {
			// Unknown email and wrong password answer identically.
			logger.Warn().Msg("Login failed")
			respondUnauthorized(c, "Invalid credentials.")
			return
		}
		logger.Error().Err(err).Msg("Login failed")
		respondInternal(c)
		return
	}

	logger.Info().Int64("user_id", result.User.ID).Msg("Login successful")
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Login successful.",
		"token":      result.Token,
		"expires_in": result.ExpiresIn,
		"user":       newUserResponse(result.User),
	})
}

// Register handles HTTP request for user registration.
// POST /register
func (h *Handler) Register(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.register", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	var req RegisterRequest
	if !bindJSON(c, &req) {
		span.SetAttributes(attribute.Bool("request.valid", false))
		return
	}

	row, err := h.auth.Register(ctx, logicv1.RegisterParams{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		span.RecordError(err)
		logger.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		mapLogicError(c, err)
		return
	}

	logger.Info().Int64("user_id", row.ID).Msg("Registration successful")
	respondCreated(c, "User registered successfully.", newUserResponse(row))
}
