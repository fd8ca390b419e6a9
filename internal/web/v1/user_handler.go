package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	logicv1 "github.com/duynhne/store-service/internal/logic/v1"
)

// pathID parses a numeric path parameter. A non-numeric value cannot match
// any record, so it is reported as not found.
func pathID(c *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		respondNotFound(c, message)
		return 0, false
	}
	return id, true
}

// CreateUser creates a user directly, with the same rules as registration.
// POST /v1/users (public)
func (h *Handler) CreateUser(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	row, err := h.auth.Register(c.Request.Context(), logicv1.RegisterParams{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		mapLogicError(c, err)
		return
	}

	respondCreated(c, "User created successfully.", newUserResponse(row))
}

// ListUsers returns all active users.
// GET /v1/users
func (h *Handler) ListUsers(c *gin.Context) {
	rows, err := h.users.List(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("List users failed")
		respondInternal(c)
		return
	}

	respondOK(c, "", newUserResponses(rows))
}

// GetUser returns a single active user.
// GET /v1/users/:id
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id", "User not found.")
	if !ok {
		return
	}

	row, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		mapLogicError(c, err)
		return
	}

	respondOK(c, "", newUserResponse(row))
}

// UpdateUser applies a partial update to a user.
// PUT /v1/users/:id
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id", "User not found.")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	row, err := h.users.Update(c.Request.Context(), id, logicv1.UserUpdateParams{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		mapLogicError(c, err)
		return
	}

	respondOK(c, "User updated successfully.", newUserResponse(row))
}

// DeleteUser soft-deletes a user.
// DELETE /v1/users/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id", "User not found.")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		mapLogicError(c, err)
		return
	}

	zerolog.Ctx(c.Request.Context()).Info().Int64("user_id", id).Msg("User deleted")
	respondOK(c, "User deleted successfully.", nil)
}

// UserStats returns signup counts for today, this week, and this month.
// GET /v1/users-stats
func (h *Handler) UserStats(c *gin.Context) {
	stats, err := h.users.Stats(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("User stats failed")
		respondInternal(c)
		return
	}

	respondOK(c, "", StatsResponse{
		UsersToday:     stats.Today,
		UsersThisWeek:  stats.ThisWeek,
		UsersThisMonth: stats.ThisMonth,
	})
}
