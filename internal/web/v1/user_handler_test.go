package v1

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_RequireAuth(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, http.MethodGet, "/api/v1/users", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Authorization header required.", body["message"])
}

func TestUsers_InvalidAuthFormats(t *testing.T) {
	api := newTestAPI(t)

	req := func(header string) (int, map[string]any) {
		return api.doWithAuthHeader(t, http.MethodGet, "/api/v1/users", header)
	}

	status, body := req("Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid authorization format.", body["message"])

	status, body = req("Bearer ")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid authorization format.", body["message"])

	status, body = req("Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token.", body["message"])
}

func TestCreateUser_PublicEndpoint(t *testing.T) {
	api := newTestAPI(t)

	// POST /v1/users mirrors /register without requiring a token.
	status, body := api.do(t, http.MethodPost, "/api/v1/users", "", gin.H{
		"name":                  "Jane Doe",
		"email":                 "jane@example.com",
		"password":              "password123",
		"password_confirmation": "password123",
	})

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "User created successfully.", body["message"])
	data := dataField(t, body)
	assert.Equal(t, "jane@example.com", data["email"])
}

func TestListUsers(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.registerAndLogin(t, "John Doe", "john@example.com")
	api.registerAndLogin(t, "Jane Doe", "jane@example.com")

	status, body := api.do(t, http.MethodGet, "/api/v1/users", token, nil)

	require.Equal(t, http.StatusOK, status)
	rows, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 2)

	first := rows[0].(map[string]any)
	assert.Equal(t, "John Doe", first["name"])
	assert.NotContains(t, first, "password")
}

func TestGetUser(t *testing.T) {
	api := newTestAPI(t)
	token, id := api.registerAndLogin(t, "John Doe", "john@example.com")

	status, body := api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", id), token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "John Doe", dataField(t, body)["name"])

	status, body = api.do(t, http.MethodGet, "/api/v1/users/999", token, nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found.", body["message"])

	// Non-numeric ids are indistinguishable from missing users.
	status, _ = api.do(t, http.MethodGet, "/api/v1/users/abc", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUpdateUser(t *testing.T) {
	api := newTestAPI(t)
	token, id := api.registerAndLogin(t, "John Doe", "john@example.com")

	status, body := api.do(t, http.MethodPut, fmt.Sprintf("/api/v1/users/%d", id), token, gin.H{
		"name": "John Q. Doe",
	})

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User updated successfully.", body["message"])
	data := dataField(t, body)
	assert.Equal(t, "John Q. Doe", data["name"])
	assert.Equal(t, "john@example.com", data["email"])
}

func TestUpdateUser_InvalidEmail(t *testing.T) {
	api := newTestAPI(t)
	token, id := api.registerAndLogin(t, "John Doe", "john@example.com")

	status, body := api.do(t, http.MethodPut, fmt.Sprintf("/api/v1/users/%d", id), token, gin.H{
		"email": "not-an-email",
	})

	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, errorsField(t, body), "email")
}

func TestUpdateUser_TakenEmail(t *testing.T) {
	api := newTestAPI(t)
	token, id := api.registerAndLogin(t, "John Doe", "john@example.com")
	api.registerAndLogin(t, "Jane Doe", "jane@example.com")

	status, body := api.do(t, http.MethodPut, fmt.Sprintf("/api/v1/users/%d", id), token, gin.H{
		"email": "jane@example.com",
	})

	require.Equal(t, http.StatusUnprocessableEntity, status)
	errs := errorsField(t, body)
	messages, _ := errs["email"].([]any)
	require.NotEmpty(t, messages)
	assert.Equal(t, "The email has already been taken.", messages[0])
}

func TestDeleteUser(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.registerAndLogin(t, "John Doe", "john@example.com")
	_, janeID := api.registerAndLogin(t, "Jane Doe", "jane@example.com")

	status, body := api.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", janeID), token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User deleted successfully.", body["message"])

	status, _ = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", janeID), token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = api.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", janeID), token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteUser_InvalidatesSessions(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.registerAndLogin(t, "John Doe", "john@example.com")
	janeToken, janeID := api.registerAndLogin(t, "Jane Doe", "jane@example.com")

	status, _ := api.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", janeID), token, nil)
	require.Equal(t, http.StatusOK, status)

	status, body := api.do(t, http.MethodGet, "/api/v1/users", janeToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token.", body["message"])
}

func TestUserStats(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.registerAndLogin(t, "John Doe", "john@example.com")
	api.registerAndLogin(t, "Jane Doe", "jane@example.com")

	status, body := api.do(t, http.MethodGet, "/api/v1/users-stats", token, nil)

	require.Equal(t, http.StatusOK, status)
	data := dataField(t, body)
	assert.Equal(t, float64(2), data["users_today"])
	assert.Equal(t, float64(2), data["users_this_week"])
	assert.Equal(t, float64(2), data["users_this_month"])
}

// Full lifecycle: register, login, browse, delete, then observe the 404.
func TestUserLifecycle(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.registerAndLogin(t, "John Doe", "john@example.com")
	_, janeID := api.registerAndLogin(t, "Jane Doe", "jane@example.com")

	status, body := api.do(t, http.MethodGet, "/api/v1/users", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["data"].([]any), 2)

	status, _ = api.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", janeID), token, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = api.do(t, http.MethodGet, "/api/v1/users", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["data"].([]any), 1)

	status, _ = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", janeID), token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
