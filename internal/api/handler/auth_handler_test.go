package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golden9_club/internal/app/service"
	"golden9_club/internal/common/security"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(t *testing.T) (http.Handler, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	tokens := security.NewTokenManager([]byte("test-secret"), time.Hour)
	authService := service.NewAuthService(repo, tokens, nil)

	r := chi.NewRouter()
	NewAuthHandler(authService).RegisterRoutes(r)
	return r, repo
}

func postJSON(t *testing.T, h http.Handler, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRegister(t *testing.T) {
	router, _ := authTestRouter(t)

	rec := postJSON(t, router, "/register", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "p1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			UserID string `json:"user_id"`
			Role   string `json:"role"`
			Points int    `json:"points"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "User registered successfully", resp.Message)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user", resp.User.Role)
	assert.Equal(t, 0, resp.User.Points)

	// The password hash must never appear in a response body.
	assert.NotContains(t, rec.Body.String(), "hashed_password")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestRegister_MissingFields(t *testing.T) {
	router, _ := authTestRouter(t)

	rec := postJSON(t, router, "/register", map[string]string{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username, email, and password are required.")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router, _ := authTestRouter(t)

	payload := map[string]string{"username": "alice", "email": "a@x.com", "password": "p1"}
	rec := postJSON(t, router, "/register", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, router, "/register", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists with this email address.")
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _ := authTestRouter(t)
	postJSON(t, router, "/register", map[string]string{"username": "alice", "email": "a@x.com", "password": "p1"})

	rec := postJSON(t, router, "/login", map[string]string{
		"email": "a@x.com", "password": "wrong", "role": "user",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password.")
}

// Unknown email yields the identical generic message as wrong password.
func TestLogin_UnknownEmail(t *testing.T) {
	router, _ := authTestRouter(t)

	rec := postJSON(t, router, "/login", map[string]string{
		"email": "nobody@x.com", "password": "p1", "role": "user",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message": "Invalid email or password."}`, rec.Body.String())
}

func TestLogin_RoleContextMismatch(t *testing.T) {
	router, repo := authTestRouter(t)
	postJSON(t, router, "/register", map[string]string{"username": "alice", "email": "a@x.com", "password": "p1"})

	// A standard account may not use the admin login context,
	// even with the correct password.
	rec := postJSON(t, router, "/login", map[string]string{
		"email": "a@x.com", "password": "p1", "role": "admin",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only admin accounts can sign in here.")

	// And an admin account may not use the member context.
	for _, u := range repo.users {
		u.Role = "admin"
	}
	rec = postJSON(t, router, "/login", map[string]string{
		"email": "a@x.com", "password": "p1", "role": "user",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only member accounts can sign in here.")
}

func TestLogin_Success(t *testing.T) {
	router, _ := authTestRouter(t)
	postJSON(t, router, "/register", map[string]string{"username": "alice", "email": "a@x.com", "password": "p1"})

	rec := postJSON(t, router, "/login", map[string]string{
		"email": "a@x.com", "password": "p1", "role": "user",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.NotEmpty(t, resp.Token)
	assert.NotContains(t, rec.Body.String(), "$2a$")
}
