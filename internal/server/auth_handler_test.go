package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dovydas-v/uniguide/internal/types"
)

func newTestAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	userService := NewUserService(newMemoryUserStore(), testPasswordConfig(t))
	return NewAuthHandler(userService, testJWTService())
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	h := newTestAuthHandler(t)

	rec := postJSON(t, h.Register, "/auth/register", types.RegisterRequest{
		Username: "studentas",
		Email:    "studentas@example.lt",
		Password: "slaptazodis123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "studentas", resp.User.Username)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	h := newTestAuthHandler(t)

	tests := []struct {
		name string
		req  types.RegisterRequest
	}{
		{"missing email", types.RegisterRequest{Username: "studentas", Password: "slaptazodis123"}},
		{"bad email", types.RegisterRequest{Username: "studentas", Email: "ne-pastas", Password: "slaptazodis123"}},
		{"short password", types.RegisterRequest{Username: "studentas", Email: "a@b.lt", Password: "trumpas"}},
		{"short username", types.RegisterRequest{Username: "ab", Email: "a@b.lt", Password: "slaptazodis123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Register, "/auth/register", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	h := newTestAuthHandler(t)

	req := types.RegisterRequest{Username: "studentas", Email: "studentas@example.lt", Password: "slaptazodis123"}
	require.Equal(t, http.StatusCreated, postJSON(t, h.Register, "/auth/register", req).Code)

	rec := postJSON(t, h.Register, "/auth/register", req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_RegisterInvalidBody(t *testing.T) {
	h := newTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{ne json")))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	h := newTestAuthHandler(t)
	require.Equal(t, http.StatusCreated, postJSON(t, h.Register, "/auth/register", types.RegisterRequest{
		Username: "studentas",
		Email:    "studentas@example.lt",
		Password: "slaptazodis123",
	}).Code)

	rec := postJSON(t, h.Login, "/auth/login", types.LoginRequest{
		Email:    "studentas@example.lt",
		Password: "slaptazodis123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	h := newTestAuthHandler(t)

	rec := postJSON(t, h.Login, "/auth/login", types.LoginRequest{
		Email:    "nera@example.lt",
		Password: "betkoks123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
