package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contactform-server/internal/config"
	transport "contactform-server/internal/http"
	"contactform-server/internal/services"
	"contactform-server/internal/store/memory"
	"contactform-server/internal/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:       "test",
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	return transport.NewRouter(transport.Dependencies{
		Config:         cfg,
		AuthService:    services.NewAuthService(memory.NewAccountStore(), tokens),
		ContactService: services.NewContactService(memory.NewContactStore()),
		TokenManager:   tokens,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func doRequest(t *testing.T, router *gin.Engine, method, path, bearer string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec.Code, payload
}

func registerAlice(t *testing.T, router *gin.Engine) (string, string) {
	t.Helper()

	status, body := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "password": "pw1", "role": "role1",
	})
	require.Equal(t, http.StatusCreated, status)
	tok, _ := body["token"].(string)
	require.NotEmpty(t, tok)
	user := body["user"].(map[string]any)
	return tok, user["id"].(string)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRegisterLoginMeFlow(t *testing.T) {
	router := newTestRouter(t)
	tok, userID := registerAlice(t, router)

	status, body := doRequest(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "alice", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, status)
	loginUser := body["user"].(map[string]any)
	assert.Equal(t, userID, loginUser["id"])

	status, body = doRequest(t, router, http.MethodGet, "/api/auth/me", tok, nil)
	require.Equal(t, http.StatusOK, status)
	me := body["user"].(map[string]any)
	assert.Equal(t, "alice", me["username"])
	assert.Equal(t, "role1", me["role"])
	assert.NotContains(t, me, "password")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	router := newTestRouter(t)
	registerAlice(t, router)

	status, body := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "password": "other", "role": "role2",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Username already exists", body["message"])
}

func TestRegisterMissingFields(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}

func TestLoginBadCredentials(t *testing.T) {
	router := newTestRouter(t)
	registerAlice(t, router)

	status, body := doRequest(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet, "/api/contacts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "No token provided", body["message"])

	status, body = doRequest(t, router, http.MethodGet, "/api/contacts", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", body["message"])
}

func TestContactCRUDFlow(t *testing.T) {
	router := newTestRouter(t)
	tok, _ := registerAlice(t, router)

	status, body := doRequest(t, router, http.MethodPost, "/api/contacts", tok, gin.H{
		"name": "Bob", "email": "bob@x.com", "subject": "Hi", "message": "Hello",
	})
	require.Equal(t, http.StatusCreated, status)
	contact := body["contact"].(map[string]any)
	contactID := contact["id"].(string)
	require.NotEmpty(t, contactID)
	assert.Equal(t, "Hello", contact["message"])
	assert.NotContains(t, contact, "updatedAt")
	assert.NotContains(t, contact, "authorId")

	status, body = doRequest(t, router, http.MethodGet, "/api/contacts", tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	status, body = doRequest(t, router, http.MethodGet, "/api/contacts/"+contactID, tok, nil)
	require.Equal(t, http.StatusOK, status)
	fetched := body["contact"].(map[string]any)
	assert.Equal(t, "Bob", fetched["name"])

	status, body = doRequest(t, router, http.MethodPut, "/api/contacts/"+contactID, tok, gin.H{
		"subject": "Updated subject",
	})
	require.Equal(t, http.StatusOK, status)
	updated := body["contact"].(map[string]any)
	assert.Equal(t, "Updated subject", updated["subject"])
	assert.Equal(t, "Bob", updated["name"])
	assert.NotEmpty(t, updated["updatedAt"])

	status, body = doRequest(t, router, http.MethodDelete, "/api/contacts/"+contactID, tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, _ = doRequest(t, router, http.MethodGet, "/api/contacts/"+contactID, tok, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = doRequest(t, router, http.MethodGet, "/api/contacts", tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["count"])
}

func TestContactValidation(t *testing.T) {
	router := newTestRouter(t)
	tok, _ := registerAlice(t, router)

	status, body := doRequest(t, router, http.MethodPost, "/api/contacts", tok, gin.H{
		"name": "Bob", "email": "bob@x.com", "subject": "Hi",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "All fields are required", body["message"])

	status, body = doRequest(t, router, http.MethodPost, "/api/contacts", tok, gin.H{
		"name": "Bob", "email": "not-an-email", "subject": "Hi", "message": "Hello",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid email format", body["message"])

	status, created := doRequest(t, router, http.MethodPost, "/api/contacts", tok, gin.H{
		"name": "Bob", "email": "bob@x.com", "subject": "Hi", "message": "Hello",
	})
	require.Equal(t, http.StatusCreated, status)
	contactID := created["contact"].(map[string]any)["id"].(string)

	status, body = doRequest(t, router, http.MethodPut, "/api/contacts/"+contactID, tok, gin.H{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "At least one field is required", body["message"])

	status, _ = doRequest(t, router, http.MethodPut, "/api/contacts/missing", tok, gin.H{"subject": "x"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, router, http.MethodDelete, "/api/contacts/missing", tok, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListIsSharedAcrossUsers(t *testing.T) {
	router := newTestRouter(t)
	aliceTok, _ := registerAlice(t, router)

	status, body := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "bob", "password": "pw2", "role": "role1",
	})
	require.Equal(t, http.StatusCreated, status)
	bobTok := body["token"].(string)

	status, _ = doRequest(t, router, http.MethodPost, "/api/contacts", aliceTok, gin.H{
		"name": "Alice", "email": "alice@x.com", "subject": "Hi", "message": "Hello",
	})
	require.Equal(t, http.StatusCreated, status)

	// No ownership filtering: bob sees alice's submission.
	status, body = doRequest(t, router, http.MethodGet, "/api/contacts", bobTok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])
}
