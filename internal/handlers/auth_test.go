package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/M00N69/supainspection/internal/auth"
	"github.com/M00N69/supainspection/internal/models"
	"github.com/gin-gonic/gin"
)

const testSecret = "handler-test-secret"

type fakeDirectory map[string]*models.User

func (f fakeDirectory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return f[strings.ToLower(email)], nil
}

func postLogin(t *testing.T, dir fakeDirectory, payload string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/api/login", Login(dir, testSecret, testLogger()))

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	dir := fakeDirectory{"alice@example.com": {ID: 7, Email: "alice@example.com"}}

	rec := postLogin(t, dir, `{"email":"Alice@Example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.ID != 7 {
		t.Errorf("user id = %d, want 7", resp.User.ID)
	}

	userID, err := auth.ValidateToken(testSecret, resp.Token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if userID != 7 {
		t.Errorf("token user id = %d, want 7", userID)
	}

	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "auth_token=") {
		t.Errorf("no auth cookie set: %q", cookie)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	rec := postLogin(t, fakeDirectory{}, `{"email":"nobody@example.com"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestLoginBlankEmail(t *testing.T) {
	rec := postLogin(t, fakeDirectory{}, `{"email":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLoginMissingEmail(t *testing.T) {
	rec := postLogin(t, fakeDirectory{}, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
