package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgAuth "github.com/Christian112b/costanzo-backend/pkg/auth"
	"github.com/Christian112b/costanzo-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "costanzo",
		ExpirationMinutes: 60,
	}
}

func TestAuthRejectsMissingToken(t *testing.T) {
	t.Parallel()

	handler := Auth(testJWTConfig(), nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without credentials")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthSeedsContext(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	token, err := pkgAuth.MintAccessToken(cfg, time.Now(), 7, "admin")
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	var gotUser *int64
	var gotRole string
	handler := Auth(cfg, nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserIDFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUser == nil || *gotUser != 7 {
		t.Fatalf("expected user id 7 in context, got %v", gotUser)
	}
	if gotRole != "admin" {
		t.Fatalf("expected role admin in context, got %q", gotRole)
	}
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	t.Parallel()

	var gotUser *int64
	called := false
	handler := OptionalAuth(testJWTConfig(), nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUser = UserIDFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	if !called {
		t.Fatal("anonymous request must pass through")
	}
	if gotUser != nil {
		t.Fatalf("expected nil user for anonymous request, got %v", gotUser)
	}
}

func TestOptionalAuthRejectsGarbageToken(t *testing.T) {
	t.Parallel()

	handler := OptionalAuth(testJWTConfig(), nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a broken token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	handler := RequireRole("admin", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req.WithContext(WithRole(req.Context(), "cliente")))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong role, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req.WithContext(WithRole(req.Context(), "admin")))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through for admin, got %d", w.Code)
	}
}
