package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIPPrefersForwardedHeader(t *testing.T) {
	t.Parallel()

	var got string
	handler := ClientIP()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ClientIPFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got != "203.0.113.9" {
		t.Fatalf("expected first forwarded hop, got %q", got)
	}
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	t.Parallel()

	var got string
	handler := ClientIP()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ClientIPFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.4:54321"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got != "192.0.2.4" {
		t.Fatalf("expected remote addr host, got %q", got)
	}
}
