package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "costanzo",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	raw, err := MintAccessToken(cfg, time.Now(), 7, "admin")
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	claims, err := ParseAccessToken(cfg, raw)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("unexpected user id %d", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Fatalf("unexpected role %q", claims.Role)
	}
	if claims.ID == "" {
		t.Fatal("expected a session id claim")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	raw, err := MintAccessToken(cfg, time.Now(), 7, "cliente")
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	bad := cfg
	bad.Secret = "other-secret"
	if _, err := ParseAccessToken(bad, raw); err == nil {
		t.Fatal("expected signature validation to fail")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	raw, err := MintAccessToken(cfg, time.Now().Add(-2*time.Hour), 7, "cliente")
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	if _, err := ParseAccessToken(cfg, raw); err == nil || !strings.Contains(err.Error(), "expired") {
		t.Fatalf("expected expiry error, got %v", err)
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	mint := testJWTConfig()
	mint.Issuer = "someone-else"
	raw, err := MintAccessToken(mint, time.Now(), 7, "cliente")
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	if _, err := ParseAccessToken(testJWTConfig(), raw); err == nil {
		t.Fatal("expected issuer validation to fail")
	}
}
