package auth

import "github.com/golang-jwt/jwt/v5"

// AccessTokenClaims represents the typed JWT issued to clients by the
// identity service; this backend only parses and verifies it.
type AccessTokenClaims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
