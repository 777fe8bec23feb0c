package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry peeks at the exp claim of an upstream bearer token without
// verifying its signature. The upstream API is the sole authority on token
// validity; the expiry is used only to align the session cookie lifetime.
// Tokens that are not JWTs, or carry no exp, report ok=false.
func TokenExpiry(tokenString string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := new(jwt.RegisteredClaims)
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
