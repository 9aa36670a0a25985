package session

import (
	"time"

	"github.com/ashish-aa/skillmesh/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the expiry claim from an access token without
// verifying its signature. The client has no signing key; server-side
// validation happens on the first gated call. Tokens without an expiry
// claim are reported as common.ErrInvalidToken.
func TokenExpiry(tokenString string) (time.Time, error) {
	parser := jwt.NewParser()

	var claims jwt.RegisteredClaims
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return time.Time{}, common.ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, common.ErrInvalidToken
	}
	return claims.ExpiresAt.Time, nil
}

// TokenExpired reports whether the cached access token is past its expiry
// at the given instant. A malformed token counts as expired.
func TokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return true
	}
	return now.After(exp)
}
