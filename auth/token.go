package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of JWT claims a headless embedder needs to
// decide whether a restored token is worth probing.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ParseClaims decodes the token's registered claims without verifying the
// signature. Verification is the server's job; the client only inspects
// expiry and subject.
func ParseClaims(token string) (TokenClaims, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenClaims{}, err
	}
	if claims.ExpiresAt == nil {
		return TokenClaims{}, errors.New("token has no expiry claim")
	}
	tc := TokenClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		tc.IssuedAt = claims.IssuedAt.Time
	}
	return tc, nil
}

// Expired reports whether token is a parseable JWT whose expiry has passed.
// Unparseable tokens are not reported as expired; the server remains the
// authority on their validity.
func Expired(token string, now time.Time) bool {
	tc, err := ParseClaims(token)
	if err != nil {
		return false
	}
	return now.After(tc.ExpiresAt)
}
