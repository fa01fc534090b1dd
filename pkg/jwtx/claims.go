package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are identity-token claims. The token asserts nothing beyond "this
// request acts as the account in sub"; there are no roles or scopes.
type Claims struct {
	jwt.RegisteredClaims
}

// NewIdentityClaims builds claims for a signed identity token. A zero ttl
// produces a token with no exp claim; only the cookie lifetime bounds the
// browser session then.
func NewIdentityClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return c
}

// ValidateExpiry ensures the token hasn't expired. Tokens without an exp
// claim never expire here.
func (c *Claims) ValidateExpiry() error {
	if c.ExpiresAt != nil && time.Now().UTC().After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}
