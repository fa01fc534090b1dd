// Package jwtx issues and verifies the service's identity tokens. Tokens are
// HS256-signed JWTs over a single process-wide secret loaded at startup; the
// secret must never be logged or serialized.
package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
	ErrNoSecret   = errors.New("jwtx: empty signing secret")
)

// Signer is anything that can sign identity claims into a compact JWT.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a shared secret. It implements both
// Signer and Verifier since HMAC is symmetric.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 builds a signer/verifier over the process-wide secret.
func NewHS256(secret, issuer string) (*HS256, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &HS256{secret: []byte(secret), issuer: issuer}, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign turns claims into a signed compact JWT string.
func (h *HS256) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}

// Verify checks the signature and expiry and returns the embedded claims.
// The signing method is pinned to HS256 so a crafted token cannot downgrade
// the algorithm.
func (h *HS256) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSig
		}
		return h.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return Claims{}, ErrMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrExpired
	case err != nil:
		return Claims{}, ErrInvalidSig
	}

	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	if h.issuer != "" && claims.Issuer != h.issuer {
		return Claims{}, ErrInvalidSig
	}

	return claims, nil
}
