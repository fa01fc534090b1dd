package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewHS256_EmptySecret(t *testing.T) {
	_, err := NewHS256("", "accounts")
	require.ErrorIs(t, err, ErrNoSecret)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	h, err := NewHS256("test-secret", "accounts")
	require.NoError(t, err)

	claims := NewIdentityClaims("01JABCDEF0000000000000001X", "accounts", 0, time.Now().UTC())
	token, err := h.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01JABCDEF0000000000000001X", got.Subject)
	require.Nil(t, got.ExpiresAt, "default tokens carry no exp claim")
}

func TestVerify_Tampered(t *testing.T) {
	h, err := NewHS256("test-secret", "accounts")
	require.NoError(t, err)

	token, err := h.Sign(NewIdentityClaims("someone", "accounts", 0, time.Now().UTC()))
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = h.Verify(tampered)
	require.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	signer, err := NewHS256("secret-one", "accounts")
	require.NoError(t, err)
	verifier, err := NewHS256("secret-two", "accounts")
	require.NoError(t, err)

	token, err := signer.Sign(NewIdentityClaims("someone", "accounts", 0, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_Garbage(t *testing.T) {
	h, err := NewHS256("test-secret", "accounts")
	require.NoError(t, err)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d", "eyJ.eyJ.sig"} {
		_, err := h.Verify(tok)
		require.Error(t, err, "token %q should not verify", tok)
	}
}

func TestVerify_Expired(t *testing.T) {
	h, err := NewHS256("test-secret", "accounts")
	require.NoError(t, err)

	past := time.Now().UTC().Add(-2 * time.Hour)
	token, err := h.Sign(NewIdentityClaims("someone", "accounts", time.Hour, past))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerify_IssuerMismatch(t *testing.T) {
	signer, err := NewHS256("test-secret", "other-service")
	require.NoError(t, err)
	verifier, err := NewHS256("test-secret", "accounts")
	require.NoError(t, err)

	token, err := signer.Sign(NewIdentityClaims("someone", "other-service", 0, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestValidateExpiry(t *testing.T) {
	fresh := NewIdentityClaims("a", "accounts", time.Hour, time.Now().UTC())
	require.NoError(t, fresh.ValidateExpiry())

	unbounded := NewIdentityClaims("a", "accounts", 0, time.Now().UTC())
	require.NoError(t, unbounded.ValidateExpiry())

	stale := NewIdentityClaims("a", "accounts", time.Minute, time.Now().UTC().Add(-time.Hour))
	require.ErrorIs(t, stale.ValidateExpiry(), ErrExpired)
}
