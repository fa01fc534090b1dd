package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	a, err := NewAccount("  Ann  ", "ann@x.com", "secret1", SchemeSHA1)
	require.NoError(t, err)

	require.NotEmpty(t, a.ID)
	require.Equal(t, "Ann", a.Name, "name is whitespace-trimmed")
	require.Equal(t, "ann@x.com", a.Email)
	require.NotEmpty(t, a.Salt)
	require.NotEmpty(t, a.HashedPassword)
	require.NotEqual(t, "secret1", a.HashedPassword)
	require.False(t, a.Created.IsZero())
	require.Equal(t, a.Created, a.Updated)
}

func TestNewAccount_MissingFields(t *testing.T) {
	_, err := NewAccount("", "ann@x.com", "secret1", SchemeSHA1)
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = NewAccount("Ann", "", "secret1", SchemeSHA1)
	require.ErrorIs(t, err, ErrEmailRequired)

	_, err = NewAccount("Ann", "ann@x.com", "", SchemeSHA1)
	require.ErrorIs(t, err, ErrPasswordRequired)
}

func TestNewAccount_Argon2id(t *testing.T) {
	a, err := NewAccount("Ann", "ann@x.com", "secret1", SchemeArgon2id)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(a.HashedPassword, "$argon2id$"))
	require.Empty(t, a.Salt, "argon2id keeps the salt inside the encoded hash")
	require.True(t, a.Authenticate("secret1"))
	require.False(t, a.Authenticate("secret2"))
}

func TestAuthenticate(t *testing.T) {
	a, err := NewAccount("Ann", "ann@x.com", "secret1", SchemeSHA1)
	require.NoError(t, err)

	require.True(t, a.Authenticate("secret1"))
	require.False(t, a.Authenticate("Secret1"))
	require.False(t, a.Authenticate(""))
}

func TestAuthenticate_NoCredential(t *testing.T) {
	a := Account{ID: "x", Name: "Ann", Email: "ann@x.com"}
	require.False(t, a.Authenticate(""))
	require.False(t, a.Authenticate("anything"))
}

func TestApply(t *testing.T) {
	a, err := NewAccount("Ann", "ann@x.com", "secret1", SchemeSHA1)
	require.NoError(t, err)
	before := a.Updated

	name := "Annabel"
	created := time.Date(2001, 2, 3, 0, 0, 0, 0, time.UTC)
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, a.Apply(Patch{Name: &name, Created: &created}, SchemeSHA1))

	require.Equal(t, "Annabel", a.Name)
	require.Equal(t, "ann@x.com", a.Email, "unset fields untouched")
	require.Equal(t, created, a.Created, "created is part of the loose merge contract")
	require.True(t, a.Updated.After(before), "updated is force-refreshed")
}

func TestApply_PasswordRederives(t *testing.T) {
	a, err := NewAccount("Ann", "ann@x.com", "secret1", SchemeSHA1)
	require.NoError(t, err)
	oldSalt, oldDigest := a.Salt, a.HashedPassword

	pw := "another-secret"
	require.NoError(t, a.Apply(Patch{Password: &pw}, SchemeSHA1))

	require.NotEqual(t, oldSalt, a.Salt, "fresh salt per password change")
	require.NotEqual(t, oldDigest, a.HashedPassword)
	require.True(t, a.Authenticate("another-secret"))
	require.False(t, a.Authenticate("secret1"))
}

func TestJSON_NeverExposesCredentials(t *testing.T) {
	a, err := NewAccount("Ann", "ann@x.com", "secret1", SchemeSHA1)
	require.NoError(t, err)

	raw, err := json.Marshal(a)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	require.NotContains(t, m, "hashed_password")
	require.NotContains(t, m, "salt")
	require.NotContains(t, string(raw), a.HashedPassword)
}

func TestSanitize(t *testing.T) {
	a, err := NewAccount("Ann", "ann@x.com", "secret1", SchemeSHA1)
	require.NoError(t, err)

	clean := a.Sanitize()
	require.Empty(t, clean.HashedPassword)
	require.Empty(t, clean.Salt)
	// The stored copy is untouched.
	require.NotEmpty(t, a.HashedPassword)
}
