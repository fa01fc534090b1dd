package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/starterhq/accounts/pkg/cryptox"
	"github.com/starterhq/accounts/pkg/idx"
)

// PasswordScheme selects how credential digests are derived.
type PasswordScheme string

const (
	// SchemeSHA1 is the legacy salted HMAC-SHA1 scheme. Default, so records
	// written by earlier deployments keep verifying.
	SchemeSHA1 PasswordScheme = "sha1"

	// SchemeArgon2id stores a PHC-encoded argon2id hash; the salt lives inside
	// the encoded string and the salt column stays empty.
	SchemeArgon2id PasswordScheme = "argon2id"
)

var (
	ErrPasswordRequired = errors.New("domain: password is required")
	ErrNameRequired     = errors.New("domain: name is required")
	ErrEmailRequired    = errors.New("domain: email is required")
)

// Account is a registered user. HashedPassword and Salt are derived secrets
// and must never appear in a response: the json tags drop them outright and
// Sanitize clears them besides.
type Account struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Salt           string    `json:"-"`
	Created        time.Time `json:"created"`
	Updated        time.Time `json:"updated"`
}

// NewAccount builds a fully-formed Account from a plaintext password: it
// generates a fresh salt, derives the digest, and stamps both timestamps.
// There is no hidden derivation on field assignment anywhere else.
func NewAccount(name, email, password string, scheme PasswordScheme) (Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return Account{}, ErrNameRequired
	}
	if email == "" {
		return Account{}, ErrEmailRequired
	}
	if password == "" {
		return Account{}, ErrPasswordRequired
	}

	now := time.Now().UTC()
	a := Account{
		ID:      idx.New().String(),
		Name:    name,
		Email:   email,
		Created: now,
		Updated: now,
	}

	if err := a.setPassword(password, scheme); err != nil {
		return Account{}, err
	}

	return a, nil
}

func (a *Account) setPassword(password string, scheme PasswordScheme) error {
	if scheme == SchemeArgon2id {
		hash, err := cryptox.HashPassword(password)
		if err != nil {
			return err
		}
		a.HashedPassword = hash
		a.Salt = ""
		return nil
	}

	salt, err := cryptox.GenerateSalt()
	if err != nil {
		return err
	}
	a.Salt = salt
	a.HashedPassword = cryptox.Derive(password, salt)
	return nil
}

// Authenticate reports whether plaintext matches the stored credential.
// The stored digest's own format decides the scheme, so mixed populations
// verify correctly after a scheme change.
func (a *Account) Authenticate(plaintext string) bool {
	if a.HashedPassword == "" {
		return false
	}

	if strings.HasPrefix(a.HashedPassword, "$argon2id$") {
		return cryptox.VerifyPassword(plaintext, a.HashedPassword) == nil
	}

	return cryptox.Verify(plaintext, a.Salt, a.HashedPassword)
}

// Patch is the shallow-merge shape the update endpoint accepts. Nil fields
// are left untouched. Created is deliberately assignable; the update contract
// has always been a loose body merge and clients rely on it.
type Patch struct {
	Name     *string    `json:"name"`
	Email    *string    `json:"email"`
	Password *string    `json:"password"`
	Created  *time.Time `json:"created"`
}

// Apply merges p onto the account and force-refreshes Updated. A supplied
// password re-derives salt and digest through the codec; the raw digest and
// salt are never assignable directly.
func (a *Account) Apply(p Patch, scheme PasswordScheme) error {
	if p.Name != nil {
		a.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		a.Email = strings.TrimSpace(*p.Email)
	}
	if p.Created != nil {
		a.Created = *p.Created
	}
	if p.Password != nil {
		if err := a.setPassword(*p.Password, scheme); err != nil {
			return err
		}
	}

	a.Updated = time.Now().UTC()
	return nil
}

// Sanitize clears the credential fields before the account leaves the
// service. The json tags already hide them; this keeps copies handed to
// callers clean as well.
func (a Account) Sanitize() Account {
	a.HashedPassword = ""
	a.Salt = ""
	return a
}
