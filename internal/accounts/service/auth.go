package service

import (
	"context"
	"errors"
	"time"

	"github.com/starterhq/accounts/internal/accounts/domain"
	"github.com/starterhq/accounts/internal/accounts/store"
	"github.com/starterhq/accounts/pkg/jwtx"
)

// AuthService implements sign-in: credential verification plus identity-token
// issuance. Sign-out is purely client-side (the cookie is cleared); an issued
// token is never invalidated here.
type AuthService struct {
	Store  store.Store
	Signer jwtx.Signer
	Issuer string

	// TokenTTL bounds the signed token itself. Zero means no exp claim;
	// only the cookie lifetime limits the browser session then.
	TokenTTL time.Duration
}

// SignIn verifies the credentials for email and issues a signed identity
// token for the matching account.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, domain.Account, error) {
	a, err := s.Store.Accounts().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.Account{}, ErrUserNotFound
		}
		return "", domain.Account{}, err
	}

	if !a.Authenticate(password) {
		return "", domain.Account{}, ErrBadCredentials
	}

	claims := jwtx.NewIdentityClaims(a.ID, s.Issuer, s.TokenTTL, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", domain.Account{}, err
	}

	return token, a, nil
}
