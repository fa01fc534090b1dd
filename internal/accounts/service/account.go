package service

import (
	"context"
	"errors"

	"github.com/starterhq/accounts/internal/accounts/domain"
	"github.com/starterhq/accounts/internal/accounts/store"
)

// AccountService orchestrates the credential codec and the persistence
// collaborator for account CRUD.
type AccountService struct {
	Store  store.Store
	Scheme domain.PasswordScheme
}

// Create builds an account from the supplied plaintext credentials and
// persists it.
func (s *AccountService) Create(ctx context.Context, name, email, password string) (domain.Account, error) {
	a, err := domain.NewAccount(name, email, password, s.Scheme)
	if err != nil {
		return domain.Account{}, err
	}

	if err := s.Store.Accounts().Create(ctx, a); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, ErrDuplicateEmail
		}
		return domain.Account{}, err
	}

	return a, nil
}

// List fetches all accounts.
func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.Store.Accounts().List(ctx)
}

// GetByID fetches one account; unknown ids map to ErrUserNotFound.
func (s *AccountService) GetByID(ctx context.Context, id string) (domain.Account, error) {
	a, err := s.Store.Accounts().GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, ErrUserNotFound
	}
	return a, err
}

// Update merges the patch onto the already-loaded account, refreshes the
// updated timestamp, and persists the result.
func (s *AccountService) Update(ctx context.Context, a domain.Account, p domain.Patch) (domain.Account, error) {
	if err := a.Apply(p, s.Scheme); err != nil {
		return domain.Account{}, err
	}

	if err := s.Store.Accounts().Update(ctx, a); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Account{}, ErrDuplicateEmail
		case errors.Is(err, store.ErrNotFound):
			return domain.Account{}, ErrUserNotFound
		}
		return domain.Account{}, err
	}

	return a, nil
}

// Delete removes the account and hands back the deleted record.
func (s *AccountService) Delete(ctx context.Context, a domain.Account) (domain.Account, error) {
	if err := s.Store.Accounts().Delete(ctx, a.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrUserNotFound
		}
		return domain.Account{}, err
	}
	return a, nil
}
