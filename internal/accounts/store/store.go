package store

import (
	"context"
	"errors"

	"github.com/starterhq/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Handlers hold only a transient reference to records for the
// duration of a request; the store owns them. Each call is atomic from the
// caller's perspective; the driver handles its own locking.
type Store interface {
	Accounts() Accounts

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Accounts interface {
	// GetByID returns an account by id.
	GetByID(ctx context.Context, id string) (domain.Account, error)

	// GetByEmail is used during sign-in.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// List returns all accounts ordered by creation date (newest first).
	List(ctx context.Context) ([]domain.Account, error)

	// Create inserts a new account (id is provided by the app via ULID).
	// A duplicate email yields ErrAlreadyExists.
	Create(ctx context.Context, a domain.Account) error

	// Update overwrites the mutable columns of an existing account.
	Update(ctx context.Context, a domain.Account) error

	// Delete removes an account.
	Delete(ctx context.Context, id string) error

	// IsEmpty returns true if there are no accounts.
	IsEmpty(ctx context.Context) (bool, error)
}
