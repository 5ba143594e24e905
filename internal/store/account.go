package store

import (
	"context"

	"todoserver/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account to the store and fills in the
	// store-assigned ID on success. The account must already carry a
	// hashed password; the plaintext password is never persisted.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, account *domain.Account) error

	// GetByEmail retrieves an account by its email address.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}
