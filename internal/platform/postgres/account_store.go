package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"todoserver/internal/domain"
	"todoserver/internal/platform/logger"
	"todoserver/internal/store"
)

// AccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type AccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAccountStore creates a new PostgreSQL implementation of the
// store.AccountStore interface. It accepts a database connection or
// transaction that should be initialized and managed by the caller.
// If logger is nil, the default logger is used.
func NewAccountStore(db store.DBTX, log *slog.Logger) *AccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &AccountStore{
		db:     db,
		logger: log.With(slog.String("component", "account_store")),
	}
}

// Ensure AccountStore implements store.AccountStore
var _ store.AccountStore = (*AccountStore)(nil)

// Create implements store.AccountStore.Create.
// The account must carry a hashed password; the plaintext field is ignored
// and never written. Returns store.ErrEmailExists when the email is already
// taken, including when a concurrent registration won the uniqueness race.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContext(ctx)

	if account.HashedPassword == "" {
		return fmt.Errorf("%w: account is missing a password hash", store.ErrInvalidEntity)
	}

	query := `
		INSERT INTO account (email, password)
		VALUES ($1, $2)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, account.Email, account.HashedPassword).
		Scan(&account.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("account creation conflicted on email uniqueness")
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}

		log.Error("failed to create account", "error", err)
		return MapError(err)
	}

	log.Info("account created", "account_id", account.ID)
	return nil
}

// GetByEmail implements store.AccountStore.GetByEmail.
// Returns store.ErrAccountNotFound if no account has the given email.
func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, email, password
		FROM account
		WHERE email = $1
	`
	var account domain.Account
	err := s.db.QueryRowContext(ctx, query, email).
		Scan(&account.ID, &account.Email, &account.HashedPassword)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %v", store.ErrAccountNotFound, err)
		}

		log.Error("failed to get account by email", "error", err)
		return nil, MapError(err)
	}

	return &account, nil
}
