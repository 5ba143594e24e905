package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"todoserver/internal/domain"
	"todoserver/internal/redact"
	"todoserver/internal/service/auth"
	"todoserver/internal/store"
)

// AuthService orchestrates account registration and login.
type AuthService interface {
	// Register validates the email and password, hashes the password, and
	// persists a new account. Returns the account with only its public
	// fields populated, a domain validation error for bad input, or
	// store.ErrEmailExists when the email is already taken.
	Register(ctx context.Context, email, password string) (*domain.Account, error)

	// Login verifies the credentials and issues a bearer token.
	// An unknown email and a wrong password both fail with
	// auth.ErrInvalidCredentials so callers cannot probe which emails exist.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Account *domain.Account
	Token   string
}

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	accountStore store.AccountStore
	hasher       auth.PasswordHasher
	jwtService   auth.JWTService
	logger       *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	accountStore store.AccountStore,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	log *slog.Logger,
) *AuthServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &AuthServiceImpl{
		accountStore: accountStore,
		hasher:       hasher,
		jwtService:   jwtService,
		logger:       log.With("component", "auth_service"),
	}
}

// Ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

// Register implements AuthService.Register.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := domain.NewAccount(email, password)
	if err != nil {
		s.logger.Debug("registration rejected by validation", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	hashed, err := s.hasher.Hash(account.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account.HashedPassword = hashed
	account.Password = ""

	if err := s.accountStore.Create(ctx, account); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("registration conflicted with existing email")
			return nil, err
		}
		s.logger.Error("failed to store account", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account registered", "account_id", account.ID)
	return account, nil
}

// Login implements AuthService.Login.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	account, err := s.accountStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			// Same failure as a password mismatch, no enumeration.
			return nil, auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up account", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := s.hasher.Compare(account.HashedPassword, password); err != nil {
		s.logger.Debug("login failed: password mismatch", "account_id", account.ID)
		return nil, auth.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, account.Email)
	if err != nil {
		s.logger.Error("failed to issue token", "error", redact.Error(err), "account_id", account.ID)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("login succeeded", "account_id", account.ID)
	return &LoginResult{Account: account, Token: token}, nil
}
