package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoserver/internal/config"
	"todoserver/internal/domain"
	"todoserver/internal/service"
	"todoserver/internal/service/auth"
	"todoserver/internal/store"
)

func newAuthService(t *testing.T, accounts *mockAccountStore) service.AuthService {
	t.Helper()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "unit-test-signing-secret",
		TokenLifetimeMinutes: 60,
		BcryptCost:           10,
	})
	require.NoError(t, err)

	return service.NewAuthService(accounts, &plainHasher{}, jwtService, nil)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns public fields only", func(t *testing.T) {
		accounts := newMockAccountStore()
		svc := newAuthService(t, accounts)

		account, err := svc.Register(ctx, "user@example.com", "password1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), account.ID)
		assert.Equal(t, "user@example.com", account.Email)
		assert.Empty(t, account.Password)

		stored, err := accounts.GetByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, "hashed:password1", stored.HashedPassword)
	})

	t.Run("validation failures never reach the store", func(t *testing.T) {
		accounts := newMockAccountStore()
		svc := newAuthService(t, accounts)

		tests := []struct {
			name     string
			email    string
			password string
			wantErr  error
		}{
			{"empty email", "", "password1", domain.ErrEmptyEmail},
			{"malformed email", "not-an-email", "password1", domain.ErrInvalidEmail},
			{"short password", "user@example.com", "short12", domain.ErrPasswordTooShort},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Register(ctx, tt.email, tt.password)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}

		assert.Empty(t, accounts.accounts)
	})

	t.Run("duplicate email", func(t *testing.T) {
		accounts := newMockAccountStore()
		svc := newAuthService(t, accounts)

		first, err := svc.Register(ctx, "user@example.com", "password1")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "user@example.com", "different1")
		assert.ErrorIs(t, err, store.ErrEmailExists)

		// The first account is untouched by the failed attempt.
		stored, err := accounts.GetByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, first.ID, stored.ID)
		assert.Equal(t, "hashed:password1", stored.HashedPassword)
	})

	t.Run("hash failure is an internal error not a mismatch", func(t *testing.T) {
		accounts := newMockAccountStore()
		jwtService, err := auth.NewJWTService(config.AuthConfig{
			JWTSecret:            "unit-test-signing-secret",
			TokenLifetimeMinutes: 60,
			BcryptCost:           10,
		})
		require.NoError(t, err)

		hashErr := errors.New("out of memory")
		svc := service.NewAuthService(accounts, &plainHasher{hashErr: hashErr}, jwtService, nil)

		_, err = svc.Register(ctx, "user@example.com", "password1")
		assert.ErrorIs(t, err, hashErr)
		assert.NotErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, accounts.accounts)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip after registration", func(t *testing.T) {
		accounts := newMockAccountStore()
		svc := newAuthService(t, accounts)

		registered, err := svc.Register(ctx, "user@example.com", "password1")
		require.NoError(t, err)

		result, err := svc.Login(ctx, "user@example.com", "password1")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, result.Account.ID)
		assert.Equal(t, "user@example.com", result.Account.Email)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		accounts := newMockAccountStore()
		svc := newAuthService(t, accounts)

		_, err := svc.Register(ctx, "user@example.com", "password1")
		require.NoError(t, err)

		_, unknownErr := svc.Login(ctx, "other@example.com", "password1")
		_, mismatchErr := svc.Login(ctx, "user@example.com", "wrongpass1")

		assert.ErrorIs(t, unknownErr, auth.ErrInvalidCredentials)
		assert.ErrorIs(t, mismatchErr, auth.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), mismatchErr.Error())
	})

	t.Run("store failure is not invalid credentials", func(t *testing.T) {
		accounts := newMockAccountStore()
		accounts.getErr = errors.New("connection refused")
		svc := newAuthService(t, accounts)

		_, err := svc.Login(ctx, "user@example.com", "password1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
