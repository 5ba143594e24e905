package middleware_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"todoserver/internal/config"
	"todoserver/internal/service/auth"
)

func newRealJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "middleware-test-signing-secret",
		TokenLifetimeMinutes: 60,
		BcryptCost:           10,
	})
	require.NoError(t, err)
	return svc
}
