package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoserver/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TODO_DATABASE_URL", "postgres://localhost:5432/todo_test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, config.DefaultJWTSecret, cfg.Auth.JWTSecret)
	assert.True(t, cfg.Auth.UsesDefaultSecret())
	assert.Equal(t, 24*60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TODO_SERVER_PORT", "8080")
	t.Setenv("TODO_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TODO_DATABASE_URL", "postgres://localhost:5432/todo_test")
	t.Setenv("TODO_AUTH_JWT_SECRET", "a-real-secret-for-testing")
	t.Setenv("TODO_AUTH_TOKEN_LIFETIME_MINUTES", "60")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/todo_test", cfg.Database.URL)
	assert.Equal(t, "a-real-secret-for-testing", cfg.Auth.JWTSecret)
	assert.False(t, cfg.Auth.UsesDefaultSecret())
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("TODO_DATABASE_URL", "postgres://localhost:5432/todo_test")
		t.Setenv("TODO_SERVER_LOG_LEVEL", "verbose")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("TODO_DATABASE_URL", "postgres://localhost:5432/todo_test")
		t.Setenv("TODO_SERVER_PORT", "70000")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
