package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Library API", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "library", cfg.Database.Database)
	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
	assert.Equal(t, "secret", cfg.Auth.LoginPassword)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("LOGIN_PASSWORD", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 50, cfg.Database.MaxConns)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "hunter2", cfg.Auth.LoginPassword)
}

func TestValidateProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "a-real-secret")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")

	t.Setenv("DB_PASSWORD", "pw")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Environment)
}

func TestValidateExpiry(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "0")

	_, err := Load()
	assert.Error(t, err)
}
