package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Blog API", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 120, cfg.App.RateLimit)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "blog", cfg.Database.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.Host)
	assert.NotEmpty(t, cfg.JWT.Secret)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_PORT", "5439")
	t.Setenv("JWT_SECRET", "unit-test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 5439, cfg.Database.Port)
	assert.Equal(t, "unit-test-secret", cfg.JWT.Secret)
}

func TestValidateRejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "sandbox")

	_, err := Load()
	require.Error(t, err)
}

func TestValidateProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "secret")

	_, err := Load()
	require.Error(t, err, "default JWT secret must be rejected in production")

	t.Setenv("JWT_SECRET", "prod-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Environment)
}

func TestGetEnvIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "not-a-number")

	assert.Equal(t, 25, getEnvInt("DB_MAX_CONNS", 25))
}
