package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	var cfg Config
	cfg.Auth.JWTSecret = strings.Repeat("s", 32)
	cfg.Auth.BcryptCost = 12
	cfg.Database.URI = "mongodb://localhost:27017"
	cfg.Database.MaxPoolSize = 100
	cfg.Database.MinPoolSize = 5
	cfg.Reports.MaxRows = 10000
	return cfg
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_ShortJWTSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestValidate_BcryptCostOutOfRange(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.BcryptCost = 99

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bcrypt_cost")
}

func TestValidate_MissingDatabaseURI(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Database.URI = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.uri")
}

func TestValidate_PoolSizeInversion(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Database.MinPoolSize = 200

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_pool_size")
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("DATABASE_URI", "mongodb://localhost:27017")
	t.Setenv("AUTH_JWT_SECRET", strings.Repeat("x", 32))
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "lumo", cfg.Database.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	require.Error(t, err)
}
