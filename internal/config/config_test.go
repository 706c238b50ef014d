package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_ADDRESS", "DATABASE_PATH", "DATASET_DIR", "JWT_SECRET_KEY", "SIGNUP_INVITE_CODE",
	"DEFAULT_ROWS", "MAX_ROWS", "RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BURST", "CORS_ALLOW_ORIGINS",
}

// clearEnv blanks every key; getEnv treats empty values as unset.
func clearEnv(t *testing.T) {
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, ":8080", cfg.HTTPAddress)
	assert.Equal(t, "./weight_loss_datagen.db", cfg.DatabasePath)
	assert.Equal(t, "data/datasets", cfg.DatasetDir)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 5000, cfg.DefaultRows)
	assert.Equal(t, 50000, cfg.MaxRows)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.True(t, cfg.AllowAllOrigins())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("MAX_ROWS", "0")
	t.Setenv("DEFAULT_ROWS", "-4")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173, https://example.org ,")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, ":9090", cfg.HTTPAddress)
	assert.Equal(t, 0, cfg.MaxRows)
	assert.Equal(t, 1, cfg.DefaultRows)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, []string{"http://localhost:5173", "https://example.org"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.AllowAllOrigins())
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DATASET_DIR=/tmp/ds\nJWT_SECRET_KEY=s3cret\n"), 0644))
	// godotenv does not override variables that are already set, even if empty.
	require.NoError(t, os.Unsetenv("DATASET_DIR"))
	require.NoError(t, os.Unsetenv("JWT_SECRET_KEY"))
	t.Cleanup(func() {
		os.Unsetenv("DATASET_DIR")
		os.Unsetenv("JWT_SECRET_KEY")
	})

	cfg := Load(envFile)
	assert.Equal(t, "/tmp/ds", cfg.DatasetDir)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestClampRows(t *testing.T) {
	assert.Equal(t, 50000, Config{MaxRows: 50000}.ClampRows(80000))
	assert.Equal(t, 10, Config{MaxRows: 50000}.ClampRows(10))
	assert.Equal(t, 80000, Config{MaxRows: 0}.ClampRows(80000))
}
