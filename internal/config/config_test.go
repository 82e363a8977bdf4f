package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HIREON_SESSION_PATH", filepath.Join(t.TempDir(), "session.db"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "https://api.hireon.app/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HIREON_API_BASE_URL", "https://staging.hireon.app/api/v1")
	t.Setenv("HIREON_API_TIMEOUT", "30s")
	t.Setenv("HIREON_SESSION_PATH", filepath.Join(t.TempDir(), "session.db"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://staging.hireon.app/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}

func TestValidate_Rejects(t *testing.T) {
	t.Setenv("HIREON_SESSION_PATH", filepath.Join(t.TempDir(), "session.db"))

	t.Run("bad env", func(t *testing.T) {
		t.Setenv("APP_ENV", "sandbox")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad base url", func(t *testing.T) {
		t.Setenv("HIREON_API_BASE_URL", "not a url")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("timeout too small", func(t *testing.T) {
		t.Setenv("HIREON_API_TIMEOUT", "100ms")
		_, err := Load()
		require.Error(t, err)
	})
}
