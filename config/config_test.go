package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 90*time.Second, cfg.API.UploadTimeout)
	assert.Equal(t, 3*time.Minute, cfg.API.AITimeout)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.NotEmpty(t, cfg.Storage.FilePath)
	assert.Equal(t, "light", cfg.App.ThemeMode)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("QUICKBIRD_API_URL", "https://api.quickbird.test")
	t.Setenv("QUICKBIRD_STORAGE", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("QUICKBIRD_REQUEST_TIMEOUT", "10s")
	t.Setenv("QUICKBIRD_RATE_LIMIT", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.quickbird.test", cfg.API.BaseURL)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "redis.internal:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, 10*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 2.5, cfg.API.RateLimit)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("QUICKBIRD_REQUEST_TIMEOUT", "not-a-duration")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 0, cfg.Storage.RedisDB)
}

func TestValidate(t *testing.T) {
	t.Run("unknown storage backend", func(t *testing.T) {
		t.Setenv("QUICKBIRD_STORAGE", "etcd")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("file backend needs a path", func(t *testing.T) {
		cfg := &Config{
			API:     APIConfig{BaseURL: "http://localhost:8000"},
			Storage: StorageConfig{Backend: "file"},
		}
		assert.Error(t, cfg.Validate())
	})
}
