package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("ENV", "test")
	t.Setenv("DB_SERVER", "localhost:3306")
	t.Setenv("DB_NAME", "registration")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.HttpServer.Port)
	assert.False(t, cfg.HttpServer.SwaggerEnabled)
	assert.Equal(t, 24*time.Hour, cfg.Registration.TokenTTL)
	assert.Equal(t, int64(5<<20), cfg.Registration.MaxUploadBytes)
	assert.Equal(t, []string{"image/jpeg", "image/png", "image/gif"}, cfg.Registration.AllowedMimeTypes)
	assert.Equal(t, "http://localhost:8000", cfg.Registration.BaseURL)
	assert.False(t, cfg.Identity.Configured())
	assert.False(t, cfg.Storage.Configured())
	assert.False(t, cfg.SMTP.Configured())
	assert.False(t, cfg.Cache.Configured())
	assert.False(t, cfg.Email.Async)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("VERIFICATION_TOKEN_TTL", "2h")
	t.Setenv("STORAGE_PROVIDER", "minio")
	t.Setenv("HTTP_CORS_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.Registration.TokenTTL)
	assert.True(t, cfg.Storage.Configured())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HttpServer.CORSOrigins)
}

func TestLoad_MissingDatabase(t *testing.T) {
	t.Setenv("ENV", "test")
	for _, key := range []string{"DB_SERVER", "DB_NAME", "DB_USER", "DB_PASSWORD"} {
		// registers restore on cleanup before unsetting
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	_, err := Load()
	assert.Error(t, err)
}

func TestCache_Configured(t *testing.T) {
	var c Cache
	assert.False(t, c.Configured())

	c.RedisCluster.Addresses = []string{""}
	assert.False(t, c.Configured())

	c.RedisCluster.Addresses = []string{"10.0.0.1:7000"}
	assert.True(t, c.Configured())
}

func TestLoad_AsyncEmailNeedsRedis(t *testing.T) {
	setRequired(t)
	t.Setenv("EMAIL_ASYNC", "true")
	t.Setenv("REDIS_ADDR", "")

	_, err := Load()
	assert.ErrorContains(t, err, "EMAIL_ASYNC")

	t.Setenv("REDIS_ADDR", "localhost:6379")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Email.Async)
}
