package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("STOREFRONT_API_URL", "http://backend.test")
	for _, key := range []string{
		"STOREFRONT_STORAGE", "STOREFRONT_STATE_DIR", "STOREFRONT_REDIS_ADDR",
		"STOREFRONT_PROFILE", "STOREFRONT_HTTP_TIMEOUT", "STOREFRONT_POLL_ATTEMPTS",
		"STOREFRONT_POLL_DELAY", "STOREFRONT_CALLBACK_ADDR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_RequiresAPIURL(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STOREFRONT_API_URL")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage)
	assert.Equal(t, "default", cfg.Profile)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 5, cfg.PollAttempts)
	assert.Equal(t, 2*time.Second, cfg.PollDelay)
	assert.Equal(t, "127.0.0.1:8733", cfg.CallbackAddr)
	assert.NotEmpty(t, cfg.StateDir)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("STOREFRONT_STORAGE", "redis")
	t.Setenv("STOREFRONT_REDIS_ADDR", "10.0.0.5:6379")
	t.Setenv("STOREFRONT_POLL_ATTEMPTS", "8")
	t.Setenv("STOREFRONT_POLL_DELAY", "500ms")
	t.Setenv("STOREFRONT_STATE_DIR", "/var/lib/storefront")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage)
	assert.Equal(t, "10.0.0.5:6379", cfg.RedisAddr)
	assert.Equal(t, 8, cfg.PollAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.PollDelay)
	assert.Equal(t, "/var/lib/storefront", cfg.StateDir)
}

func TestLoad_RejectsUnknownStorage(t *testing.T) {
	setRequired(t)
	t.Setenv("STOREFRONT_STORAGE", "mongodb")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidNumbers(t *testing.T) {
	setRequired(t)
	t.Setenv("STOREFRONT_POLL_ATTEMPTS", "five")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsZeroAttempts(t *testing.T) {
	setRequired(t)
	t.Setenv("STOREFRONT_POLL_ATTEMPTS", "0")

	_, err := Load()
	assert.Error(t, err)
}
