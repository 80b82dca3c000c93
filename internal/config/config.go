package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	defaultStorage      = "file"
	defaultProfile      = "default"
	defaultHTTPTimeout  = 10 * time.Second
	defaultPollAttempts = 5
	defaultPollDelay    = 2 * time.Second
	defaultCallbackAddr = "127.0.0.1:8733"
	defaultRedisAddr    = "127.0.0.1:6379"
)

// Config captures all runtime configuration, read once from the environment.
type Config struct {
	APIURL       string
	Storage      string // "file" or "redis"
	StateDir     string
	RedisAddr    string
	Profile      string
	HTTPTimeout  time.Duration
	PollAttempts int
	PollDelay    time.Duration
	CallbackAddr string
}

// Load reads configuration from STOREFRONT_* environment variables. The
// backend URL is the only required value; invalid numeric values are an
// error rather than silently defaulted.
func Load() (*Config, error) {
	cfg := &Config{
		APIURL:       os.Getenv("STOREFRONT_API_URL"),
		Storage:      envOr("STOREFRONT_STORAGE", defaultStorage),
		RedisAddr:    envOr("STOREFRONT_REDIS_ADDR", defaultRedisAddr),
		Profile:      envOr("STOREFRONT_PROFILE", defaultProfile),
		CallbackAddr: envOr("STOREFRONT_CALLBACK_ADDR", defaultCallbackAddr),
	}

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("STOREFRONT_API_URL is required")
	}
	if cfg.Storage != "file" && cfg.Storage != "redis" {
		return nil, fmt.Errorf("STOREFRONT_STORAGE must be file or redis, got %q", cfg.Storage)
	}

	stateDir := os.Getenv("STOREFRONT_STATE_DIR")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		stateDir = filepath.Join(home, ".storefront")
	}
	cfg.StateDir = stateDir

	var err error
	if cfg.HTTPTimeout, err = envDuration("STOREFRONT_HTTP_TIMEOUT", defaultHTTPTimeout); err != nil {
		return nil, err
	}
	if cfg.PollDelay, err = envDuration("STOREFRONT_POLL_DELAY", defaultPollDelay); err != nil {
		return nil, err
	}
	if cfg.PollAttempts, err = envInt("STOREFRONT_POLL_ATTEMPTS", defaultPollAttempts); err != nil {
		return nil, err
	}
	if cfg.PollAttempts < 1 {
		return nil, fmt.Errorf("STOREFRONT_POLL_ATTEMPTS must be at least 1")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
