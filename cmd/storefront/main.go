package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/relaxrp/storefront/internal/api"
	"github.com/relaxrp/storefront/internal/cart"
	"github.com/relaxrp/storefront/internal/catalog"
	"github.com/relaxrp/storefront/internal/cli"
	"github.com/relaxrp/storefront/internal/config"
	"github.com/relaxrp/storefront/internal/session"
	"github.com/relaxrp/storefront/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	cartStore := cart.New(store, logger)
	cartStore.Restore(ctx)

	client := api.NewClient(cfg.APIURL, cfg.HTTPTimeout, logger)
	app := cli.NewApp(cfg, client, cartStore, catalog.New(client), session.NewManager(store, logger), logger, os.Stdout)

	return app.Run(ctx, os.Args[1:])
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("STOREFRONT_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	// Quiet by default; the CLI speaks through stdout, not the log.
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func newStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	if cfg.Storage == "redis" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis connection failed: %w", err)
		}
		return storage.NewRedisStore(client, cfg.Profile), func() { client.Close() }, nil
	}

	store, err := storage.NewFileStore(cfg.StateDir)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}
