package storage

import (
	"context"
	"errors"
)

// Keys under which the client persists its two durable blobs.
const (
	KeyCart = "cart"
	KeyUser = "user"
)

var ErrNotFound = errors.New("key not found")

// Store is the durable key-value port backing the cart and the user record.
// Values are opaque JSON blobs; callers treat ErrNotFound and malformed
// content the same way (no value).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
