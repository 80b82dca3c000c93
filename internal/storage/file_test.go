package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, KeyCart, []byte(`[{"product_id":"p1"}]`)))

	data, err := store.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"product_id":"p1"}]`, string(data))
}

func TestFileStore_MissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, errGet := store.Get(context.Background(), KeyUser)
	assert.ErrorIs(t, errGet, ErrNotFound)
}

func TestFileStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, KeyUser, []byte(`{"email":"a@b.c"}`)))
	require.NoError(t, store.Set(ctx, KeyUser, []byte(`{"email":"x@y.z"}`)))

	data, errGet := store.Get(ctx, KeyUser)
	require.NoError(t, errGet)
	assert.JSONEq(t, `{"email":"x@y.z"}`, string(data))
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, KeyCart, []byte("[]")))
	require.NoError(t, store.Delete(ctx, KeyCart))
	require.NoError(t, store.Delete(ctx, KeyCart))

	_, errGet := store.Get(ctx, KeyCart)
	assert.ErrorIs(t, errGet, ErrNotFound)
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, KeyCart, []byte("[]")))

	entries, errRead := os.ReadDir(dir)
	require.NoError(t, errRead)
	require.Len(t, entries, 1)
	assert.Equal(t, KeyCart+".json", filepath.Base(entries[0].Name()))
}
