package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaxrp/storefront/internal/domain"
	"github.com/relaxrp/storefront/internal/storage"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewManager(store, nil)
}

func TestCurrent_NobodyLoggedIn(t *testing.T) {
	m := newManager(t)
	assert.Nil(t, m.Current(context.Background()))
}

func TestSetUser_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	require.NoError(t, m.SetUser(ctx, &domain.User{
		ID: "u1", Email: "a@shop.test", FullName: "A", IsAdmin: true,
	}))

	user := m.Current(ctx)
	require.NotNil(t, user)
	assert.Equal(t, "a@shop.test", user.Email)
	assert.True(t, user.IsAdmin)
}

func TestClearUser(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	require.NoError(t, m.SetUser(ctx, &domain.User{Email: "a@shop.test"}))
	require.NoError(t, m.ClearUser(ctx))

	assert.Nil(t, m.Current(ctx))
}

func TestCurrent_MalformedRecordMeansLoggedOut(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyUser, []byte("{broken")))

	m := NewManager(store, nil)
	assert.Nil(t, m.Current(ctx))
}
