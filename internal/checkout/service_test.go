package checkout

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaxrp/storefront/internal/api"
	"github.com/relaxrp/storefront/internal/domain"
)

type mockBackend struct {
	m        sync.Mutex
	calls    int
	lastReq  api.CheckoutSessionRequest
	lastKeys []string
	session  *api.CheckoutSession
	err      error
}

func (b *mockBackend) CreateCheckoutSession(_ context.Context, req api.CheckoutSessionRequest, _, idempotencyKey string) (*api.CheckoutSession, error) {
	b.m.Lock()
	defer b.m.Unlock()
	b.calls++
	b.lastReq = req
	b.lastKeys = append(b.lastKeys, idempotencyKey)
	if b.err != nil {
		return nil, b.err
	}
	return b.session, nil
}

type staticCart struct {
	items []domain.CartItem
}

func (c staticCart) Items() []domain.CartItem { return c.items }
func (c staticCart) Len() int                 { return len(c.items) }

func TestBegin_RefusesEmptyCartWithoutNetworkCall(t *testing.T) {
	backend := &mockBackend{}
	svc := NewService(backend, staticCart{})

	_, err := svc.Begin(context.Background(), "user@shop.test", "http://127.0.0.1:8733")

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, backend.calls, "empty cart must be rejected before any request")
}

func TestBegin_RefusesAnonymousShopper(t *testing.T) {
	backend := &mockBackend{}
	svc := NewService(backend, staticCart{items: []domain.CartItem{{ProductID: "p1", Quantity: 1}}})

	_, err := svc.Begin(context.Background(), "", "http://127.0.0.1:8733")

	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, backend.calls)
}

func TestBegin_SubmitsCartSnapshotAndOrigin(t *testing.T) {
	backend := &mockBackend{session: &api.CheckoutSession{URL: "https://pay.example/s/abc"}}
	items := []domain.CartItem{
		{ProductID: "p1", ProductName: "VIP Car", Price: 19.99, Quantity: 2},
		{ProductID: "p2", ProductName: "House", Price: 49.99, Quantity: 1},
	}
	svc := NewService(backend, staticCart{items: items})

	session, err := svc.Begin(context.Background(), "user@shop.test", "http://127.0.0.1:8733")

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/s/abc", session.URL)
	assert.Equal(t, items, backend.lastReq.Items)
	assert.Equal(t, "http://127.0.0.1:8733", backend.lastReq.OriginURL)
}

func TestBegin_FreshIdempotencyKeyPerAttempt(t *testing.T) {
	backend := &mockBackend{session: &api.CheckoutSession{URL: "https://pay.example/s/abc"}}
	svc := NewService(backend, staticCart{items: []domain.CartItem{{ProductID: "p1", Quantity: 1}}})

	_, err := svc.Begin(context.Background(), "user@shop.test", "http://origin")
	require.NoError(t, err)
	_, err = svc.Begin(context.Background(), "user@shop.test", "http://origin")
	require.NoError(t, err)

	require.Len(t, backend.lastKeys, 2)
	assert.NotEmpty(t, backend.lastKeys[0])
	assert.NotEqual(t, backend.lastKeys[0], backend.lastKeys[1])
}
