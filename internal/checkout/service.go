package checkout

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/relaxrp/storefront/internal/api"
	"github.com/relaxrp/storefront/internal/domain"
)

var (
	ErrEmptyCart   = errors.New("cart is empty, nothing to checkout")
	ErrNotLoggedIn = errors.New("login required before checkout")
)

// SessionBackend creates checkout sessions with the payment processor.
type SessionBackend interface {
	CreateCheckoutSession(ctx context.Context, req api.CheckoutSessionRequest, userEmail, idempotencyKey string) (*api.CheckoutSession, error)
}

// CartView is the read side of the local cart used at checkout time.
type CartView interface {
	Items() []domain.CartItem
	Len() int
}

// Service begins a checkout: it rejects bad preconditions client-side before
// any network call, then submits the cart snapshot and hands back the
// processor redirect.
type Service struct {
	backend SessionBackend
	cart    CartView
}

func NewService(backend SessionBackend, cart CartView) *Service {
	return &Service{backend: backend, cart: cart}
}

// Begin refuses an empty cart or an anonymous shopper without touching the
// network. Each attempt carries a fresh idempotency key so a retried submit
// after a transport failure cannot double-charge.
func (s *Service) Begin(ctx context.Context, userEmail, originURL string) (*api.CheckoutSession, error) {
	if userEmail == "" {
		return nil, ErrNotLoggedIn
	}
	if s.cart.Len() == 0 {
		return nil, ErrEmptyCart
	}

	session, err := s.backend.CreateCheckoutSession(ctx, api.CheckoutSessionRequest{
		Items:     s.cart.Items(),
		OriginURL: originURL,
	}, userEmail, uuid.NewString())
	if err != nil {
		return nil, err
	}
	return session, nil
}
