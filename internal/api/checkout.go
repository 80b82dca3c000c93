package api

import (
	"context"
	"net/http"

	"github.com/relaxrp/storefront/internal/domain"
)

const headerIdempotencyKey = "Idempotency-Key"

type CheckoutSessionRequest struct {
	Items     []domain.CartItem `json:"items"`
	OriginURL string            `json:"origin_url"`
}

// CheckoutSession correlates the cart snapshot with a payment-processor
// transaction. URL is where the shopper completes payment; SessionID comes
// back on the return redirect as the session_id query parameter.
type CheckoutSession struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

type CheckoutStatus struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

func (c *Client) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest, userEmail, idempotencyKey string) (*CheckoutSession, error) {
	var session CheckoutSession
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/checkout/session",
		body:      req,
		userEmail: userEmail,
		headers:   map[string]string{headerIdempotencyKey: idempotencyKey},
	}, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) GetCheckoutStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error) {
	var status CheckoutStatus
	err := c.do(ctx, request{method: http.MethodGet, path: "/checkout/status/" + sessionID}, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
