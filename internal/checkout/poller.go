package checkout

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/relaxrp/storefront/internal/api"
	"github.com/relaxrp/storefront/internal/domain"
)

const (
	defaultMaxAttempts = 5
	defaultDelay       = 2 * time.Second
)

// StatusClient queries the backend for the state of a checkout session.
type StatusClient interface {
	GetCheckoutStatus(ctx context.Context, sessionID string) (*api.CheckoutStatus, error)
}

// CartClearer empties the local cart once payment is confirmed.
type CartClearer interface {
	Clear(ctx context.Context) error
}

// Poller resolves the outcome of an externally-processed payment by bounded
// polling. Polls are strictly sequential: the next one is scheduled only
// after the previous response is known, so at most one query is in flight
// and at most one transition happens per cycle.
type Poller struct {
	client      StatusClient
	cart        CartClearer
	maxAttempts int
	delay       time.Duration
	logger      *zap.Logger
}

func NewPoller(client StatusClient, cart CartClearer, logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		client:      client,
		cart:        cart,
		maxAttempts: defaultMaxAttempts,
		delay:       defaultDelay,
		logger:      logger,
	}
}

// WithLimits overrides the attempt budget and inter-poll delay.
func (p *Poller) WithLimits(maxAttempts int, delay time.Duration) *Poller {
	p.maxAttempts = maxAttempts
	p.delay = delay
	return p
}

// Run polls the session until a terminal outcome. A query failure is terminal
// immediately; there is no retry on error. On confirmed payment the cart is
// cleared before Run returns. Cancelling ctx stops the poller between cycles
// without issuing another query; Run then reports CheckoutChecking alongside
// the context error.
func (p *Poller) Run(ctx context.Context, sessionID string) (domain.CheckoutOutcome, error) {
	attempts := 0
	for {
		if ctx.Err() != nil {
			return domain.CheckoutChecking, ctx.Err()
		}

		status, err := p.client.GetCheckoutStatus(ctx, sessionID)
		if err != nil {
			p.logger.Warn("checkout status query failed",
				zap.String("session_id", sessionID), zap.Error(err))
			return domain.CheckoutError, nil
		}

		if status.PaymentStatus == "paid" {
			if errClear := p.cart.Clear(ctx); errClear != nil {
				p.logger.Error("failed to clear cart after payment", zap.Error(errClear))
			}
			return domain.CheckoutSuccess, nil
		}

		if status.Status == "expired" {
			return domain.CheckoutExpired, nil
		}

		attempts++
		if attempts >= p.maxAttempts {
			p.logger.Info("payment confirmation timed out",
				zap.String("session_id", sessionID), zap.Int("attempts", attempts))
			return domain.CheckoutTimedOut, nil
		}

		timer := time.NewTimer(p.delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return domain.CheckoutChecking, ctx.Err()
		}
	}
}
