package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/relaxrp/storefront/internal/callback"
	"github.com/relaxrp/storefront/internal/checkout"
	"github.com/relaxrp/storefront/internal/domain"
)

// checkout begins a payment session, waits for the processor's return
// redirect on the local callback listener, then polls until the outcome is
// known.
func (a *App) checkout(ctx context.Context) error {
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}

	listener := callback.NewListener(a.cfg.CallbackAddr, a.logger)
	svc := checkout.NewService(a.api, a.cart)

	session, err := svc.Begin(ctx, user.Email, listener.OriginURL())
	if errors.Is(err, checkout.ErrEmptyCart) {
		return errors.New("your cart is empty, add products before checking out")
	}
	if err != nil {
		return err
	}

	a.printf("complete your payment in the browser:\n\n  %s\n\nwaiting for the payment provider to redirect back...\n", session.URL)

	sessionID, err := listener.Wait(ctx)
	if err != nil {
		return fmt.Errorf("payment return not received: %w", err)
	}

	return a.pollOutcome(ctx, sessionID)
}

// confirm resumes confirmation for a session id pasted from a return URL.
func (a *App) confirm(ctx context.Context, args []string) error {
	if len(args) < 1 || args[0] == "" {
		return errors.New("usage: storefront confirm <session-id>")
	}
	return a.pollOutcome(ctx, args[0])
}

func (a *App) pollOutcome(ctx context.Context, sessionID string) error {
	a.printf("verifying payment for session %s...\n", sessionID)

	poller := checkout.NewPoller(a.api, a.cart, a.logger).
		WithLimits(a.cfg.PollAttempts, a.cfg.PollDelay)
	outcome, err := poller.Run(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("confirmation interrupted: %w", err)
	}

	// Each failure mode reads differently so the shopper knows whether to
	// retry, wait, or ask for help.
	switch outcome {
	case domain.CheckoutSuccess:
		a.printf("payment confirmed, thank you! your cart has been cleared\n")
		return nil
	case domain.CheckoutExpired:
		return errors.New("the payment session expired, start checkout again")
	case domain.CheckoutTimedOut:
		return errors.New("payment is still pending; check your orders shortly or contact support")
	default:
		return errors.New("could not verify the payment, check your orders or try again")
	}
}
