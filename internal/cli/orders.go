package cli

import (
	"context"
	"flag"

	"github.com/relaxrp/storefront/internal/domain"
)

func (a *App) listOrders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	all := fs.Bool("all", false, "list every order (admin only)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}

	var orders []domain.Order
	if *all {
		orders, err = a.api.ListAllOrders(ctx, user.Email)
	} else {
		orders, err = a.api.ListOrders(ctx, user.Email)
	}
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		a.printf("no orders\n")
		return nil
	}
	for _, o := range orders {
		a.printf("%s  %s  $%.2f  %s  (%d items)\n",
			o.ID, o.CreatedAt.Format("2006-01-02"), o.TotalAmount, o.PaymentStatus, len(o.Items))
	}
	return nil
}
