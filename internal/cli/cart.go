package cli

import (
	"context"
	"errors"
	"strconv"
)

func (a *App) cartCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: storefront cart add|list|update|remove|clear")
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return errors.New("usage: storefront cart add <product-id>")
		}
		return a.cartAdd(ctx, args[1])
	case "list":
		return a.cartList()
	case "update":
		if len(args) < 3 {
			return errors.New("usage: storefront cart update <product-id> <delta>")
		}
		delta, err := strconv.Atoi(args[2])
		if err != nil {
			return errors.New("delta must be an integer, e.g. 1 or -1")
		}
		if errUpdate := a.cart.UpdateQuantity(ctx, args[1], delta); errUpdate != nil {
			return errUpdate
		}
		return a.cartList()
	case "remove":
		if len(args) < 2 {
			return errors.New("usage: storefront cart remove <product-id>")
		}
		if err := a.cart.RemoveItem(ctx, args[1]); err != nil {
			return err
		}
		a.printf("removed from cart\n")
		return nil
	case "clear":
		if err := a.cart.Clear(ctx); err != nil {
			return err
		}
		a.printf("cart cleared\n")
		return nil
	default:
		return errors.New("usage: storefront cart add|list|update|remove|clear")
	}
}

// cartAdd fetches the product once and snapshots its name and price into the
// cart line. Adding the same product again only bumps the quantity.
func (a *App) cartAdd(ctx context.Context, productID string) error {
	product, err := a.api.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	if errAdd := a.cart.AddItem(ctx, *product); errAdd != nil {
		return errAdd
	}
	a.printf("added %s to cart\n", product.Name)
	return nil
}

func (a *App) cartList() error {
	items := a.cart.Items()
	if len(items) == 0 {
		a.printf("cart is empty\n")
		return nil
	}

	for _, item := range items {
		a.printf("%s  %-30s  %d x $%.2f\n", item.ProductID, item.ProductName, item.Quantity, item.Price)
	}
	a.printf("total: $%.2f\n", a.cart.Total())
	return nil
}
