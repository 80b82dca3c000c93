package cli

import (
	"context"
	"errors"
	"flag"

	"github.com/relaxrp/storefront/internal/api"
)

func (a *App) listProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	category := fs.String("category", "", "filter by category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	products, err := a.catalog.Products(ctx, *category)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		a.printf("no products found\n")
		return nil
	}
	for _, p := range products {
		a.printf("%s  %-30s  $%.2f  [%s]\n", p.ID, p.Name, p.Price, p.Category)
	}
	return nil
}

func (a *App) showProduct(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: storefront product <id>")
	}

	product, err := a.api.GetProduct(ctx, args[0])
	if err != nil {
		return err
	}

	a.printf("%s\n%s\n$%.2f  category: %s\n", product.Name, product.Description, product.Price, product.Category)
	return nil
}

func (a *App) createProduct(ctx context.Context, args []string) error {
	in, err := parseProductFlags("product-create", args)
	if err != nil {
		return err
	}
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}

	product, errCreate := a.api.CreateProduct(ctx, *in, user.Email)
	if errCreate != nil {
		return errCreate
	}

	a.catalog.Invalidate()
	a.printf("created product %s\n", product.ID)
	return nil
}

func (a *App) updateProduct(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: storefront product-update <id> [flags]")
	}
	id := args[0]
	in, err := parseProductFlags("product-update", args[1:])
	if err != nil {
		return err
	}
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}

	if _, errUpdate := a.api.UpdateProduct(ctx, id, *in, user.Email); errUpdate != nil {
		return errUpdate
	}

	a.catalog.Invalidate()
	a.printf("updated product %s\n", id)
	return nil
}

func (a *App) deleteProduct(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: storefront product-delete <id>")
	}
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}

	if errDelete := a.api.DeleteProduct(ctx, args[0], user.Email); errDelete != nil {
		return errDelete
	}

	a.catalog.Invalidate()
	a.printf("deleted product %s\n", args[0])
	return nil
}

func parseProductFlags(name string, args []string) (*api.ProductInput, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	productName := fs.String("name", "", "product name")
	description := fs.String("description", "", "product description")
	price := fs.Float64("price", 0, "unit price")
	category := fs.String("category", "", "product category")
	imageURL := fs.String("image-url", "", "primary image URL")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &api.ProductInput{
		Name:        *productName,
		Description: *description,
		Price:       *price,
		Category:    *category,
		ImageURL:    *imageURL,
	}, nil
}
