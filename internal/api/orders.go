package api

import (
	"context"
	"net/http"

	"github.com/relaxrp/storefront/internal/domain"
)

func (c *Client) ListOrders(ctx context.Context, userEmail string) ([]domain.Order, error) {
	var orders []domain.Order
	err := c.do(ctx, request{method: http.MethodGet, path: "/orders", userEmail: userEmail}, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAllOrders is admin-only.
func (c *Client) ListAllOrders(ctx context.Context, userEmail string) ([]domain.Order, error) {
	var orders []domain.Order
	err := c.do(ctx, request{method: http.MethodGet, path: "/orders/all", userEmail: userEmail}, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}
