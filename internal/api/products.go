package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/relaxrp/storefront/internal/domain"
)

type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Images      []string `json:"images,omitempty"`
}

func (c *Client) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	var query url.Values
	if category != "" {
		query = url.Values{"category": {category}}
	}
	var products []domain.Product
	err := c.do(ctx, request{method: http.MethodGet, path: "/products", query: query}, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	err := c.do(ctx, request{method: http.MethodGet, path: "/products/" + id}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct is admin-only; the backend enforces the user-email header.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput, userEmail string) (*domain.Product, error) {
	var product domain.Product
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/products",
		body:      in,
		userEmail: userEmail,
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput, userEmail string) (*domain.Product, error) {
	var product domain.Product
	err := c.do(ctx, request{
		method:    http.MethodPut,
		path:      "/products/" + id,
		body:      in,
		userEmail: userEmail,
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id, userEmail string) error {
	return c.do(ctx, request{
		method:    http.MethodDelete,
		path:      "/products/" + id,
		userEmail: userEmail,
	}, nil)
}
