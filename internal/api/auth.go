package api

import (
	"context"
	"net/http"

	"github.com/relaxrp/storefront/internal/domain"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User    domain.User `json:"user"`
	Message string      `json:"message"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	var resp authResponse
	err := c.do(ctx, request{method: http.MethodPost, path: "/auth/register", body: req}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*domain.User, error) {
	var resp authResponse
	err := c.do(ctx, request{method: http.MethodPost, path: "/auth/login", body: req}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}
