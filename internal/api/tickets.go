package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/relaxrp/storefront/internal/domain"
)

type TicketInput struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
	OrderID string `json:"order_id,omitempty"`
}

type TicketReply struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"is_admin"`
}

func (c *Client) CreateTicket(ctx context.Context, in TicketInput, userEmail string) (*domain.Ticket, error) {
	var ticket domain.Ticket
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/tickets",
		body:      in,
		userEmail: userEmail,
	}, &ticket)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *Client) ListTickets(ctx context.Context, userEmail string) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	err := c.do(ctx, request{method: http.MethodGet, path: "/tickets", userEmail: userEmail}, &tickets)
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// ListAllTickets is admin-only.
func (c *Client) ListAllTickets(ctx context.Context, userEmail string) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	err := c.do(ctx, request{method: http.MethodGet, path: "/tickets/all", userEmail: userEmail}, &tickets)
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (c *Client) GetTicket(ctx context.Context, id, userEmail string) (*domain.Ticket, error) {
	var ticket domain.Ticket
	err := c.do(ctx, request{method: http.MethodGet, path: "/tickets/" + id, userEmail: userEmail}, &ticket)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *Client) ReplyToTicket(ctx context.Context, id string, reply TicketReply, userEmail string) error {
	return c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/tickets/" + id + "/reply",
		body:      reply,
		userEmail: userEmail,
	}, nil)
}

func (c *Client) UpdateTicketStatus(ctx context.Context, id, status, userEmail string) error {
	return c.do(ctx, request{
		method:    http.MethodPatch,
		path:      "/tickets/" + id + "/status",
		query:     url.Values{"status": {status}},
		userEmail: userEmail,
	}, nil)
}
