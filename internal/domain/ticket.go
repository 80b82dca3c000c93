package domain

import "time"

const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusClosed     = "closed"
)

type Ticket struct {
	ID        string          `json:"id"`
	UserEmail string          `json:"user_email"`
	Subject   string          `json:"subject"`
	Status    string          `json:"status"`
	OrderID   string          `json:"order_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Messages  []TicketMessage `json:"messages"`
}

type TicketMessage struct {
	Sender    string    `json:"sender"` // "admin" or "user"
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
