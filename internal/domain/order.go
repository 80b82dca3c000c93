package domain

import "time"

type Order struct {
	ID            string     `json:"id"`
	UserEmail     string     `json:"user_email"`
	Items         []CartItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	PaymentStatus string     `json:"payment_status"`
	CreatedAt     time.Time  `json:"created_at"`
}
