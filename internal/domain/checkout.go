package domain

// CheckoutOutcome is the state of the payment-confirmation flow after
// returning from the external processor.
type CheckoutOutcome string

const (
	CheckoutChecking CheckoutOutcome = "checking"
	CheckoutSuccess  CheckoutOutcome = "success"
	CheckoutExpired  CheckoutOutcome = "expired"
	CheckoutError    CheckoutOutcome = "error"
	CheckoutTimedOut CheckoutOutcome = "timeout"
)

func (o CheckoutOutcome) IsTerminal() bool {
	return o != CheckoutChecking
}

// String representation (for logging)
func (o CheckoutOutcome) String() string {
	return string(o)
}
