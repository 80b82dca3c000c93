package api

import "fmt"

// Error is a rejection from the backend, carrying its error envelope.
// Detail is the backend's message verbatim and is safe to show the user.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}
