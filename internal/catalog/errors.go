// Package catalog implements the typed HTTP client for the remote catalog API.
package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the catalog reports that a product does not exist.
var ErrNotFound = errors.New("product not found")

// StatusError is a non-2xx catalog response. Message carries the human-readable
// text extracted from the response body when the body was structured JSON, and
// a generic fallback otherwise.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog returned status %d: %s", e.Code, e.Message)
}

// UserMessage extracts the text worth showing to a user from a client error.
// Server-reported messages pass through; transport and decoding failures
// collapse to a generic message.
func UserMessage(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message
	}
	if errors.Is(err, ErrNotFound) {
		return "Product not found"
	}
	return "Could not reach the catalog service"
}
