package upstream

import (
	"errors"
	"fmt"
)

// Sentinel errors for the upstream feed client.
var (
	// ErrUnavailable indicates the feed could not be reached or returned a
	// non-success status. Handlers map it to 502.
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrDecode indicates the feed responded but the body was not JSON.
	ErrDecode = errors.New("upstream decode failed")
)

// StatusError carries the HTTP status of a non-2xx upstream response.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream HTTP %d", e.Status)
}

// Unwrap makes StatusError match ErrUnavailable in errors.Is checks.
func (e *StatusError) Unwrap() error {
	return ErrUnavailable
}
