package placeholder

import (
	"errors"
	"fmt"
)

// Sentinel errors for API calls.
var (
	// ErrInvalidID is returned for non-positive ids. No request is sent.
	ErrInvalidID = errors.New("placeholder: invalid id")

	// ErrUnexpectedStatus is returned when the API answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("placeholder: unexpected status")

	// ErrDecode is returned when the response body is not valid JSON for the target type.
	ErrDecode = errors.New("placeholder: failed to decode response")
)

// StatusError describes a non-2xx response.
type StatusError struct {
	URL  string
	Code int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("placeholder: GET %s: status %d", e.URL, e.Code)
}

// Unwrap lets errors.Is match ErrUnexpectedStatus.
func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
