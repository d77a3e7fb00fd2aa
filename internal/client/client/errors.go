package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request never got an HTTP response
	// (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized covers bad credentials and rejected tokens.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response carrying an optional server-provided
// detail message ({"detail": "..."}). It unwraps to ErrUnauthorized for
// 401 so callers can keep matching with errors.Is.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == 401 {
		return ErrUnauthorized
	}
	return nil
}

// Detail extracts the server-provided detail message from err, if any.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
