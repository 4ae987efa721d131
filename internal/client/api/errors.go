package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the request never
	// produced an HTTP response (DNS, refused connection, canceled context).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks responses where the service rejected the caller's
	// credentials or token (401/403).
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError is returned for any other non-2xx response. The numeric code is
// part of the message so callers matching on "404" keep working.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.Code)
}

// mapStatus converts a non-2xx HTTP status into an error.
func mapStatus(code int) error {
	switch code {
	case 401, 403:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, code)
	default:
		return &StatusError{Code: code}
	}
}
