package providers

import (
	"errors"
	"fmt"
)

// ErrRateLimited is returned when the remote service reports quota or rate
// exhaustion (HTTP 429). Callers decide whether and when to retry; the
// providers never retry on their own.
var ErrRateLimited = errors.New("rate limited")

// AuthError reports a credential problem: a missing, invalid, or rejected
// API key. These are configuration failures, fatal to every call until
// corrected.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return "authentication error: " + e.Message
}

type serverError struct {
	statusCode int
	body       string
}

func (e *serverError) Error() string {
	return fmt.Sprintf("service error (status %d): %s", e.statusCode, e.body)
}

// IsAuthError reports whether err is an AuthError.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsRateLimitError reports whether err wraps ErrRateLimited.
func IsRateLimitError(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
