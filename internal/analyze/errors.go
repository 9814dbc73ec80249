package analyze

import (
	"errors"

	"github.com/sdutta9/mealscan/internal/nutrition"
	"github.com/sdutta9/mealscan/internal/providers"
)

// Kind is the closed error taxonomy exposed to callers. The UI renders
// distinct messaging per kind; this package's responsibility ends at
// producing a stable, small set.
type Kind string

const (
	// KindConfiguration: the inference client cannot be constructed or its
	// credentials are rejected. Fatal to every call until corrected.
	KindConfiguration Kind = "CONFIGURATION_ERROR"
	// KindRateLimited: the remote service reported quota or rate
	// exhaustion. Retryable after cooling down; never auto-retried here.
	KindRateLimited Kind = "RATE_LIMITED"
	// KindMalformed: the service returned content that cannot be parsed
	// into the expected schema at all. Retryable.
	KindMalformed Kind = "MALFORMED_RESPONSE"
	// KindTransport: network or service-unavailable conditions. Retryable.
	KindTransport Kind = "TRANSPORT_ERROR"
)

// Error pairs an underlying failure with its taxonomy kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the taxonomy kind from an error, or "" if err did not
// come from an Engine.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// classify maps a raw failure onto the taxonomy.
func classify(err error) *Error {
	switch {
	case providers.IsAuthError(err):
		return &Error{Kind: KindConfiguration, Err: err}
	case providers.IsRateLimitError(err):
		return &Error{Kind: KindRateLimited, Err: err}
	case errors.Is(err, nutrition.ErrMalformed):
		return &Error{Kind: KindMalformed, Err: err}
	default:
		return &Error{Kind: KindTransport, Err: err}
	}
}
