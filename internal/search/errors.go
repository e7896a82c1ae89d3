package search

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/Magneticdud/pixaview/internal/pixabay"
)

// Kind classifies a search failure for user-facing reporting.
type Kind int

const (
	// KindValidation means the query was rejected locally; no network
	// activity took place.
	KindValidation Kind = iota

	// KindTimeout means the API did not respond within the bounded interval.
	KindTimeout

	// KindNetwork means a transport, DNS, or connection failure.
	KindNetwork

	// KindMalformed means the response lacked the required envelope fields.
	KindMalformed

	// KindCancelled means the session was cancelled; never surfaced to the user.
	KindCancelled

	// KindUnexpected is the catch-all for everything else.
	KindUnexpected
)

// String returns a short name for the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network"
	case KindMalformed:
		return "malformed"
	case KindCancelled:
		return "cancelled"
	default:
		return "unexpected"
	}
}

// Error is a classified search failure wrapping its cause.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("search error (%s)", e.Kind)
	}
	return fmt.Sprintf("search error (%s): %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// errEmptyQuery builds the validation failure for blank queries.
func errEmptyQuery() *Error {
	return &Error{Kind: KindValidation, Err: errors.New("query is empty")}
}

// Classify maps an arbitrary failure onto the error taxonomy. Cancellation
// is detected first so a cancelled in-flight request is never reported as a
// network failure.
func Classify(err error) *Error {
	var se *Error
	if errors.As(err, &se) {
		return se
	}

	if errors.Is(err, context.Canceled) {
		return &Error{Kind: KindCancelled, Err: err}
	}
	if errors.Is(err, pixabay.ErrMalformedResponse) {
		return &Error{Kind: KindMalformed, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return &Error{Kind: KindTimeout, Err: err}
		}
		return &Error{Kind: KindNetwork, Err: err}
	}

	return &Error{Kind: KindUnexpected, Err: err}
}
