package search

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/Magneticdud/pixaview/internal/pixabay"
)

// timeoutError mimics a transport timeout.
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{
			name:     "context cancelled",
			err:      context.Canceled,
			expected: KindCancelled,
		},
		{
			name:     "wrapped context cancelled",
			err:      &url.Error{Op: "Get", URL: "https://pixabay.com", Err: context.Canceled},
			expected: KindCancelled,
		},
		{
			name:     "deadline exceeded",
			err:      context.DeadlineExceeded,
			expected: KindTimeout,
		},
		{
			name:     "transport timeout",
			err:      &url.Error{Op: "Get", URL: "https://pixabay.com", Err: timeoutError{}},
			expected: KindTimeout,
		},
		{
			name:     "connection failure",
			err:      &net.OpError{Op: "dial", Err: errors.New("connection refused")},
			expected: KindNetwork,
		},
		{
			name:     "malformed envelope",
			err:      fmt.Errorf("%w: missing hits or totalHits", pixabay.ErrMalformedResponse),
			expected: KindMalformed,
		},
		{
			name:     "anything else",
			err:      errors.New("surprise"),
			expected: KindUnexpected,
		},
	}

	for _, test := range tests {
		classified := Classify(test.err)
		if classified.Kind != test.expected {
			t.Errorf("%s: Classify() = %s, expected %s", test.name, classified.Kind, test.expected)
		}
		if !errors.Is(classified, test.err) && classified.Err == nil {
			t.Errorf("%s: classified error lost its cause", test.name)
		}
	}
}

func TestClassifyPassthrough(t *testing.T) {
	original := &Error{Kind: KindValidation, Err: errors.New("query is empty")}
	classified := Classify(fmt.Errorf("wrapped: %w", original))

	if classified != original {
		t.Errorf("Expected already-classified error to pass through, got %+v", classified)
	}
}
