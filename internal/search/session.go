package search

import (
	"context"

	"github.com/google/uuid"
)

// Session is one search attempt: a query, a target page, and a cancellable
// context. Sessions carry a monotonically increasing generation so stale
// completions from a superseded session can be discarded.
type Session struct {
	ID         string
	Generation uint64
	Query      string
	Page       int

	ctx    context.Context
	cancel context.CancelFunc
}

func newSession(generation uint64, query string, page int) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		ID:         "search-" + uuid.NewString(),
		Generation: generation,
		Query:      query,
		Page:       page,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Context returns the session context; it is cancelled when the session is
// stopped or superseded.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Cancelled reports whether the session has been stopped or superseded.
// This is the cancellation flag consulted at every checkpoint.
func (s *Session) Cancelled() bool {
	return s.ctx.Err() != nil
}
