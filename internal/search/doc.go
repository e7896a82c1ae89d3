package search

// Package search owns the cancellable, paginated search lifecycle. Each
// search runs as a session on its own goroutine; starting a new search
// supersedes the previous session, and callbacks are only delivered for the
// session that is still current and not cancelled.
