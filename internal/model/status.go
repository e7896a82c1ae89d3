package model

// SearchStatus represents the status of a search session
type SearchStatus string

const (
	// StatusIdle means no search is in flight
	StatusIdle SearchStatus = "Idle"

	// StatusContacting means the API request is about to be issued
	StatusContacting SearchStatus = "Contacting"

	// StatusFetchingPage means the API request for a page is in flight
	StatusFetchingPage SearchStatus = "FetchingPage"

	// StatusLoadingImages means per-item thumbnails are being fetched
	StatusLoadingImages SearchStatus = "LoadingImages"

	// StatusDone means the search finished successfully
	StatusDone SearchStatus = "Done"

	// StatusStopped means the search was cancelled by the user
	StatusStopped SearchStatus = "Stopped"

	// StatusError means the search failed with an error
	StatusError SearchStatus = "Error"
)

// String returns the string representation of SearchStatus
func (ss SearchStatus) String() string {
	return string(ss)
}

// IsActive returns true if the status describes an in-flight search
func (ss SearchStatus) IsActive() bool {
	return ss == StatusContacting || ss == StatusFetchingPage || ss == StatusLoadingImages
}

// IsFinished returns true if the status describes a terminal outcome
// (done, stopped, or error)
func (ss SearchStatus) IsFinished() bool {
	return ss == StatusDone || ss == StatusStopped || ss == StatusError
}
