package search

import (
	"context"
	"image"

	"github.com/Magneticdud/pixaview/internal/model"
)

// APIClient performs one paginated search request against the image API.
type APIClient interface {
	Search(ctx context.Context, query string, page, perPage int) (*model.SearchResult, error)
}

// ImageFetcher retrieves and decodes a single thumbnail.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// Searcher defines the interface for the search service.
type Searcher interface {
	SetCallbacks(
		onStatus func(Progress),
		onResult func(*model.PageResult),
		onError func(*Error),
		onFinished func(),
	)
	Start(query string) (*Session, error)
	RequestPage(query string, page int) (*Session, error)
	Cancel()
	State() model.PaginationState

	// SetPerPage sets the number of results requested per page
	SetPerPage(perPage int)
}
