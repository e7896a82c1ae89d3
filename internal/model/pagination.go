package model

// PaginationState describes the currently displayed page. It is mutated only
// by the search service on a successful fetch; prev/next requests start a new
// search rather than mutating it in place.
type PaginationState struct {
	Query       string
	CurrentPage int
	TotalPages  int
}

// TotalPages returns max(1, ceil(totalHits/perPage)). A non-positive perPage
// yields 1 so a broken configuration never produces a zero page count.
func TotalPages(totalHits, perPage int) int {
	if perPage <= 0 || totalHits <= 0 {
		return 1
	}
	return (totalHits + perPage - 1) / perPage
}

// ClampPage clamps page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
