package model

import (
	"image"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title derivation constants
const (
	TitleMaxTokens = 5
	TitleEllipsis  = "..."
	UntitledTitle  = "Untitled"
)

// ImageRecord is one search hit as returned by the Pixabay API.
// Records are immutable once decoded.
type ImageRecord struct {
	ID           int    `json:"id"`
	Tags         string `json:"tags"`
	User         string `json:"user"`
	Likes        int    `json:"likes"`
	ThumbnailURL string `json:"webformatURL"`
}

// Title returns a short display title derived from the tags field: the first
// TitleMaxTokens whitespace-separated tokens, title-cased, with an ellipsis
// appended when tokens were dropped.
func (r ImageRecord) Title() string {
	tokens := strings.Fields(r.Tags)
	if len(tokens) == 0 {
		return UntitledTitle
	}

	truncated := false
	if len(tokens) > TitleMaxTokens {
		tokens = tokens[:TitleMaxTokens]
		truncated = true
	}

	title := cases.Title(language.Und).String(strings.Join(tokens, " "))
	if truncated {
		title += TitleEllipsis
	}
	return title
}

// SearchResult is the decoded search envelope. TotalHits is authoritative
// for page-count computation and is independent of len(Items), which is
// capped by the per-page size.
type SearchResult struct {
	Items     []ImageRecord
	TotalHits int
}

// Thumbnail pairs a record with its decoded, display-ready bitmap. Ownership
// transfers exactly once from the worker goroutine to the UI.
type Thumbnail struct {
	Record ImageRecord
	Image  image.Image
}

// PageResult is what one completed search session delivers to the UI.
type PageResult struct {
	Query      string
	Page       int
	TotalPages int
	TotalHits  int
	Items      []Thumbnail
}
