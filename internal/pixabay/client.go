package pixabay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Magneticdud/pixaview/internal/model"
)

// API constants
const (
	DefaultBaseURL = "https://pixabay.com/api/"
	DefaultTimeout = 15 * time.Second

	imageType = "photo"
)

// ErrMalformedResponse is returned when the response body is not the
// expected envelope carrying both hits and totalHits.
var ErrMalformedResponse = errors.New("malformed API response")

// Client calls the Pixabay search API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new API client with the default endpoint and timeout
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// envelope is the top-level JSON object returned by the search API. Pointer
// fields distinguish a missing field from an empty one.
type envelope struct {
	Hits      *[]model.ImageRecord `json:"hits"`
	TotalHits *int                 `json:"totalHits"`
}

// Search performs one paginated search request. The query is sent raw apart
// from URL encoding; page and perPage are passed through verbatim. Transport
// errors are returned as-is for classification by the caller.
func (c *Client) Search(ctx context.Context, query string, page, perPage int) (*model.SearchResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("image_type", imageType)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if env.Hits == nil || env.TotalHits == nil {
		return nil, fmt.Errorf("%w: missing hits or totalHits", ErrMalformedResponse)
	}

	return &model.SearchResult{
		Items:     *env.Hits,
		TotalHits: *env.TotalHits,
	}, nil
}
