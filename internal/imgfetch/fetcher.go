package imgfetch

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	// Pixabay webformat images are JPEG; PNG and GIF are registered for safety.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

// Thumbnail bounding box. Images are scaled so neither dimension exceeds the
// bound, preserving aspect ratio; smaller images are never upscaled.
const (
	MaxThumbWidth  = 300
	MaxThumbHeight = 200
)

// DefaultTimeout bounds a single image download
const DefaultTimeout = 10 * time.Second

// Fetcher downloads and decodes thumbnail images
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a new image fetcher with the default timeout
func NewFetcher() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Fetch retrieves the image at rawURL and returns it downscaled to fit the
// thumbnail bounding box.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", rawURL, err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", rawURL, resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", rawURL, err)
	}

	return resize.Thumbnail(MaxThumbWidth, MaxThumbHeight, img, resize.Lanczos3), nil
}
