package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxBioPageBytes = 2 << 20 // 2 MiB cap on fetched pages

// BioFetcher fetches a public profile page and tests for a marker.
// Like DNS, a fetch fault is a soft outcome: the caller treats it as
// "marker not observable yet", never as a hard error.
type BioFetcher interface {
	ContainsMarker(ctx context.Context, profileURL, marker string) (bool, error)
}

// HTTPBioFetcher fetches bio pages over plain HTTP GET
type HTTPBioFetcher struct {
	client *http.Client
}

// NewHTTPBioFetcher creates a bio fetcher with a bounded timeout
func NewHTTPBioFetcher(timeout time.Duration) *HTTPBioFetcher {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &HTTPBioFetcher{client: &http.Client{Timeout: timeout}}
}

// ContainsMarker reports whether the page at profileURL contains the
// exact marker string.
func (f *HTTPBioFetcher) ContainsMarker(ctx context.Context, profileURL, marker string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", "aeobro-verify/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("bio page fetch: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBioPageBytes))
	if err != nil {
		return false, err
	}

	return strings.Contains(string(body), marker), nil
}
