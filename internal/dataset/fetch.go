package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultURL is the public tracker export loaded when no file is supplied
const DefaultURL = "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/week%202%20-%20Problem_5_-_Follow-Up_Vortex_Tracker-VPtyeFWfeKfjS2RATvBRR879WGfEKC.csv"

// DefaultFetchTimeout bounds a single default-dataset download
const DefaultFetchTimeout = 30 * time.Second

// Fetcher downloads raw CSV text
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches over plain HTTP GET. It never retries.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// Compile-time verification that *HTTPFetcher implements Fetcher
var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a fetcher with the given timeout (DefaultFetchTimeout when <= 0)
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: "circleback",
	}
}

// Fetch GETs url and returns the body. Transport errors and non-2xx
// responses are reported as ErrFetchFailed.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %s returned status %d", ErrFetchFailed, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrFetchFailed, err)
	}

	return string(body), nil
}
