package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"dora-styles/internal/logger"
)

// DefaultTimeout bounds a single GET. Zero disables the limit.
const DefaultTimeout = 30 * time.Second

// Fetcher returns the full body of a URL as text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// StatusError is returned when the server answers with anything other than 200.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: received status code %d", e.URL, e.StatusCode)
}

// HTTPFetcher implements Fetcher with a plain http.Client.
type HTTPFetcher struct {
	Client *http.Client
}

// New returns an HTTPFetcher whose client gives up after timeout.
func New(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: timeout}}
}

// Fetch performs one GET and returns the body when the status is 200.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	logger.Debug("GET %s\n", url)
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body of %s: %w", url, err)
	}
	logger.Debug("Fetched %d bytes from %s\n", len(body), url)
	return string(body), nil
}
