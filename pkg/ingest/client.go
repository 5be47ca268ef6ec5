package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ipahub/ipahub-cli/pkg/models"
)

const defaultUserAgent = "ipahub-cli/1.0"

// Client is the HTTP client shared by the network ingestion paths.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient creates a client from the import settings. Zero values fall back
// to a 30 second timeout and the default user agent.
func NewClient(settings models.ImportSettings) *Client {
	timeout := time.Duration(settings.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	userAgent := settings.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Get fetches the URL and returns the response body. Any non-2xx status is
// an error carrying the status text.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s for %s", resp.Status, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}

	return data, nil
}
