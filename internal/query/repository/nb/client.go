package nb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nb-query/internal/query"
)

// Client is the HTTP wrapper for the nb web server search page.
type Client struct {
	baseURL    string
	searchPath string
	httpClient *http.Client
}

// NewClient creates a new nb HTTP client. A zero timeout means no timeout.
func NewClient(baseURL, searchPath string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		searchPath: searchPath,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SearchURL returns the search page URL for q, relative to the server root.
func (c *Client) SearchURL(q string) string {
	return query.SearchURL(c.searchPath, q)
}

// Search fetches the search results page for q via GET {searchPath}?--query=.
func (c *Client) Search(ctx context.Context, q string) ([]byte, error) {
	u := c.baseURL + c.SearchURL(q)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	httpReq.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call nb search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("nb search error %d: %s", resp.StatusCode, string(raw))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nb search response: %w", err)
	}
	return body, nil
}

// Ping checks that the nb web server answers on its base URL.
func (c *Client) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("nb unreachable: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("nb unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
