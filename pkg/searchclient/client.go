// Package searchclient drives the search endpoint on behalf of a UI: it
// validates input, keeps exactly one request in flight, synchronizes the
// navigable URL and applies the client-side type filter without refetching.
package searchclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kcvvelewijt/clubsite-api/internal/services/search"
)

// Client is a thin HTTP client for the search endpoint
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a search client. A nil httpClient falls back to a default
// with a 30 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Search performs a search request. The context carries the cancellation
// signal used to supersede in-flight requests.
func (c *Client) Search(ctx context.Context, query string, filter search.TypeFilter) (*search.Response, error) {
	params := url.Values{}
	params.Set("q", query)
	if filter != search.FilterAll {
		params.Set("type", filter.Param())
	}

	endpoint := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("search API: %s", apiErr.Error)
		}
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var result search.Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}
