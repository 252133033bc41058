package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// Client handles communication with the content delivery API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	userAgent   string
}

// Config holds configuration for the content delivery client
type Config struct {
	BaseURL     string
	AccessToken string
	UserAgent   string
	Timeout     time.Duration
}

// NewClient creates a new content delivery API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://cms.kcvvelewijt.be"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "ClubSiteAPI/1.0"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		userAgent:   cfg.UserAgent,
	}
}

// FetchPage fetches one page of entries from a collection
func (c *Client) FetchPage(ctx context.Context, collection string, page, pageSize int) (*Page, error) {
	if collection == "" {
		return nil, fmt.Errorf("collection cannot be empty")
	}
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("pageSize", fmt.Sprintf("%d", pageSize))

	endpoint := fmt.Sprintf("%s/api/collections/%s/entries?%s", c.baseURL, collection, params.Encode())

	// Inherit the caller's deadline but not its values, so request-scoped
	// headers from middleware never leak to the upstream API.
	cleanCtx := context.Background()
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		cleanCtx, cancel = context.WithDeadline(cleanCtx, deadline)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(cleanCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().
			Int("status", resp.StatusCode).
			Str("collection", collection).
			Int("page", page).
			Msg("content delivery API returned non-OK status")
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var result Page
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}
