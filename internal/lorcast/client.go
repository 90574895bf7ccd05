package lorcast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.lorcast.com/v0"
	rateLimitDelay = 100 * time.Millisecond
	requestTimeout = 30 * time.Second
	maxRetries     = 3
	initialBackoff = 1 * time.Second
)

// Client is a rate-limited catalog API client.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	userAgent   string
}

// NewClient creates a client against the public catalog API.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		// 1 request per 100ms = 10 req/sec
		rateLimiter: rate.NewLimiter(rate.Every(rateLimitDelay), 1),
		userAgent:   "inkforge/1.0",
	}
}

// NewClientWithBaseURL creates a client against a specific endpoint.
// Tests point this at an httptest server.
func NewClientWithBaseURL(base string) *Client {
	c := NewClient()
	c.baseURL = base
	return c
}

// Sets retrieves the list of released card sets.
func (c *Client) Sets(ctx context.Context) ([]Set, error) {
	var result struct {
		Results []Set `json:"results"`
	}
	if err := c.doRequest(ctx, c.baseURL+"/sets", &result); err != nil {
		return nil, fmt.Errorf("fetch sets: %w", err)
	}
	return result.Results, nil
}

// CardsInSet retrieves every card printing in one set.
func (c *Client) CardsInSet(ctx context.Context, code string) ([]APICard, error) {
	var cards []APICard
	url := fmt.Sprintf("%s/sets/%s/cards", c.baseURL, code)
	if err := c.doRequest(ctx, url, &cards); err != nil {
		return nil, fmt.Errorf("fetch cards for set %s: %w", code, err)
	}
	return cards, nil
}

func (c *Client) doRequest(ctx context.Context, url string, out any) error {
	backoff := initialBackoff
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
		} else {
			body, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = readErr
			case resp.StatusCode == http.StatusOK:
				return json.Unmarshal(body, out)
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				lastErr = fmt.Errorf("status %d from %s", resp.StatusCode, url)
			default:
				return fmt.Errorf("status %d from %s", resp.StatusCode, url)
			}
		}

		if attempt < maxRetries {
			select {
			case <-time.After(backoff):
				backoff *= 2
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return lastErr
}
