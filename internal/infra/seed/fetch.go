// Package seed provides clients for retrieving demo task records from a
// remote HTTP source. Two transports exist with identical observable
// behavior: Client performs a single request/response round-trip, while
// StreamClient decodes the response incrementally and delivers records
// through callbacks. Both satisfy domain.SeedFetcher.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rgplazas/TaskMaster/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Client fetches seed records in a single request/response round-trip.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Client for the given endpoint.
// If httpClient is nil, a default client with a timeout is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Fetch retrieves up to limit records from the endpoint.
func (c *Client) Fetch(ctx context.Context, limit int) ([]domain.SeedRecord, error) {
	resp, err := get(ctx, c.httpClient, c.baseURL, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var records []domain.SeedRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return clamp(records, limit), nil
}

// get issues the limited GET request and checks the response status.
func get(ctx context.Context, client *http.Client, baseURL string, limit int) (*http.Response, error) {
	reqURL, err := requestURL(baseURL, limit)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}
	return resp, nil
}

// requestURL appends the result-count limit parameter to the endpoint.
func requestURL(baseURL string, limit int) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("_limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// clamp enforces the limit even when the server returns more records.
func clamp(records []domain.SeedRecord, limit int) []domain.SeedRecord {
	if limit >= 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}

// Ensure Client implements SeedFetcher.
var _ domain.SeedFetcher = (*Client)(nil)
