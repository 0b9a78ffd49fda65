package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rgplazas/TaskMaster/internal/domain"
)

// StreamClient fetches seed records with an event-driven transport: the
// response body is decoded incrementally and each record is delivered to a
// callback as it arrives, followed by exactly one completion or error
// event. Observable results match Client.
type StreamClient struct {
	httpClient *http.Client
	baseURL    string
}

// Events receives the streaming callbacks. OnRecord fires once per decoded
// record; afterwards exactly one of OnDone or OnError fires. Nil callbacks
// are skipped.
type Events struct {
	OnRecord func(domain.SeedRecord)
	OnDone   func()
	OnError  func(error)
}

// NewStreamClient creates a new StreamClient for the given endpoint.
// If httpClient is nil, a default client with a timeout is used.
func NewStreamClient(baseURL string, httpClient *http.Client) *StreamClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &StreamClient{baseURL: baseURL, httpClient: httpClient}
}

// Start begins the transfer and drives the callbacks on the calling
// goroutine. Callers wanting concurrency run it in their own goroutine.
func (c *StreamClient) Start(ctx context.Context, limit int, ev Events) {
	if err := c.stream(ctx, limit, ev); err != nil {
		if ev.OnError != nil {
			ev.OnError(err)
		}
		return
	}
	if ev.OnDone != nil {
		ev.OnDone()
	}
}

func (c *StreamClient) stream(ctx context.Context, limit int, ev Events) error {
	resp, err := get(ctx, c.httpClient, c.baseURL, limit)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	dec := json.NewDecoder(resp.Body)

	// Opening bracket of the JSON array.
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("decode response: expected array, got %v", tok)
	}

	delivered := 0
	for dec.More() {
		if limit >= 0 && delivered >= limit {
			break
		}
		var record domain.SeedRecord
		if err := dec.Decode(&record); err != nil {
			return fmt.Errorf("decode record: %w", err)
		}
		if ev.OnRecord != nil {
			ev.OnRecord(record)
		}
		delivered++
	}
	return nil
}

// Fetch adapts the event-driven transfer onto the SeedFetcher capability
// by collecting records until the completion event.
func (c *StreamClient) Fetch(ctx context.Context, limit int) ([]domain.SeedRecord, error) {
	var (
		records []domain.SeedRecord
		failure error
	)
	done := make(chan struct{})

	go c.Start(ctx, limit, Events{
		OnRecord: func(r domain.SeedRecord) { records = append(records, r) },
		OnDone:   func() { close(done) },
		OnError: func(err error) {
			failure = err
			close(done)
		},
	})

	select {
	case <-done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if failure != nil {
		return nil, failure
	}
	return records, nil
}

// Ensure StreamClient implements SeedFetcher.
var _ domain.SeedFetcher = (*StreamClient)(nil)
