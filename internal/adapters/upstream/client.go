// Package upstream fetches the raw live-score feed for a court.
//
// The feed schema is loosely typed and shifts between deployments, so the
// client decodes into a generic document and leaves interpretation to the
// normalizer.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/okian/courtside/internal/domain/feed"
	"github.com/okian/courtside/pkg/metrics"
)

// Default client configuration.
const (
	defaultBaseURL = "https://live.rankedin.com/api/v1"
	defaultTimeout = 6 * time.Second

	// maxFeedBytes caps how much of a feed response is read. Real payloads
	// are a few KB; anything near this limit is a misbehaving upstream.
	maxFeedBytes = 4 << 20
)

// Fetcher retrieves the raw feed document for a court.
type Fetcher interface {
	// Scoreboard fetches and decodes the live feed for the given court.
	Scoreboard(ctx context.Context, courtID string) (feed.Doc, error)
}

// Client is the HTTP implementation of Fetcher.
type Client struct {
	base    string
	timeout time.Duration
	http    *http.Client
}

// NewClient creates a feed client with configuration options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		base:    defaultBaseURL,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}

	return c
}

// Scoreboard fetches the live feed for a court and decodes it into a generic
// document. Non-2xx responses come back as a StatusError wrapping
// ErrUnavailable.
func (c *Client) Scoreboard(ctx context.Context, courtID string) (feed.Doc, error) {
	start := time.Now()

	endpoint := fmt.Sprintf("%s/court/%s/scoreboard", c.base, url.PathEscape(courtID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		metrics.RecordUpstreamRequest("error")
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest("error")
		return nil, fmt.Errorf("GET %s: %w: %w", endpoint, ErrUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck // body close failure is not actionable

	metrics.RecordUpstreamLatency(float64(time.Since(start).Milliseconds()))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordUpstreamRequest("bad_status")
		return nil, &StatusError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		metrics.RecordUpstreamRequest("error")
		return nil, fmt.Errorf("read body: %w: %w", ErrUnavailable, err)
	}

	var raw map[string]any
	if err := sonic.Unmarshal(body, &raw); err != nil {
		metrics.RecordUpstreamRequest("error")
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	metrics.RecordUpstreamRequest("ok")
	return feed.Doc(raw), nil
}
