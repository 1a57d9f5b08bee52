package upstream

import (
	"net/http"
	"time"
)

// Option configures the feed client.
type Option func(*Client)

// WithBaseURL overrides the feed base URL.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.base = base
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient injects a custom HTTP client. Tests use this to point the
// client at an httptest server transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}
