package reconciler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/okian/courtside/internal/domain/model"
)

// Source yields one payload per poll tick.
type Source interface {
	Fetch(ctx context.Context) (model.Payload, error)
}

// HTTPSource polls an aggregator data endpoint.
type HTTPSource struct {
	url  string
	http *http.Client
}

// NewHTTPSource creates a source for the given data endpoint URL.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	return &HTTPSource{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch performs one poll.
func (s *HTTPSource) Fetch(ctx context.Context) (model.Payload, error) {
	var payload model.Payload

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return payload, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.http.Do(req)
	if err != nil {
		return payload, fmt.Errorf("GET %s: %w", s.url, err)
	}
	defer resp.Body.Close() //nolint:errcheck // body close failure is not actionable

	if resp.StatusCode != http.StatusOK {
		return payload, fmt.Errorf("GET %s: HTTP %d", s.url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return payload, fmt.Errorf("read body: %w", err)
	}
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return payload, fmt.Errorf("decode payload: %w", err)
	}
	return payload, nil
}

// FetchFunc adapts a function to the Source interface.
type FetchFunc func(ctx context.Context) (model.Payload, error)

// Fetch calls f.
func (f FetchFunc) Fetch(ctx context.Context) (model.Payload, error) {
	return f(ctx)
}
