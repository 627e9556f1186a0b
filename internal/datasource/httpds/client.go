// Package httpds implements an HTTP data source: a GET with retry and
// exponential backoff whose response body is handed to the parser, so an
// export can be read straight from a URL instead of a local file.
package httpds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config configures the HTTP source. Zero values get defaults:
// Timeout 30s, InitialBackoff 200ms, MaxBackoff 5s. MaxRetries=0 means the
// initial attempt only.
type Config struct {
	URL            string
	Timeout        time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// Transport overrides the default RoundTripper, mainly for tests.
	Transport http.RoundTripper
}

// Source fetches a single URL.
type Source struct {
	url            string
	httpClient     *http.Client
	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration

	// wait is injectable to keep tests fast.
	wait func(ctx context.Context, d time.Duration) error
}

// New returns a Source for cfg.URL, applying defaults for zero values.
func New(cfg Config) *Source {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 200 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 5 * time.Second
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Source{
		url:            cfg.URL,
		httpClient:     &http.Client{Timeout: cfg.Timeout, Transport: transport},
		maxRetries:     cfg.MaxRetries,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		wait:           sleepWithContext,
	}
}

// URL returns the bound URL.
func (s *Source) URL() string { return s.url }

// Open GETs the URL and returns the body of the first 2xx response.
// Transport errors, 429 and 5xx are retried with backoff; any other status
// fails immediately.
func (s *Source) Open(ctx context.Context) (io.ReadCloser, error) {
	if s.url == "" {
		return nil, fmt.Errorf("httpds: url must not be empty")
	}

	attempts := s.maxRetries + 1
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if attempt > 0 {
			if err := s.wait(ctx, backoffDuration(s.initialBackoff, attempt-1, s.maxBackoff)); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
		if err != nil {
			return nil, fmt.Errorf("httpds: build request: %w", err)
		}
		resp, err := s.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("httpds: GET %s: %w", s.url, err)
			continue
		}
		switch {
		case resp.StatusCode >= 200 && resp.StatusCode <= 299:
			return resp.Body, nil
		case isRetryableStatus(resp.StatusCode):
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("httpds: retryable status %d from GET %s", resp.StatusCode, s.url)
		default:
			_ = resp.Body.Close()
			return nil, fmt.Errorf("httpds: GET %s: status %d", s.url, resp.StatusCode)
		}
	}
	return nil, fmt.Errorf("httpds: giving up after %d attempts: %w", attempts, lastErr)
}

// isRetryableStatus treats 429 and 5xx as transient.
func isRetryableStatus(code int) bool {
	if code == http.StatusTooManyRequests {
		return true
	}
	return code >= 500 && code <= 599
}

// backoffDuration returns initial * 2^retry, clamped to max.
func backoffDuration(initial time.Duration, retry int, max time.Duration) time.Duration {
	if retry <= 0 {
		return min(initial, max)
	}
	d := initial << retry
	if d <= 0 || d > max {
		return max
	}
	return d
}

// sleepWithContext waits for d or until ctx is done.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
