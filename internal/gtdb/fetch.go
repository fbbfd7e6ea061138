// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gtdb

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

// Fetcher issues HTTPS GET requests against the API. It holds two clients
// built once at construction: a verifying one and one that skips peer
// certificate verification. The insecure flag on Fetch selects between
// them per call, so certificate handling never becomes process-wide state.
type Fetcher struct {
	cfg            types.ClientConfig
	client         *http.Client
	insecureClient *http.Client
}

// NewFetcher builds a Fetcher from the client configuration.
func NewFetcher(cfg types.ClientConfig) *Fetcher {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	return &Fetcher{
		cfg:            cfg,
		client:         &http.Client{Timeout: cfg.Timeout},
		insecureClient: &http.Client{Timeout: cfg.Timeout, Transport: transport},
	}
}

// Fetch performs a GET and returns the raw response body. Non-2xx statuses
// are surfaced as *TransportError, never handed to the decoder. Timeouts,
// HTTP 429, and 5xx are retried up to cfg.MaxRetries times with a fixed
// backoff; other failures return immediately.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, insecure bool) ([]byte, error) {
	client := f.client
	if insecure {
		client = f.insecureClient
	}

	var lastErr error
	for attempt := 0; attempt <= f.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(f.cfg.RetryDelay):
			}
		}

		body, err := f.fetchOnce(ctx, client, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable(err) {
			return nil, err
		}
	}
	return nil, lastErr
}

func (f *Fetcher) fetchOnce(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{Kind: TransportConnectionFailed, URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		kind := TransportConnectionFailed
		if isTimeout(err) {
			kind = TransportTimeout
		}
		return nil, &TransportError{Kind: kind, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Kind: TransportConnectionFailed, URL: rawURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			Kind:       TransportHTTP,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Body:       truncateBody(body),
		}
	}
	return body, nil
}

// retryable reports whether err is transient: a timeout, HTTP 429, or 5xx.
func retryable(err error) bool {
	var te *TransportError
	if !errors.As(err, &te) {
		return false
	}
	switch te.Kind {
	case TransportTimeout:
		return true
	case TransportHTTP:
		return te.StatusCode == http.StatusTooManyRequests || te.StatusCode >= 500
	default:
		return false
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// truncateBody keeps error bodies short enough for an error row.
func truncateBody(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
