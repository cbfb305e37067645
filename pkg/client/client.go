// Package client is the Go SDK for the back-office REST API. Reads are served
// through a stale-while-revalidate cache keyed per resource and filter set;
// mutations invalidate the dependent keys so the next read refetches.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"backoffice/pkg/cache"

	"github.com/google/uuid"
)

const (
	defaultTimeout = 30 * time.Second

	// maxRetries bounds retry attempts after the initial request
	maxRetries = 2

	// slowStaleTime covers slow-moving resources: accounts, categories, dilars
	slowStaleTime = 5 * time.Minute
	// fastStaleTime covers trade-driven resources: exchanges, transactions,
	// reserves, dashboard
	fastStaleTime = 2 * time.Minute
)

// Client talks to the back-office API
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	cache      *cache.Store

	// newIdempotencyKey is swappable in tests
	newIdempotencyKey func() string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets the bearer token sent on every request
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithCache replaces the read cache. Pass a shared store when several
// clients should see each other's invalidations.
func WithCache(store *cache.Store) Option {
	return func(c *Client) { c.cache = store }
}

// New creates a client for the API at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:           strings.TrimRight(baseURL, "/"),
		httpClient:        &http.Client{Timeout: defaultTimeout},
		cache:             cache.NewStore(),
		newIdempotencyKey: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, e.g. after login
func (c *Client) SetToken(token string) {
	c.token = token
}

// buildQuery serializes only the non-empty filter values
func buildQuery(filters map[string]string) string {
	q := url.Values{}
	for k, v := range filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// do performs one API call with retries. Mutations (anything but GET) carry a
// client-generated Idempotency-Key header so a retried request cannot apply
// twice. 4xx responses are never retried; 5xx and transport errors are retried
// up to maxRetries times with linear backoff.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	idempotencyKey := ""
	if method != http.MethodGet {
		idempotencyKey = c.newIdempotencyKey()
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 250 * time.Millisecond):
			}
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
		if idempotencyKey != "" {
			req.Header.Set("Idempotency-Key", idempotencyKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = &APIError{Message: "Network error. Please check your connection.", cause: err}
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = &APIError{StatusCode: resp.StatusCode, Message: "Network error. Please check your connection.", cause: readErr}
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = normalizeError(resp.StatusCode, respBody)
			continue
		}

		if resp.StatusCode >= 400 {
			return normalizeError(resp.StatusCode, respBody)
		}

		if out == nil || len(respBody) == 0 {
			return nil
		}
		if raw, ok := out.(*[]byte); ok {
			*raw = respBody
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	return lastErr
}

// get runs a GET through the cache. A fresh entry skips the request entirely;
// a stale entry is returned while a background refetch refreshes it.
func (c *Client) get(ctx context.Context, key, path string, staleTime time.Duration, newValue func() interface{}) (interface{}, error) {
	return c.cache.Fetch(ctx, key, staleTime, func(ctx context.Context) (interface{}, error) {
		out := newValue()
		if err := c.do(ctx, http.MethodGet, path, nil, out); err != nil {
			return nil, err
		}
		return out, nil
	})
}
