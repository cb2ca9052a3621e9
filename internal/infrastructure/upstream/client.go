// Package upstream wraps the dealership backend REST API. The base Client
// owns transport concerns (bearer auth, error mapping, metrics); the
// role-scoped clients built on top of it stay one-liners.
package upstream

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

	"github.com/rs/zerolog"

	"github.com/dealerhub/dealer-portal/internal/api/metrics"
	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

const defaultRequestTimeout = 15 * time.Second

// Client is the shared HTTP plumbing for all backend calls.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a Client for the given backend base URL. If timeout <= 0,
// defaultRequestTimeout is applied so a hung backend cannot hang the portal.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *Client) Get(ctx context.Context, token, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, token, path, query, nil)
}

func (c *Client) Post(ctx context.Context, token, path string, body []byte) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, token, path, nil, body)
}

func (c *Client) Put(ctx context.Context, token, path string, body []byte) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, token, path, nil, body)
}

func (c *Client) Patch(ctx context.Context, token, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, token, path, query, nil)
}

func (c *Client) Delete(ctx context.Context, token, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, token, path, nil, nil)
}

// Ping checks backend reachability for the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

func (c *Client) do(ctx context.Context, method, token, path string, query url.Values, body []byte) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(resource(path)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("transport").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("transport").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return payload, nil
	}

	// A rejected token on an authenticated call means the session is stale;
	// the route guard clears it when this error surfaces.
	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		metrics.UpstreamErrorsTotal.WithLabelValues("token_rejected").Inc()
		return nil, domain.ErrTokenRejected
	}

	metrics.UpstreamErrorsTotal.WithLabelValues("status").Inc()
	return nil, &domain.UpstreamError{Status: resp.StatusCode, Message: errorMessage(payload)}
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// errorMessage extracts the backend-provided reason: body.message first,
// then body.error. Returns "" when the body carries neither.
func errorMessage(payload []byte) string {
	var eb errorBody
	if err := json.Unmarshal(payload, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.Error
}

// resource reduces a path to its first segment for metric labels.
func resource(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i > 0 {
		return path[:i]
	}
	return path
}
