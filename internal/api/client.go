// Package api is the portal backend boundary: quiz catalog, question
// sets, progress reports, and the list endpoints behind the browse
// screens. Transport failures surface as typed errors; nothing in
// here ever reaches into the quiz engine's state.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the portal API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a Client for the given base URL. A zero timeout falls
// back to 15s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken attaches a bearer token to subsequent requests. The token
// is opaque to the client; the backend validates it.
func (c *Client) SetToken(token string) {
	c.token = token
}

// envelope is the backend's response wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// getData fetches path and returns the "data" member of the response
// envelope. GETs are idempotent, so one transient failure (network
// error or 5xx) earns a single retry.
func (c *Client) getData(ctx context.Context, path string) (json.RawMessage, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(500 * time.Millisecond):
			}
		}

		data, retryable, err := c.getOnce(ctx, path)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}
	return nil, lastErr
}

func (c *Client) getOnce(ctx context.Context, path string) (json.RawMessage, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, false, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode >= 500
		return nil, retryable, fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("GET %s: read body: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false, fmt.Errorf("GET %s: decode envelope: %w", path, err)
	}
	if env.Data == nil {
		// Some endpoints reply without the wrapper.
		return body, false, nil
	}
	return env.Data, false, nil
}

// postJSON sends body as JSON to path. Never retried: result posts
// are not idempotent and have no retry policy.
func (c *Client) postJSON(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("POST %s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
