// Package client talks to the remote cinema backend over REST.  It is the
// only place that knows the backend's paths and its loosely-typed response
// shapes; everything it hands out is normalized into the model package's
// canonical types.  All calls take a context so that a request abandoned
// by the user cancels the backend call instead of mutating stale state.
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
)

// APIError carries the HTTP status and backend-provided message of a
// failed call.  Handlers translate it into a user-facing response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// Client is an HTTP client for the cinema backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client for the given base URL (e.g.
// "https://galaxycinema.example.com").  A trailing slash is stripped.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient is like New but lets tests substitute the transport.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	c := New(baseURL)
	if hc != nil {
		c.http = hc
	}
	return c
}

func (c *Client) get(ctx context.Context, token, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, token, path, query, nil)
}

func (c *Client) postJSON(ctx context.Context, token, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, token, path, nil, body)
}

// do performs a backend request and returns the raw response body.  Bodies
// of non-2xx responses are parsed for a "message" field so the error is as
// specific as the backend allows.
func (c *Client) do(ctx context.Context, method, token, path string, query url.Values, body any) ([]byte, error) {
	status, data, err := c.roundTrip(ctx, method, token, path, query, body)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &APIError{Status: status, Message: backendMessage(data)}
	}
	return data, nil
}

// Forward relays a request to the backend verbatim and returns the
// backend's status and body untouched.  The staff back-office endpoints
// use it so the backend stays the single authority over film, genre,
// projection and booking payload validation.
func (c *Client) Forward(ctx context.Context, method, token, path string, query url.Values, body json.RawMessage) (int, []byte, error) {
	var payload any
	if len(body) > 0 {
		payload = body
	}
	return c.roundTrip(ctx, method, token, path, query, payload)
}

func (c *Client) roundTrip(ctx context.Context, method, token, path string, query url.Values, body any) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		if raw, ok := body.(json.RawMessage); ok {
			reader = bytes.NewReader(raw)
		} else {
			buf, err := json.Marshal(body)
			if err != nil {
				return 0, nil, fmt.Errorf("encode request body: %w", err)
			}
			reader = bytes.NewReader(buf)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read backend response: %w", err)
	}
	return res.StatusCode, data, nil
}

// backendMessage pulls "message" (or "error") out of an error body; when
// the body is not JSON the first part of the raw text is returned.
func backendMessage(body []byte) string {
	var m struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &m); err == nil {
		if m.Message != "" {
			return m.Message
		}
		if m.Error != "" {
			return m.Error
		}
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200]
	}
	if s == "" {
		s = "no details"
	}
	return s
}
