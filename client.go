// Package nextrip is a client for the Metro Transit NexTrip real-time
// departure service. Each NexTrip endpoint is exposed as a typed method on
// Client; response fields are passed through verbatim from the service
// with no coercion, validation, or caching.
package nextrip

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public NexTrip service root.
const DefaultBaseURL = "http://svc.metrotransit.org/NexTrip"

// Client talks to the NexTrip service. Construct with NewClient. A Client
// is safe for concurrent use: its configuration is fixed at construction
// and every call is an independent request/response round trip. The
// service documents a 30 second minimum poll interval per endpoint; the
// client does not enforce it.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different service root, e.g. a mock
// server in tests. A trailing slash is ignored.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a NexTrip client pointed at DefaultBaseURL.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root the client was configured with.
func (c *Client) BaseURL() string { return c.baseURL }

// get performs a single GET against the service and decodes the JSON body
// into out. Every operation funnels through here so the upstream error
// mapping lives in exactly one place. There is no retry: one call, one
// request.
func (c *Client) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ServiceError{Message: err.Error(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ServiceError{Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The service reports failures as a plain-text or JSON body;
		// surface it verbatim when there is one.
		msg := string(body)
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d from %s", resp.StatusCode, req.URL)
		}
		return &ServiceError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ServiceError{StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}
	return nil
}
