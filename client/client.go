// Package client calls the food ordering API from Go programs.
//
// Fetch mirrors how the mobile app talks to the API: a relative endpoint is
// joined to a fixed base URL, the JSON envelope is unwrapped, and non-2xx
// answers become errors. There is no retry; callers decide what to do.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// DefaultTimeout bounds a whole request when WithHTTPClient is not used.
const DefaultTimeout = 30 * time.Second

// APIError is a structured failure answered by the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// NetworkError means the server could not be reached or the response could
// not be read.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client is safe for concurrent use; its fields never change after New.
type Client struct {
	baseURL string
	http    *http.Client
	header  http.Header
}

type Option func(*Client)

// WithHTTPClient replaces the default client, whose only setting is
// DefaultTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken attaches the identity provider's opaque bearer token.
func WithToken(token string) Option {
	return WithHeader("Authorization", "Bearer "+token)
}

func WithHeader(key, value string) Option {
	return func(c *Client) { c.header.Set(key, value) }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		header:  http.Header{"Content-Type": []string{"application/json"}},
	}
	opts = append([]Option{WithHTTPClient(&http.Client{Timeout: DefaultTimeout})}, opts...)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestOptions overrides the GET default. Body is JSON encoded.
type RequestOptions struct {
	Method string
	Body   any
	Header http.Header
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

// Fetch issues one request and decodes the envelope's data into out, which
// may be nil.
func (c *Client) Fetch(ctx context.Context, endpoint string, opts *RequestOptions, out any) error {
	if opts == nil {
		opts = &RequestOptions{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		raw, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(endpoint, "/"), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for k, v := range c.header {
		req.Header[k] = append([]string(nil), v...)
	}
	for k, v := range opts.Header {
		req.Header[k] = append([]string(nil), v...)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode <= 299
	if ok && len(bytes.TrimSpace(raw)) == 0 {
		// 204 and friends carry no envelope
		return nil
	}

	var env envelope
	parseErr := json.Unmarshal(raw, &env)

	if !ok {
		msg := env.Error
		if parseErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if parseErr != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, parseErr)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
