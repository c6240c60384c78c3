package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fragmede/eventengine/internal/logger"
	"github.com/fragmede/eventengine/internal/render"
)

const (
	userAgent     = "eventengine/1.0"
	maxBodyBytes  = 1 << 20
	requestIDName = "X-Request-ID"
)

// Client is the EventEngine user API client.
type Client struct {
	http        *http.Client
	loginURL    string
	registerURL string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets a per-request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// NewClient creates a client for the given absolute endpoint URLs.
func NewClient(loginURL, registerURL string, opts ...Option) *Client {
	c := &Client{
		http:        &http.Client{},
		loginURL:    loginURL,
		registerURL: registerURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login posts credentials and returns the raw success payload.
func (c *Client) Login(ctx context.Context, creds Credentials) (json.RawMessage, error) {
	body, err := c.post(ctx, c.loginURL, creds)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// Register posts a registration request. A 2xx body that is not a JSON
// object is tolerated and yields an empty RegisterResponse.
func (c *Client) Register(ctx context.Context, req RegistrationRequest) (*RegisterResponse, error) {
	body, err := c.post(ctx, c.registerURL, req)
	if err != nil {
		return nil, err
	}

	var resp RegisterResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logger.Log.Debugw("register response is not a JSON object", "err", err)
		return &RegisterResponse{}, nil
	}
	return &resp, nil
}

// post sends payload as JSON and returns the response body of a 2xx answer.
// Non-2xx answers come back as *HTTPError.
func (c *Client) post(ctx context.Context, url string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	reqID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(requestIDName, reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Warnw("request failed",
			"request_id", reqID,
			"url", url,
			"duration", time.Since(start),
			"err", err,
		)
		return nil, fmt.Errorf("posting %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}

	summary := render.BodySummary(resp.Header.Get("Content-Type"), body, render.DefaultSummaryLimit)
	logger.Log.Debugw("response",
		"request_id", reqID,
		"url", url,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"body", summary,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url, Body: body}
	}
	return body, nil
}
