package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/ideatrack/internal/common"
	"github.com/dmitrijs2005/ideatrack/internal/logging"
)

// DefaultRetryWait is the fallback delay before re-issuing a rate-limited
// request when the server does not suggest one.
const DefaultRetryWait = 2 * time.Second

// TokenSource supplies the current bearer token. An empty string means no
// token is available; the request then proceeds without an Authorization
// header and the server is responsible for rejecting it.
type TokenSource interface {
	Token() string
}

// Client is the HTTP client for the ideatrack backend.
type Client struct {
	baseURL   string
	http      *http.Client
	tokens    TokenSource
	log       logging.Logger
	retryWait time.Duration

	// onAuthFailure is the authentication-invalidated signal. The client
	// never touches persisted credentials itself; the session store
	// registers a handler and owns the cleanup.
	onAuthFailure func(ctx context.Context)
}

// NewClient constructs a Client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: timeout},
		tokens:    tokens,
		log:       log,
		retryWait: DefaultRetryWait,
	}
}

// SetRetryWait overrides the fallback rate-limit delay.
func (c *Client) SetRetryWait(d time.Duration) {
	if d > 0 {
		c.retryWait = d
	}
}

// OnAuthenticationInvalidated registers the handler invoked when the server
// answers 401. Must be called during wiring, before requests are issued.
func (c *Client) OnAuthenticationInvalidated(fn func(ctx context.Context)) {
	c.onAuthFailure = fn
}

// do issues one JSON request and decodes the response into out (when out is
// non-nil). A 429 response is retried exactly once after the server-suggested
// delay; everything else resolves on the first attempt.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	requestID := uuid.NewString()

	retryAfter := c.retryWait
	backoff := retry.WithMaxRetries(1, retry.BackoffFunc(func() (time.Duration, bool) {
		return retryAfter, false
	}))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set(common.RequestIDHeaderName, requestID)
		if c.tokens != nil {
			if token := c.tokens.Token(); token != "" {
				req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
			}
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			retryAfter = retryDelay(resp, c.retryWait)
			c.log.Warn(ctx, "rate limited", "method", method, "path", path, "wait", retryAfter)
			return retry.RetryableError(fmt.Errorf("%w: %s %s", common.ErrRateLimited, method, path))

		case resp.StatusCode == http.StatusUnauthorized:
			if c.onAuthFailure != nil {
				c.onAuthFailure(ctx)
			}
			if msg := serverMessage(data); msg != "" {
				return fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
			}
			return common.ErrUnauthorized

		case resp.StatusCode >= 400:
			return &Error{StatusCode: resp.StatusCode, Message: serverMessage(data)}
		}

		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	})
}

// retryDelay reads the Retry-After header (whole seconds), falling back to
// the configured default when absent or malformed.
func retryDelay(resp *http.Response, fallback time.Duration) time.Duration {
	raw := resp.Header.Get(common.RetryAfterHeaderName)
	if raw == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

// serverMessage extracts the "message" field from an error body, if any.
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}
