// Package apiclient is the HTTP client of the LMS REST backend
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/examdesk/admin-console/internal/middlewares"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// TokenSource provides the bearer token attached to backend requests
type TokenSource interface {
	// Token returns the current token or "" when there is none
	Token() string
	// Clear forgets the token after the backend rejected it
	Clear() error
}

// Client calls the LMS REST backend.
// Requests are never retried; every failure is returned to the caller.
type Client struct {
	http   *resty.Client
	tokens TokenSource
	logger *zap.Logger
}

// New creates a backend client
func New(baseURL string, timeout time.Duration, tokens TokenSource, logger *zap.Logger) *Client {
	c := &Client{
		tokens: tokens,
		logger: logger,
	}
	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0).
		OnBeforeRequest(c.authorize)
	return c
}

// authorize attaches the bearer token and forwards the request ID
func (c *Client) authorize(_ *resty.Client, r *resty.Request) error {
	if token := c.tokens.Token(); token != "" {
		r.SetAuthToken(token)
	}
	if requestID := middlewares.GetRequestID(r.Context()); requestID != "" {
		r.SetHeader("X-Request-ID", requestID)
	}
	return nil
}

// do executes a JSON request and decodes a successful answer into result (when not nil)
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body, result any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	return c.handle(resp, method, path, result)
}

// handle converts non-success answers into RequestErrors and decodes successful ones
func (c *Client) handle(resp *resty.Response, method, path string, result any) error {
	if resp.StatusCode() == http.StatusUnauthorized {
		if err := c.tokens.Clear(); err != nil {
			c.logger.Error("failed to clear expired session", zap.Error(err))
		}
		c.logger.Warn("backend rejected session token", zap.String("method", method), zap.String("path", path))
	}
	if !resp.IsSuccess() {
		return newRequestError(method, path, resp.StatusCode(), resp.Body())
	}
	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// createdID reads the identifier of a created entity.
// Backends answering with an empty body yield 0.
type createdID struct {
	ID int `json:"id"`
}

func (c *Client) create(ctx context.Context, path string, body any) (int, error) {
	var created createdID
	if err := c.do(ctx, http.MethodPost, path, nil, body, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}
