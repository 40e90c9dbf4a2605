package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrSessionExpired is returned when the backend answers 401; the stored token is cleared
	ErrSessionExpired = errors.New("session expired")
	// ErrNotFound is matched by RequestErrors carrying a 404 status
	ErrNotFound = errors.New("not found")
)

// RequestError is a non-success HTTP answer of the backend
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	// Body is the raw response body text
	Body string
	// Message is the error carried by a JSON payload, or the body text
	Message string
}

// Error implements error
func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Unwrap lets errors.Is match ErrSessionExpired and ErrNotFound
func (e *RequestError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrSessionExpired
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

func newRequestError(method, path string, status int, body []byte) *RequestError {
	text := strings.TrimSpace(string(body))
	return &RequestError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Body:       text,
		Message:    errorMessage(status, body),
	}
}

// errorMessage extracts a "business" error message from a JSON payload
func errorMessage(status int, body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") {
		return text
	}
	return strings.ToLower(http.StatusText(status))
}

// AsRequestError returns the RequestError in err's chain, if any
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
