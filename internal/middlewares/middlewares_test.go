package middlewares

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type stubSessionStore struct {
	token string
}

func (s *stubSessionStore) Token() string { return s.token }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		incomingID string
		keepsID    bool
	}{
		{name: "generates id", incomingID: ""},
		{name: "keeps incoming id", incomingID: "req-123", keepsID: true},
		{name: "keeps uuid", incomingID: "0b7c2f6e-3a1d-4c55-9d1e-7f0a2b9c8d41", keepsID: true},
		{name: "replaces id with spaces", incomingID: "req 123"},
		{name: "replaces id with control chars", incomingID: "req\x01"},
		{name: "replaces overlong id", incomingID: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = GetRequestID(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incomingID != "" {
				req.Header.Set("X-Request-ID", tt.incomingID)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.NotEmpty(t, seen)
			assert.LessOrEqual(t, len(seen), maxRequestIDLength)
			assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
			if tt.keepsID {
				assert.Equal(t, tt.incomingID, seen)
			} else {
				assert.NotEqual(t, tt.incomingID, seen)
			}
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := RecoveryMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		origin         string
		method         string
		expectedOrigin string
		expectedStatus int
	}{
		{name: "wildcard", allowed: []string{"*"}, origin: "http://ui.test", method: http.MethodGet, expectedOrigin: "*", expectedStatus: http.StatusOK},
		{name: "listed origin", allowed: []string{"http://ui.test"}, origin: "http://UI.test", method: http.MethodGet, expectedOrigin: "http://UI.test", expectedStatus: http.StatusOK},
		{name: "unlisted origin", allowed: []string{"http://ui.test"}, origin: "http://evil.test", method: http.MethodGet, expectedOrigin: "", expectedStatus: http.StatusOK},
		{name: "preflight", allowed: []string{"*"}, origin: "http://ui.test", method: http.MethodOptions, expectedOrigin: "*", expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()

			CORSMiddleware(tt.allowed)(okHandler()).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestBodyLimitMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		size           int
		expectedStatus int
	}{
		{name: "json under limit", contentType: "application/json", size: 10, expectedStatus: http.StatusOK},
		{name: "json over limit", contentType: "application/json", size: 20, expectedStatus: http.StatusRequestEntityTooLarge},
		{name: "upload over json limit", contentType: "multipart/form-data; boundary=xyz", size: 50, expectedStatus: http.StatusOK},
		{name: "upload over upload limit", contentType: "multipart/form-data; boundary=xyz", size: 120, expectedStatus: http.StatusRequestEntityTooLarge},
		{name: "missing content type", contentType: "", size: 20, expectedStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", tt.size)))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			BodyLimitMiddleware(16, 100)(okHandler()).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBodyLimitMiddleware_ChunkedBodyIsCapped(t *testing.T) {
	var readErr error
	handler := BodyLimitMiddleware(16, 100)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 40)))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}

func TestSessionRequiredMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{name: "no session", token: "", expectedStatus: http.StatusUnauthorized},
		{name: "session stored", token: "abc", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			SessionRequiredMiddleware(&stubSessionStore{token: tt.token})(okHandler()).
				ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestLoggerMiddlewareKeepsStatus(t *testing.T) {
	handler := LoggerMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		status   int
		expected zapcore.Level
	}{
		{status: http.StatusOK, expected: zapcore.InfoLevel},
		{status: http.StatusAccepted, expected: zapcore.InfoLevel},
		{status: http.StatusNotFound, expected: zapcore.WarnLevel},
		{status: http.StatusGone, expected: zapcore.WarnLevel},
		{status: http.StatusBadGateway, expected: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, levelFor(tt.status))
		})
	}
}
