package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/examdesk/admin-console/internal/apiclient"
	"github.com/examdesk/admin-console/internal/forms"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServiceError maps an error of the service layer to a status code and sends it.
// Backend answers keep their status and message; validation failures list the blocking fields.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error) {
	var fieldErrs forms.FieldErrors
	if errors.As(err, &fieldErrs) {
		h.RespondJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "form is incomplete",
			"fields": fieldErrs,
		})
		return
	}

	if reqErr, ok := apiclient.AsRequestError(err); ok {
		status := reqErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		h.RespondError(w, status, reqErr.Message)
		return
	}

	if errors.Is(err, apiclient.ErrSessionExpired) {
		h.RespondError(w, http.StatusUnauthorized, "session expired")
		return
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		h.Logger.Error("backend unreachable", zap.Error(err))
		h.RespondError(w, http.StatusBadGateway, "backend unavailable")
		return
	}

	errStatus := http.StatusBadRequest
	switch {
	case strings.Contains(err.Error(), "not found"):
		errStatus = http.StatusNotFound
	case strings.Contains(err.Error(), "confirmation expired"):
		errStatus = http.StatusGone
	case strings.Contains(err.Error(), "token is expired"):
		errStatus = http.StatusUnauthorized
	}
	h.RespondError(w, errStatus, err.Error())
}

// pathID parses a positive integer URL parameter
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter, returning 0 when absent or invalid
func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}
