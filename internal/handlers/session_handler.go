package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/examdesk/admin-console/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SessionService is the interface that wraps methods for the administrator session.
type SessionService interface {
	// Login signs in on the backend with administrator credentials.
	//
	// "req" holds the email and password.
	// On success the token is stored and the catalog is loaded.
	// Returns the session description or an error if the backend rejects the credentials.
	Login(ctx context.Context, req *models.LoginRequest) (*models.SessionInfo, error)
	// SetToken stores a bearer token obtained elsewhere.
	//
	// Expired tokens are rejected and never stored.
	SetToken(ctx context.Context, token string) (*models.SessionInfo, error)
	// Logout forgets the stored token.
	Logout() error
	// Info describes the current session.
	Info() models.SessionInfo
}

// SessionHandler handles HTTP requests for the administrator session
type SessionHandler struct {
	BaseHandler
	service SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(svc SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all session handler routes
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/session", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Delete("/", h.Logout)
		r.Post("/login", h.Login)
		r.Put("/token", h.SetToken)
	})
}

// Login handles POST /api/v1/session/login
// @Summary Sign in
// @Description Sign in on the backend and store the issued token
// @Tags session
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Administrator credentials"
// @Success 200 {object} models.SessionInfo
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /session/login [post]
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	info, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.Logger.Warn("sign in failed", zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, info)
}

// SetToken handles PUT /api/v1/session/token
// @Summary Store a bearer token
// @Description Store a bearer token obtained outside the console
// @Tags session
// @Accept json
// @Produce json
// @Param request body models.SetTokenRequest true "Bearer token"
// @Success 200 {object} models.SessionInfo
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Token is expired"
// @Router /session/token [put]
func (h *SessionHandler) SetToken(w http.ResponseWriter, r *http.Request) {
	var req models.SetTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Token == "" {
		h.RespondError(w, http.StatusBadRequest, "token is required")
		return
	}

	info, err := h.service.SetToken(r.Context(), req.Token)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, info)
}

// Logout handles DELETE /api/v1/session
// @Summary Sign out
// @Tags session
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session [delete]
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(); err != nil {
		h.Logger.Error("failed to sign out", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to sign out")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetSession handles GET /api/v1/session
// @Summary Describe the session
// @Tags session
// @Produce json
// @Success 200 {object} models.SessionInfo
// @Router /session [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.Info())
}
