package handlers

import (
	"context"
	"net/http"

	"github.com/examdesk/admin-console/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NotificationCenter hands out the pending notifications
type NotificationCenter interface {
	// Drain returns and removes every pending notification
	Drain() []models.Notification
}

// ActivityService is the interface that wraps reading the activity log.
type ActivityService interface {
	// GetActivity retrieves a page of the activity log, newest first.
	//
	// "kind" filters by entity kind; empty for every kind.
	GetActivity(ctx context.Context, page, count int, kind models.EntityKind) ([]models.ActivityEntry, error)
}

// FeedbackHandler handles HTTP requests for notifications and the activity log
type FeedbackHandler struct {
	BaseHandler
	notifications NotificationCenter
	activity      ActivityService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(notifications NotificationCenter, activity ActivityService, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		notifications: notifications,
		activity:      activity,
		BaseHandler:   BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all feedback handler routes
func (h *FeedbackHandler) RegisterRoutes(r chi.Router) {
	r.Get("/notifications", h.GetNotifications)
	r.Get("/activity", h.GetActivity)
}

// GetNotifications handles GET /api/v1/notifications
// @Summary Drain pending notifications
// @Description Get and remove every pending notification
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func (h *FeedbackHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.notifications.Drain())
}

// GetActivity handles GET /api/v1/activity
// @Summary Get the activity log
// @Tags activity
// @Produce json
// @Param kind query string false "Entity kind filter"
// @Param page query int false "Page number (default: 1)"
// @Param count query int false "Items per page (default: 20)"
// @Success 200 {array} models.ActivityEntry
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /activity [get]
func (h *FeedbackHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	kind := models.EntityKind(r.URL.Query().Get("kind"))

	entries, err := h.activity.GetActivity(r.Context(), queryInt(r, "page"), queryInt(r, "count"), kind)
	if err != nil {
		h.Logger.Error("failed to get activity", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get activity")
		return
	}

	h.RespondJSON(w, http.StatusOK, entries)
}
