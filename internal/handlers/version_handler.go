package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/examdesk/admin-console/internal/forms"
	"github.com/examdesk/admin-console/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// VersionService is the interface that wraps methods for content versions.
type VersionService interface {
	forms.VersionMutator
	// ListVersions returns the version history of a content item, newest first,
	// together with the version currently served to end users (nil when there is none).
	ListVersions(ctx context.Context, contentID int) ([]models.ContentVersion, *models.ContentVersion, error)
	// NextVersion returns the label the next version of a content item gets.
	NextVersion(ctx context.Context, contentID int) (string, error)
	// RestoreVersion creates a new published version copying the file of an older one.
	//
	// The label of the new version follows the whole history.
	// Returns the ID of the created version.
	RestoreVersion(ctx context.Context, contentID, versionID int, author string) (int, error)
	// SetVersionStatus publishes or unpublishes a version.
	SetVersionStatus(ctx context.Context, contentID, versionID int, status models.VersionStatus) error
}

// VersionHandler handles HTTP requests for the versions of content items
type VersionHandler struct {
	BaseHandler
	service VersionService
}

// NewVersionHandler creates a new version handler
func NewVersionHandler(svc VersionService, logger *zap.Logger) *VersionHandler {
	return &VersionHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// versionsResponse is the history of a content item
type versionsResponse struct {
	Versions []models.ContentVersion `json:"versions"`
	Current  *models.ContentVersion  `json:"current,omitempty"`
}

// restoreVersionRequest names the administrator restoring a version
type restoreVersionRequest struct {
	Author string `json:"author"`
}

// RegisterRoutes registers all version handler routes
func (h *VersionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/contents/{id}/versions", h.GetVersions)
	r.Post("/contents/{id}/versions", h.CreateVersion)
	r.Get("/contents/{id}/versions/next", h.GetNextVersion)
	r.Post("/contents/{id}/versions/{versionId}/restore", h.RestoreVersion)
	r.Put("/contents/{id}/versions/{versionId}/status", h.SetVersionStatus)
}

// GetVersions handles GET /api/v1/contents/{id}/versions
// @Summary Get the version history of a content item
// @Tags versions
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} versionsResponse
// @Failure 404 {object} map[string]string "Content not found"
// @Router /contents/{id}/versions [get]
func (h *VersionHandler) GetVersions(w http.ResponseWriter, r *http.Request) {
	contentID, ok := pathID(r, "id")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid content ID")
		return
	}

	versions, current, err := h.service.ListVersions(r.Context(), contentID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	if versions == nil {
		versions = []models.ContentVersion{}
	}

	h.RespondJSON(w, http.StatusOK, versionsResponse{Versions: versions, Current: current})
}

// GetNextVersion handles GET /api/v1/contents/{id}/versions/next
// @Summary Get the next version label
// @Tags versions
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Content not found"
// @Router /contents/{id}/versions/next [get]
func (h *VersionHandler) GetNextVersion(w http.ResponseWriter, r *http.Request) {
	contentID, ok := pathID(r, "id")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid content ID")
		return
	}

	next, err := h.service.NextVersion(r.Context(), contentID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"version": next})
}

// CreateVersion handles POST /api/v1/contents/{id}/versions
// @Summary Create a version
// @Tags versions
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param request body forms.VersionDraft true "Version form"
// @Success 201 {object} map[string]any "Version created successfully"
// @Failure 400 {object} map[string]any "Incomplete form or duplicate label"
// @Failure 404 {object} map[string]string "Content not found"
// @Router /contents/{id}/versions [post]
func (h *VersionHandler) CreateVersion(w http.ResponseWriter, r *http.Request) {
	contentID, ok := pathID(r, "id")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid content ID")
		return
	}
	var draft forms.VersionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	draft.ContentID = contentID

	id, err := draft.Submit(r.Context(), h.service)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": "version created successfully",
	})
}

// RestoreVersion handles POST /api/v1/contents/{id}/versions/{versionId}/restore
// @Summary Restore a version
// @Description Create a new published version with the file of an older one
// @Tags versions
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param versionId path int true "Version ID"
// @Param request body restoreVersionRequest false "Author of the restore"
// @Success 201 {object} map[string]any "Version restored successfully"
// @Failure 404 {object} map[string]string "Version not found"
// @Router /contents/{id}/versions/{versionId}/restore [post]
func (h *VersionHandler) RestoreVersion(w http.ResponseWriter, r *http.Request) {
	contentID, ok := pathID(r, "id")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid content ID")
		return
	}
	versionID, ok := pathID(r, "versionId")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid version ID")
		return
	}
	var req restoreVersionRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	id, err := h.service.RestoreVersion(r.Context(), contentID, versionID, req.Author)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": "version restored successfully",
	})
}

// SetVersionStatus handles PUT /api/v1/contents/{id}/versions/{versionId}/status
// @Summary Publish or unpublish a version
// @Tags versions
// @Accept json
// @Param id path int true "Content ID"
// @Param versionId path int true "Version ID"
// @Param request body models.UpdateVersionStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Version not found"
// @Router /contents/{id}/versions/{versionId}/status [put]
func (h *VersionHandler) SetVersionStatus(w http.ResponseWriter, r *http.Request) {
	contentID, ok := pathID(r, "id")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid content ID")
		return
	}
	versionID, ok := pathID(r, "versionId")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid version ID")
		return
	}
	var req models.UpdateVersionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SetVersionStatus(r.Context(), contentID, versionID, req.Status); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
