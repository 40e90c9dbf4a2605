package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/examdesk/admin-console/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UploadService is the interface that wraps the file upload.
type UploadService interface {
	// Upload stores a file on the backend.
	//
	// "filename" is the original name of the file.
	// Returns the URL and human-readable size of the stored file.
	Upload(ctx context.Context, filename string, file io.Reader) (*models.UploadResult, error)
}

// UploadHandler handles HTTP requests for file uploads
type UploadHandler struct {
	BaseHandler
	service   UploadService
	maxMemory int64
}

// NewUploadHandler creates a new upload handler. Parts above maxMemory are buffered on disk.
func NewUploadHandler(svc UploadService, maxMemory int64, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		service:     svc,
		maxMemory:   maxMemory,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all upload handler routes
func (h *UploadHandler) RegisterRoutes(r chi.Router) {
	r.Post("/uploads", h.Upload)
}

// Upload handles POST /api/v1/uploads
// @Summary Upload a file
// @Description Store a file on the backend; the returned URL and size fill a version form
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} models.UploadResult
// @Failure 400 {object} map[string]string "Missing file"
// @Failure 413 {object} map[string]string "File too large"
// @Router /uploads [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		h.Logger.Error("failed to parse multipart form", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	result, err := h.service.Upload(r.Context(), fileHeader.Filename, file)
	if err != nil {
		h.Logger.Error("failed to upload file", zap.String("filename", fileHeader.Filename), zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, result)
}
