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

// ExamService is the interface that wraps methods for the exam type taxonomy.
type ExamService interface {
	forms.ExamMutator
	// ListExams retrieves every exam type.
	ListExams(ctx context.Context) ([]models.Exam, error)
	// RequestDeletion registers a delete waiting for confirmation.
	RequestDeletion(ctx context.Context, kind models.EntityKind, id int) (*models.PendingDeletion, error)
}

// ExamHandler handles HTTP requests for exam types
type ExamHandler struct {
	BaseHandler
	service ExamService
}

// NewExamHandler creates a new exam handler
func NewExamHandler(svc ExamService, logger *zap.Logger) *ExamHandler {
	return &ExamHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all exam handler routes
func (h *ExamHandler) RegisterRoutes(r chi.Router) {
	r.Route("/exams", func(r chi.Router) {
		r.Get("/", h.GetExams)
		r.Post("/", h.CreateExam)
		r.Put("/{id}", h.UpdateExam)
		r.Delete("/{id}", h.DeleteExam)
	})
}

// GetExams handles GET /api/v1/exams
// @Summary Get exam types
// @Tags exams
// @Produce json
// @Success 200 {array} models.Exam
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /exams [get]
func (h *ExamHandler) GetExams(w http.ResponseWriter, r *http.Request) {
	exams, err := h.service.ListExams(r.Context())
	if err != nil {
		h.Logger.Error("failed to get exams", zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}
	if exams == nil {
		exams = []models.Exam{}
	}

	h.RespondJSON(w, http.StatusOK, exams)
}

// CreateExam handles POST /api/v1/exams
// @Summary Create an exam type
// @Tags exams
// @Accept json
// @Produce json
// @Param request body forms.ExamDraft true "Exam form"
// @Success 201 {object} map[string]any "Exam created successfully"
// @Failure 400 {object} map[string]any "Incomplete form"
// @Router /exams [post]
func (h *ExamHandler) CreateExam(w http.ResponseWriter, r *http.Request) {
	var draft forms.ExamDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	draft.ID = 0

	id, err := draft.Submit(r.Context(), h.service)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": "exam created successfully",
	})
}

// UpdateExam handles PUT /api/v1/exams/{id}
// @Summary Update an exam type
// @Tags exams
// @Accept json
// @Param id path int true "Exam ID"
// @Param request body forms.ExamDraft true "Exam form"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]any "Incomplete form"
// @Failure 404 {object} map[string]string "Exam not found"
// @Router /exams/{id} [put]
func (h *ExamHandler) UpdateExam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid exam ID")
		return
	}
	var draft forms.ExamDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	draft.ID = id

	if _, err := draft.Submit(r.Context(), h.service); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteExam handles DELETE /api/v1/exams/{id}
// @Summary Request the deletion of an exam type
// @Description The exam is deleted once the returned token is confirmed
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 202 {object} models.PendingDeletion
// @Failure 404 {object} map[string]string "Exam not found"
// @Router /exams/{id} [delete]
func (h *ExamHandler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid exam ID")
		return
	}

	pending, err := h.service.RequestDeletion(r.Context(), models.EntityExam, id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusAccepted, pending)
}
