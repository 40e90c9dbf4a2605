package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/examdesk/admin-console/internal/forms"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FormBuilder initializes the drafts of the create and edit dialogs
type FormBuilder interface {
	Initial(ctx context.Context, kind forms.Kind, p forms.Params) (forms.Draft, error)
}

// FormHandler handles HTTP requests for form drafts
type FormHandler struct {
	BaseHandler
	builder FormBuilder
}

// NewFormHandler creates a new form handler
func NewFormHandler(builder FormBuilder, logger *zap.Logger) *FormHandler {
	return &FormHandler{
		builder:     builder,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all form handler routes
func (h *FormHandler) RegisterRoutes(r chi.Router) {
	r.Route("/forms/{kind}", func(r chi.Router) {
		r.Get("/", h.GetDraft)
		r.Post("/check", h.CheckDraft)
	})
}

// GetDraft handles GET /api/v1/forms/{kind}
// @Summary Get the initial draft of a form
// @Description Get an empty draft, or the draft of an existing entity when id is given
// @Tags forms
// @Produce json
// @Param kind path string true "Form kind: course, module, content, version or exam"
// @Param id query int false "ID of the edited entity"
// @Param course_id query int false "Course of a new module"
// @Param module_id query int false "Module of new content"
// @Param content_id query int false "Content item of a new version"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string "Unknown form"
// @Failure 404 {object} map[string]string "Entity not found"
// @Router /forms/{kind} [get]
func (h *FormHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	kind, err := forms.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := forms.Params{
		ID:        queryInt(r, "id"),
		CourseID:  queryInt(r, "course_id"),
		ModuleID:  queryInt(r, "module_id"),
		ContentID: queryInt(r, "content_id"),
	}
	draft, err := h.builder.Initial(r.Context(), kind, params)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, draft)
}

// CheckDraft handles POST /api/v1/forms/{kind}/check
// @Summary Check whether a draft can be submitted
// @Tags forms
// @Accept json
// @Produce json
// @Param kind path string true "Form kind: course, module, content, version or exam"
// @Success 200 {object} forms.Check
// @Failure 400 {object} map[string]string "Invalid draft"
// @Router /forms/{kind}/check [post]
func (h *FormHandler) CheckDraft(w http.ResponseWriter, r *http.Request) {
	kind, err := forms.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	draft, err := forms.Decode(kind, body)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, forms.CheckDraft(draft))
}
