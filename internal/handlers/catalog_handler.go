package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/examdesk/admin-console/internal/catalog"
	"github.com/examdesk/admin-console/internal/forms"
	"github.com/examdesk/admin-console/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogService is the interface that wraps the catalog mutations.
//
// Every mutation performs exactly one backend call. The snapshot is reloaded after a success
// and left untouched after a failure.
type CatalogService interface {
	forms.CourseMutator
	forms.ModuleMutator
	forms.ContentMutator
	// ReloadCatalog replaces the snapshot with a fresh copy of the backend catalog.
	ReloadCatalog(ctx context.Context) error
	// RequestDeletion registers a delete waiting for confirmation.
	//
	// "kind" and "id" identify the entity.
	// Nothing is sent to the backend until the returned token is confirmed.
	RequestDeletion(ctx context.Context, kind models.EntityKind, id int) (*models.PendingDeletion, error)
	// ConfirmDeletion executes a pending delete. Tokens are single use.
	ConfirmDeletion(ctx context.Context, token string) error
	// CancelDeletion discards a pending delete.
	CancelDeletion(token string) error
}

// CatalogTree is the read side of the catalog snapshot
type CatalogTree interface {
	Tree() []catalog.CourseNode
	LoadedAt() time.Time
}

// CatalogHandler handles HTTP requests for the catalog tree and its mutations
type CatalogHandler struct {
	BaseHandler
	service CatalogService
	tree    CatalogTree
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(svc CatalogService, tree CatalogTree, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:     svc,
		tree:        tree,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// catalogResponse is the catalog tree with the time it was loaded
type catalogResponse struct {
	LoadedAt *time.Time           `json:"loaded_at,omitempty"`
	Courses  []catalog.CourseNode `json:"courses"`
}

// RegisterRoutes registers all catalog handler routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/", h.GetCatalog)
		r.Post("/reload", h.ReloadCatalog)
	})
	r.Route("/courses", func(r chi.Router) {
		r.Post("/", h.CreateCourse)
		r.Put("/{id}", h.UpdateCourse)
		r.Delete("/{id}", h.deleteEntity(models.EntityCourse))
	})
	r.Route("/modules", func(r chi.Router) {
		r.Post("/", h.CreateModule)
		r.Put("/{id}", h.UpdateModule)
		r.Delete("/{id}", h.deleteEntity(models.EntityModule))
	})
	// flat, since version routes share the /contents/{id} prefix
	r.Post("/contents", h.CreateContent)
	r.Put("/contents/{id}", h.UpdateContent)
	r.Delete("/contents/{id}", h.deleteEntity(models.EntityContent))
	r.Route("/deletions", func(r chi.Router) {
		r.Post("/", h.RequestDeletion)
		r.Post("/{token}/confirm", h.ConfirmDeletion)
		r.Delete("/{token}", h.CancelDeletion)
	})
}

func (h *CatalogHandler) catalogResponse() catalogResponse {
	resp := catalogResponse{Courses: h.tree.Tree()}
	if resp.Courses == nil {
		resp.Courses = []catalog.CourseNode{}
	}
	if loadedAt := h.tree.LoadedAt(); !loadedAt.IsZero() {
		resp.LoadedAt = &loadedAt
	}
	return resp
}

// GetCatalog handles GET /api/v1/catalog
// @Summary Get the catalog tree
// @Description Get courses with their modules, content items and versions from the latest snapshot
// @Tags catalog
// @Produce json
// @Success 200 {object} catalogResponse
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.catalogResponse())
}

// ReloadCatalog handles POST /api/v1/catalog/reload
// @Summary Reload the catalog
// @Description Fetch the whole catalog from the backend and replace the snapshot
// @Tags catalog
// @Produce json
// @Success 200 {object} catalogResponse
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /catalog/reload [post]
func (h *CatalogHandler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ReloadCatalog(r.Context()); err != nil {
		h.Logger.Error("failed to reload catalog", zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, h.catalogResponse())
}

// CreateCourse handles POST /api/v1/courses
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body forms.CourseDraft true "Course form"
// @Success 201 {object} map[string]any "Course created successfully"
// @Failure 400 {object} map[string]any "Incomplete form"
// @Router /courses [post]
func (h *CatalogHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var draft forms.CourseDraft
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
		"message": "course created successfully",
	})
}

// UpdateCourse handles PUT /api/v1/courses/{id}
// @Summary Update a course
// @Tags courses
// @Accept json
// @Param id path int true "Course ID"
// @Param request body forms.CourseDraft true "Course form"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]any "Incomplete form"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /courses/{id} [put]
func (h *CatalogHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}
	var draft forms.CourseDraft
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

// CreateModule handles POST /api/v1/modules
// @Summary Create a module
// @Tags modules
// @Accept json
// @Produce json
// @Param request body forms.ModuleDraft true "Module form"
// @Success 201 {object} map[string]any "Module created successfully"
// @Failure 400 {object} map[string]any "Incomplete form"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /modules [post]
func (h *CatalogHandler) CreateModule(w http.ResponseWriter, r *http.Request) {
	var draft forms.ModuleDraft
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
		"message": "module created successfully",
	})
}

// UpdateModule handles PUT /api/v1/modules/{id}
// @Summary Update a module
// @Tags modules
// @Accept json
// @Param id path int true "Module ID"
// @Param request body forms.ModuleDraft true "Module form"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]any "Incomplete form"
// @Failure 404 {object} map[string]string "Module not found"
// @Router /modules/{id} [put]
func (h *CatalogHandler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid module ID")
		return
	}
	var draft forms.ModuleDraft
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

// CreateContent handles POST /api/v1/contents
// @Summary Create a content item
// @Tags contents
// @Accept json
// @Produce json
// @Param request body forms.ContentDraft true "Content form"
// @Success 201 {object} map[string]any "Content created successfully"
// @Failure 400 {object} map[string]any "Incomplete form"
// @Failure 404 {object} map[string]string "Module not found"
// @Router /contents [post]
func (h *CatalogHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var draft forms.ContentDraft
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
		"message": "content created successfully",
	})
}

// UpdateContent handles PUT /api/v1/contents/{id}
// @Summary Update a content item
// @Description The content type of an existing item cannot change
// @Tags contents
// @Accept json
// @Param id path int true "Content ID"
// @Param request body forms.ContentDraft true "Content form"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]any "Incomplete form"
// @Failure 404 {object} map[string]string "Content not found"
// @Router /contents/{id} [put]
func (h *CatalogHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid content ID")
		return
	}
	var draft forms.ContentDraft
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

// deleteEntity handles DELETE on an entity by registering a pending deletion.
// The entity is only deleted once the returned token is confirmed.
func (h *CatalogHandler) deleteEntity(kind models.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			h.RespondError(w, http.StatusBadRequest, "invalid "+string(kind)+" ID")
			return
		}
		h.requestDeletion(w, r, kind, id)
	}
}

func (h *CatalogHandler) requestDeletion(w http.ResponseWriter, r *http.Request, kind models.EntityKind, id int) {
	pending, err := h.service.RequestDeletion(r.Context(), kind, id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusAccepted, pending)
}

// RequestDeletion handles POST /api/v1/deletions
// @Summary Request a deletion
// @Description Register a delete waiting for confirmation and describe what it removes
// @Tags deletions
// @Accept json
// @Produce json
// @Param request body models.DeletionRequest true "Entity to delete"
// @Success 202 {object} models.PendingDeletion
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Entity not found"
// @Router /deletions [post]
func (h *CatalogHandler) RequestDeletion(w http.ResponseWriter, r *http.Request) {
	var req models.DeletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID <= 0 {
		h.RespondError(w, http.StatusBadRequest, "invalid entity ID")
		return
	}

	h.requestDeletion(w, r, req.Kind, req.ID)
}

// ConfirmDeletion handles POST /api/v1/deletions/{token}/confirm
// @Summary Confirm a deletion
// @Tags deletions
// @Param token path string true "Confirmation token"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Confirmation not found"
// @Failure 410 {object} map[string]string "Confirmation expired"
// @Router /deletions/{token}/confirm [post]
func (h *CatalogHandler) ConfirmDeletion(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	if err := h.service.ConfirmDeletion(r.Context(), token); err != nil {
		h.Logger.Error("failed to delete", zap.String("token", token), zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CancelDeletion handles DELETE /api/v1/deletions/{token}
// @Summary Cancel a deletion
// @Tags deletions
// @Param token path string true "Confirmation token"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Confirmation not found"
// @Router /deletions/{token} [delete]
func (h *CatalogHandler) CancelDeletion(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CancelDeletion(chi.URLParam(r, "token")); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
