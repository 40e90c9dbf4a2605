package handlers

import (
	"errors"
	"net/http"

	"github.com/examdesk/admin-console/internal/navigation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Navigator is the interface that wraps the catalog drill-down.
type Navigator interface {
	// View returns what is currently displayed.
	View() *navigation.View
	// SelectCourse moves to the modules of a course.
	SelectCourse(courseID int) (*navigation.View, error)
	// SelectModule moves to the content of a module of the selected course.
	SelectModule(moduleID int) (*navigation.View, error)
	// Back moves one level up; it does nothing at the courses level.
	Back() *navigation.View
}

// NavigationHandler handles HTTP requests for the catalog drill-down
type NavigationHandler struct {
	BaseHandler
	browser Navigator
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(browser Navigator, logger *zap.Logger) *NavigationHandler {
	return &NavigationHandler{
		browser:     browser,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all navigation handler routes
func (h *NavigationHandler) RegisterRoutes(r chi.Router) {
	r.Route("/navigation", func(r chi.Router) {
		r.Get("/", h.GetView)
		r.Post("/courses/{id}", h.SelectCourse)
		r.Post("/modules/{id}", h.SelectModule)
		r.Post("/back", h.Back)
	})
}

// GetView handles GET /api/v1/navigation
// @Summary Get the current view
// @Tags navigation
// @Produce json
// @Success 200 {object} navigation.View
// @Router /navigation [get]
func (h *NavigationHandler) GetView(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.browser.View())
}

// SelectCourse handles POST /api/v1/navigation/courses/{id}
// @Summary Open a course
// @Tags navigation
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} navigation.View
// @Failure 404 {object} map[string]string "Course not found"
// @Router /navigation/courses/{id} [post]
func (h *NavigationHandler) SelectCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	view, err := h.browser.SelectCourse(id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, view)
}

// SelectModule handles POST /api/v1/navigation/modules/{id}
// @Summary Open a module of the selected course
// @Tags navigation
// @Produce json
// @Param id path int true "Module ID"
// @Success 200 {object} navigation.View
// @Failure 404 {object} map[string]string "Module not found"
// @Failure 409 {object} map[string]string "No course selected"
// @Router /navigation/modules/{id} [post]
func (h *NavigationHandler) SelectModule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid module ID")
		return
	}

	view, err := h.browser.SelectModule(id)
	if err != nil {
		if errors.Is(err, navigation.ErrNoCourseSelected) {
			h.RespondError(w, http.StatusConflict, err.Error())
			return
		}
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, view)
}

// Back handles POST /api/v1/navigation/back
// @Summary Go one level up
// @Tags navigation
// @Produce json
// @Success 200 {object} navigation.View
// @Router /navigation/back [post]
func (h *NavigationHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.browser.Back())
}
