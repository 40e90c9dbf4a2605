package forms

import (
	"context"
	"strings"

	"github.com/examdesk/admin-console/internal/models"
)

// ModuleMutator defines the mutations a module form submits to
type ModuleMutator interface {
	CreateModule(ctx context.Context, req *models.CreateModuleRequest) (int, error)
	UpdateModule(ctx context.Context, id int, req *models.UpdateModuleRequest) error
}

// ModuleDraft is the module create/edit form
type ModuleDraft struct {
	ID          int    `json:"id,omitempty" validate:"-"`
	CourseID    int    `json:"course_id" validate:"gt=0"`
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" validate:"gte=0"`
	Duration    string `json:"duration"`
}

// NewModuleDraft initializes the form from module. For a new module of courseID the
// order index defaults to one past the greatest index among siblings.
func NewModuleDraft(courseID int, module *models.Module, siblings []models.Module) *ModuleDraft {
	if module != nil {
		return &ModuleDraft{
			ID:          module.ID,
			CourseID:    module.CourseID,
			Title:       module.Title,
			Description: module.Description,
			OrderIndex:  module.OrderIndex,
			Duration:    module.Duration,
		}
	}
	next := 1
	for _, m := range siblings {
		if m.OrderIndex >= next {
			next = m.OrderIndex + 1
		}
	}
	return &ModuleDraft{CourseID: courseID, OrderIndex: next}
}

// Kind implements Draft
func (d *ModuleDraft) Kind() Kind { return KindModule }

// IsEdit implements Draft
func (d *ModuleDraft) IsEdit() bool { return d.ID != 0 }

// ToCreate converts the draft into a create request
func (d *ModuleDraft) ToCreate() *models.CreateModuleRequest {
	return &models.CreateModuleRequest{
		CourseID:    d.CourseID,
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		OrderIndex:  d.OrderIndex,
		Duration:    strings.TrimSpace(d.Duration),
	}
}

// ToUpdate converts the draft into an update request
func (d *ModuleDraft) ToUpdate() *models.UpdateModuleRequest {
	orderIndex := d.OrderIndex
	return &models.UpdateModuleRequest{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		OrderIndex:  &orderIndex,
		Duration:    strings.TrimSpace(d.Duration),
	}
}

// Submit validates the draft and calls the matching mutation once
func (d *ModuleDraft) Submit(ctx context.Context, m ModuleMutator) (int, error) {
	if errs := Validate(d); errs != nil {
		return 0, errs
	}
	if d.IsEdit() {
		return d.ID, m.UpdateModule(ctx, d.ID, d.ToUpdate())
	}
	return m.CreateModule(ctx, d.ToCreate())
}
