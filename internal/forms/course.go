package forms

import (
	"context"
	"strings"

	"github.com/examdesk/admin-console/internal/models"
)

// CourseMutator defines the mutations a course form submits to
type CourseMutator interface {
	CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (int, error)
	UpdateCourse(ctx context.Context, id int, req *models.UpdateCourseRequest) error
}

// CourseDraft is the course create/edit form
type CourseDraft struct {
	ID          int                 `json:"id,omitempty" validate:"-"`
	Title       string              `json:"title" validate:"notblank"`
	Description string              `json:"description"`
	ExamType    string              `json:"exam_type"`
	Instructor  string              `json:"instructor"`
	Duration    string              `json:"duration"`
	Status      models.CourseStatus `json:"status" validate:"oneof=draft published archived"`
}

// NewCourseDraft initializes the form from course, or with defaults when course is nil
func NewCourseDraft(course *models.Course) *CourseDraft {
	if course == nil {
		return &CourseDraft{Status: models.CourseStatusDraft}
	}
	return &CourseDraft{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		ExamType:    course.ExamType,
		Instructor:  course.Instructor,
		Duration:    course.Duration,
		Status:      course.Status,
	}
}

// Kind implements Draft
func (d *CourseDraft) Kind() Kind { return KindCourse }

// IsEdit implements Draft
func (d *CourseDraft) IsEdit() bool { return d.ID != 0 }

// ToCreate converts the draft into a create request
func (d *CourseDraft) ToCreate() *models.CreateCourseRequest {
	return &models.CreateCourseRequest{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		ExamType:    d.ExamType,
		Instructor:  strings.TrimSpace(d.Instructor),
		Duration:    strings.TrimSpace(d.Duration),
		Status:      d.Status,
	}
}

// ToUpdate converts the draft into an update request
func (d *CourseDraft) ToUpdate() *models.UpdateCourseRequest {
	return &models.UpdateCourseRequest{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		ExamType:    d.ExamType,
		Instructor:  strings.TrimSpace(d.Instructor),
		Duration:    strings.TrimSpace(d.Duration),
		Status:      d.Status,
	}
}

// Submit validates the draft and calls the matching mutation once.
// It returns the id of the created or edited course.
func (d *CourseDraft) Submit(ctx context.Context, m CourseMutator) (int, error) {
	if errs := Validate(d); errs != nil {
		return 0, errs
	}
	if d.IsEdit() {
		return d.ID, m.UpdateCourse(ctx, d.ID, d.ToUpdate())
	}
	return m.CreateCourse(ctx, d.ToCreate())
}
