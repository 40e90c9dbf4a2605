package forms

import (
	"context"
	"strings"

	"github.com/examdesk/admin-console/internal/models"
)

// ExamMutator defines the mutations an exam form submits to
type ExamMutator interface {
	CreateExam(ctx context.Context, req *models.CreateExamRequest) (int, error)
	UpdateExam(ctx context.Context, id int, req *models.UpdateExamRequest) error
}

// ExamDraft is the exam type create/edit form
type ExamDraft struct {
	ID          int    `json:"id,omitempty" validate:"-"`
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description"`
}

// NewExamDraft initializes the form from exam, or empty when exam is nil
func NewExamDraft(exam *models.Exam) *ExamDraft {
	if exam == nil {
		return &ExamDraft{}
	}
	return &ExamDraft{ID: exam.ID, Name: exam.Name, Description: exam.Description}
}

// Kind implements Draft
func (d *ExamDraft) Kind() Kind { return KindExam }

// IsEdit implements Draft
func (d *ExamDraft) IsEdit() bool { return d.ID != 0 }

// Submit validates the draft and calls the matching mutation once
func (d *ExamDraft) Submit(ctx context.Context, m ExamMutator) (int, error) {
	if errs := Validate(d); errs != nil {
		return 0, errs
	}
	name := strings.TrimSpace(d.Name)
	description := strings.TrimSpace(d.Description)
	if d.IsEdit() {
		return d.ID, m.UpdateExam(ctx, d.ID, &models.UpdateExamRequest{Name: name, Description: description})
	}
	return m.CreateExam(ctx, &models.CreateExamRequest{Name: name, Description: description})
}
