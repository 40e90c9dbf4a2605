package forms

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/examdesk/admin-console/internal/models"
)

// Catalog is the snapshot drafts are initialized from
type Catalog interface {
	Course(id int) (models.Course, bool)
	Module(id int) (models.Module, bool)
	Content(id int) (models.Content, bool)
	Modules(courseID int) []models.Module
	Versions(contentID int) []models.ContentVersion
}

// ExamLister lists the exam types
type ExamLister interface {
	ListExams(ctx context.Context) ([]models.Exam, error)
}

// Params selects the entity a form edits or the parent a new entity is created in
type Params struct {
	ID        int
	CourseID  int
	ModuleID  int
	ContentID int
}

// Builder initializes drafts for the create and edit dialogs
type Builder struct {
	catalog Catalog
	exams   ExamLister
}

// NewBuilder creates a new draft builder
func NewBuilder(catalog Catalog, exams ExamLister) *Builder {
	return &Builder{catalog: catalog, exams: exams}
}

// Initial returns the draft a dialog opens with. A non-zero p.ID opens the edit variant.
func (b *Builder) Initial(ctx context.Context, kind Kind, p Params) (Draft, error) {
	switch kind {
	case KindCourse:
		if p.ID == 0 {
			return NewCourseDraft(nil), nil
		}
		course, ok := b.catalog.Course(p.ID)
		if !ok {
			return nil, fmt.Errorf("course not found")
		}
		return NewCourseDraft(&course), nil
	case KindModule:
		if p.ID != 0 {
			module, ok := b.catalog.Module(p.ID)
			if !ok {
				return nil, fmt.Errorf("module not found")
			}
			return NewModuleDraft(module.CourseID, &module, nil), nil
		}
		if _, ok := b.catalog.Course(p.CourseID); !ok {
			return nil, fmt.Errorf("course not found")
		}
		return NewModuleDraft(p.CourseID, nil, b.catalog.Modules(p.CourseID)), nil
	case KindContent:
		if p.ID != 0 {
			content, ok := b.catalog.Content(p.ID)
			if !ok {
				return nil, fmt.Errorf("content not found")
			}
			return NewContentDraft(content.ModuleID, &content), nil
		}
		if _, ok := b.catalog.Module(p.ModuleID); !ok {
			return nil, fmt.Errorf("module not found")
		}
		return NewContentDraft(p.ModuleID, nil), nil
	case KindVersion:
		if _, ok := b.catalog.Content(p.ContentID); !ok {
			return nil, fmt.Errorf("content not found")
		}
		return NewVersionDraft(p.ContentID, b.catalog.Versions(p.ContentID))
	case KindExam:
		if p.ID == 0 {
			return NewExamDraft(nil), nil
		}
		exams, err := b.exams.ListExams(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load exams: %w", err)
		}
		for _, e := range exams {
			if e.ID == p.ID {
				return NewExamDraft(&e), nil
			}
		}
		return nil, fmt.Errorf("exam not found")
	default:
		return nil, fmt.Errorf("unknown form '%s'", kind)
	}
}

// Decode parses a draft of the given kind from its JSON form
func Decode(kind Kind, data []byte) (Draft, error) {
	var draft Draft
	switch kind {
	case KindCourse:
		draft = &CourseDraft{}
	case KindModule:
		draft = &ModuleDraft{}
	case KindContent:
		draft = &ContentDraft{}
	case KindVersion:
		draft = &VersionDraft{}
	case KindExam:
		draft = &ExamDraft{}
	default:
		return nil, fmt.Errorf("unknown form '%s'", kind)
	}
	if err := json.Unmarshal(data, draft); err != nil {
		return nil, fmt.Errorf("invalid %s form: %w", kind, err)
	}
	return draft, nil
}
