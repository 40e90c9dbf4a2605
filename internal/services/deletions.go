package services

import (
	"context"
	"fmt"

	"github.com/examdesk/admin-console/internal/models"
)

// RequestDeletion registers a delete waiting for confirmation and describes what it removes.
// Nothing is sent to the backend before ConfirmDeletion.
func (s *catalogService) RequestDeletion(ctx context.Context, kind models.EntityKind, id int) (*models.PendingDeletion, error) {
	title, warning, err := s.describeDeletion(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	pending := s.confirmations.add(kind, id, title, warning)
	return &pending, nil
}

func (s *catalogService) describeDeletion(ctx context.Context, kind models.EntityKind, id int) (string, string, error) {
	switch kind {
	case models.EntityCourse:
		course, ok := s.store.Course(id)
		if !ok {
			return "", "", fmt.Errorf("course not found")
		}
		modules := s.store.Modules(id)
		contents := 0
		for _, m := range modules {
			contents += len(s.store.Contents(m.ID))
		}
		warning := fmt.Sprintf("Deleting course '%s' also removes its %d modules and %d content items.", course.Title, len(modules), contents)
		return course.Title, warning, nil
	case models.EntityModule:
		module, ok := s.store.Module(id)
		if !ok {
			return "", "", fmt.Errorf("module not found")
		}
		warning := fmt.Sprintf("Deleting module '%s' also removes its %d content items.", module.Title, len(s.store.Contents(id)))
		return module.Title, warning, nil
	case models.EntityContent:
		content, ok := s.store.Content(id)
		if !ok {
			return "", "", fmt.Errorf("content not found")
		}
		warning := fmt.Sprintf("Deleting '%s' also removes its %d versions.", content.Title, len(s.store.Versions(id)))
		return content.Title, warning, nil
	case models.EntityExam:
		exams, err := s.backend.ListExams(ctx)
		if err != nil {
			return "", "", fmt.Errorf("failed to load exams: %w", err)
		}
		for _, e := range exams {
			if e.ID == id {
				return e.Name, "", nil
			}
		}
		return "", "", fmt.Errorf("exam not found")
	default:
		return "", "", fmt.Errorf("deleting %s is not supported", kind)
	}
}

// ConfirmDeletion executes the delete registered under token. A token is used once,
// even when the delete fails.
func (s *catalogService) ConfirmDeletion(ctx context.Context, token string) error {
	pending, err := s.confirmations.take(token)
	if err != nil {
		return err
	}

	op := operation{
		kind:     pending.Kind,
		action:   "delete",
		entityID: pending.EntityID,
		reload:   pending.Kind != models.EntityExam,
	}
	_, err = s.run(ctx, op, func(ctx context.Context) (int, error) {
		return 0, s.deleteEntity(ctx, pending.Kind, pending.EntityID)
	})
	return err
}

func (s *catalogService) deleteEntity(ctx context.Context, kind models.EntityKind, id int) error {
	switch kind {
	case models.EntityCourse:
		return s.backend.DeleteCourse(ctx, id)
	case models.EntityModule:
		return s.backend.DeleteModule(ctx, id)
	case models.EntityContent:
		return s.backend.DeleteContent(ctx, id)
	case models.EntityExam:
		return s.backend.DeleteExam(ctx, id)
	default:
		return fmt.Errorf("deleting %s is not supported", kind)
	}
}

// CancelDeletion discards a pending delete without any backend call
func (s *catalogService) CancelDeletion(token string) error {
	return s.confirmations.cancel(token)
}

// ExpireConfirmations drops the pending deletions past their deadline
func (s *catalogService) ExpireConfirmations() int {
	return s.confirmations.expire()
}
