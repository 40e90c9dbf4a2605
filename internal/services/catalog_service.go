package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/examdesk/admin-console/internal/apiclient"
	"github.com/examdesk/admin-console/internal/catalog"
	"github.com/examdesk/admin-console/internal/middlewares"
	"github.com/examdesk/admin-console/internal/models"
	"github.com/examdesk/admin-console/internal/versioning"
	"go.uber.org/zap"
)

// CatalogBackend defines the backend mutations performed by the console
type CatalogBackend interface {
	// CreateCourse creates a course
	//
	// "ctx" is the context for the request.
	// "req" is the course creation request.
	//
	// Returns the ID of the created course and an error if any.
	CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (int, error)
	// UpdateCourse updates a course
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	// "req" is the course update request.
	//
	// Returns an error if any.
	UpdateCourse(ctx context.Context, id int, req *models.UpdateCourseRequest) error
	// DeleteCourse deletes a course together with its modules and content
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns an error if any.
	DeleteCourse(ctx context.Context, id int) error
	// CreateModule creates a module
	//
	// "ctx" is the context for the request.
	// "req" is the module creation request.
	//
	// Returns the ID of the created module and an error if any.
	CreateModule(ctx context.Context, req *models.CreateModuleRequest) (int, error)
	// UpdateModule updates a module
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the module.
	// "req" is the module update request.
	//
	// Returns an error if any.
	UpdateModule(ctx context.Context, id int, req *models.UpdateModuleRequest) error
	// DeleteModule deletes a module
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the module.
	//
	// Returns an error if any.
	DeleteModule(ctx context.Context, id int) error
	// CreateContent creates a content item
	//
	// "ctx" is the context for the request.
	// "req" is the content creation request.
	//
	// Returns the ID of the created content item and an error if any.
	CreateContent(ctx context.Context, req *models.CreateContentRequest) (int, error)
	// UpdateContent updates a content item
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the content item.
	// "req" is the content update request.
	//
	// Returns an error if any.
	UpdateContent(ctx context.Context, id int, req *models.UpdateContentRequest) error
	// DeleteContent deletes a content item
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the content item.
	//
	// Returns an error if any.
	DeleteContent(ctx context.Context, id int) error
	// CreateVersion creates a version of a content item
	//
	// "ctx" is the context for the request.
	// "contentID" is the ID of the content item.
	// "req" is the version creation request.
	//
	// Returns the ID of the created version and an error if any.
	CreateVersion(ctx context.Context, contentID int, req *models.CreateVersionRequest) (int, error)
	// UpdateVersionStatus publishes or unpublishes a version
	//
	// "ctx" is the context for the request.
	// "contentID" is the ID of the content item.
	// "versionID" is the ID of the version.
	// "status" is the new status of the version.
	//
	// Returns an error if any.
	UpdateVersionStatus(ctx context.Context, contentID, versionID int, status models.VersionStatus) error
	// ListExams retrieves the exam type taxonomy
	//
	// "ctx" is the context for the request.
	//
	// Returns a list of exams and an error if any.
	ListExams(ctx context.Context) ([]models.Exam, error)
	// CreateExam creates an exam type
	//
	// "ctx" is the context for the request.
	// "req" is the exam creation request.
	//
	// Returns the ID of the created exam and an error if any.
	CreateExam(ctx context.Context, req *models.CreateExamRequest) (int, error)
	// UpdateExam updates an exam type
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the exam.
	// "req" is the exam update request.
	//
	// Returns an error if any.
	UpdateExam(ctx context.Context, id int, req *models.UpdateExamRequest) error
	// DeleteExam deletes an exam type
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the exam.
	//
	// Returns an error if any.
	DeleteExam(ctx context.Context, id int) error
	// Upload stores a file
	//
	// "ctx" is the context for the request.
	// "filename" is the original name of the file.
	// "file" is the file content.
	//
	// Returns the stored file URL and size and an error if any.
	Upload(ctx context.Context, filename string, file io.Reader) (*models.UploadResult, error)
}

// CatalogStore defines the snapshot operations the service relies on
type CatalogStore interface {
	// Reload fetches the whole catalog and replaces the snapshot
	Reload(ctx context.Context) error
	// Course returns a course of the snapshot
	Course(id int) (models.Course, bool)
	// Module returns a module of the snapshot
	Module(id int) (models.Module, bool)
	// Content returns a content item of the snapshot
	Content(id int) (models.Content, bool)
	// Modules returns the modules of a course
	Modules(courseID int) []models.Module
	// Contents returns the content items of a module
	Contents(moduleID int) []models.Content
	// Versions returns the version history of a content item
	Versions(contentID int) []models.ContentVersion
}

// Notifier defines how the service surfaces outcomes to the administrator
type Notifier interface {
	// Push adds a transient notification
	Push(level models.NotificationLevel, message string) models.Notification
}

// ActivityRepository defines how mutation outcomes are recorded
type ActivityRepository interface {
	// Create inserts an activity entry
	//
	// "ctx" is the context for the request.
	// "entry" is the entry to insert; its ID is set on success.
	//
	// Returns an error if any.
	Create(ctx context.Context, entry *models.ActivityEntry) error
}

type catalogService struct {
	backend       CatalogBackend
	store         CatalogStore
	notifier      Notifier
	activity      ActivityRepository
	confirmations *confirmations
	logger        *zap.Logger
}

// NewCatalogService creates a new catalog service.
// Pending deletions expire after confirmationTTL.
func NewCatalogService(
	backend CatalogBackend,
	store CatalogStore,
	notifier Notifier,
	activity ActivityRepository,
	confirmationTTL time.Duration,
	logger *zap.Logger,
) *catalogService {
	return &catalogService{
		backend:       backend,
		store:         store,
		notifier:      notifier,
		activity:      activity,
		confirmations: newConfirmations(confirmationTTL),
		logger:        logger,
	}
}

// operation describes one mutation for notifications and the activity log
type operation struct {
	kind     models.EntityKind
	action   string
	entityID int
	// reload is false for mutations outside the catalog tree
	reload bool
	// subject names the entity in notifications; defaults to kind
	subject string
	// success overrides the default success notification
	success string
}

func (op operation) name() string {
	if op.subject != "" {
		return op.subject
	}
	return string(op.kind)
}

// run performs a mutation with one backend call. On success the catalog is reloaded;
// on failure an error notification is pushed and the snapshot is left unchanged.
func (s *catalogService) run(ctx context.Context, op operation, call func(ctx context.Context) (int, error)) (int, error) {
	id, err := call(ctx)
	if id == 0 {
		id = op.entityID
	}
	s.record(ctx, op, id, err)

	if err != nil {
		s.logger.Error("catalog mutation failed",
			zap.String("kind", string(op.kind)),
			zap.String("action", op.action),
			zap.Int("entity_id", id),
			zap.Error(err),
		)
		s.notifier.Push(models.NotificationError, fmt.Sprintf("Failed to %s %s: %s", op.action, op.name(), errorMessage(err)))
		return 0, err
	}

	message := op.success
	if message == "" {
		message = fmt.Sprintf("%s %s", capitalize(op.name()), pastTense(op.action))
	}
	s.notifier.Push(models.NotificationSuccess, message)
	if op.reload {
		s.reload(ctx)
	}
	return id, nil
}

// reload refreshes the snapshot after a successful mutation. The mutation already
// happened, so a failed reload is reported but not returned.
func (s *catalogService) reload(ctx context.Context) {
	err := s.store.Reload(ctx)
	if err == nil || errors.Is(err, catalog.ErrReloadSuperseded) {
		return
	}
	s.logger.Error("failed to reload catalog after mutation", zap.Error(err))
	s.notifier.Push(models.NotificationError, fmt.Sprintf("Changes were saved but the catalog could not be refreshed: %s", errorMessage(err)))
}

func (s *catalogService) record(ctx context.Context, op operation, id int, callErr error) {
	entry := &models.ActivityEntry{
		Kind:      op.kind,
		Action:    op.action,
		EntityID:  id,
		Outcome:   models.ActivityOutcomeSucceeded,
		RequestID: middlewares.GetRequestID(ctx),
	}
	if callErr != nil {
		entry.Outcome = models.ActivityOutcomeFailed
		entry.Error = callErr.Error()
		if reqErr, ok := apiclient.AsRequestError(callErr); ok {
			entry.HTTPStatus = reqErr.StatusCode
		}
	}
	if err := s.activity.Create(context.WithoutCancel(ctx), entry); err != nil {
		s.logger.Warn("failed to record activity", zap.Error(err))
	}
}

// ReloadCatalog reloads the snapshot on demand
func (s *catalogService) ReloadCatalog(ctx context.Context) error {
	err := s.store.Reload(ctx)
	if err != nil && !errors.Is(err, catalog.ErrReloadSuperseded) {
		s.notifier.Push(models.NotificationError, fmt.Sprintf("Failed to load catalog: %s", errorMessage(err)))
		return err
	}
	return nil
}

// CreateCourse creates a course
func (s *catalogService) CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (int, error) {
	op := operation{kind: models.EntityCourse, action: "create", reload: true}
	return s.run(ctx, op, func(ctx context.Context) (int, error) {
		return s.backend.CreateCourse(ctx, req)
	})
}

// UpdateCourse updates a course of the snapshot
func (s *catalogService) UpdateCourse(ctx context.Context, id int, req *models.UpdateCourseRequest) error {
	if _, ok := s.store.Course(id); !ok {
		return fmt.Errorf("course not found")
	}
	op := operation{kind: models.EntityCourse, action: "update", entityID: id, reload: true}
	_, err := s.run(ctx, op, func(ctx context.Context) (int, error) {
		return 0, s.backend.UpdateCourse(ctx, id, req)
	})
	return err
}

// CreateModule creates a module in a course of the snapshot
func (s *catalogService) CreateModule(ctx context.Context, req *models.CreateModuleRequest) (int, error) {
	if _, ok := s.store.Course(req.CourseID); !ok {
		return 0, fmt.Errorf("course not found")
	}
	op := operation{kind: models.EntityModule, action: "create", reload: true}
	return s.run(ctx, op, func(ctx context.Context) (int, error) {
		return s.backend.CreateModule(ctx, req)
	})
}

// UpdateModule updates a module of the snapshot
func (s *catalogService) UpdateModule(ctx context.Context, id int, req *models.UpdateModuleRequest) error {
	if _, ok := s.store.Module(id); !ok {
		return fmt.Errorf("module not found")
	}
	op := operation{kind: models.EntityModule, action: "update", entityID: id, reload: true}
	_, err := s.run(ctx, op, func(ctx context.Context) (int, error) {
		return 0, s.backend.UpdateModule(ctx, id, req)
	})
	return err
}

// CreateContent creates a content item in a module of the snapshot
func (s *catalogService) CreateContent(ctx context.Context, req *models.CreateContentRequest) (int, error) {
	if _, ok := s.store.Module(req.ModuleID); !ok {
		return 0, fmt.Errorf("module not found")
	}
	op := operation{kind: models.EntityContent, action: "create", reload: true}
	return s.run(ctx, op, func(ctx context.Context) (int, error) {
		return s.backend.CreateContent(ctx, req)
	})
}

// UpdateContent updates a content item of the snapshot. The content type never changes.
func (s *catalogService) UpdateContent(ctx context.Context, id int, req *models.UpdateContentRequest) error {
	content, ok := s.store.Content(id)
	if !ok {
		return fmt.Errorf("content not found")
	}
	if req.Body != nil && req.Body.Type() != content.ContentType {
		return fmt.Errorf("body does not match content type '%s'", content.ContentType)
	}
	op := operation{kind: models.EntityContent, action: "update", entityID: id, reload: true}
	_, err := s.run(ctx, op, func(ctx context.Context) (int, error) {
		return 0, s.backend.UpdateContent(ctx, id, req)
	})
	return err
}

// ListExams retrieves the exam type taxonomy used as the course exam type source
func (s *catalogService) ListExams(ctx context.Context) ([]models.Exam, error) {
	return s.backend.ListExams(ctx)
}

// CreateExam creates an exam type
func (s *catalogService) CreateExam(ctx context.Context, req *models.CreateExamRequest) (int, error) {
	op := operation{kind: models.EntityExam, action: "create"}
	return s.run(ctx, op, func(ctx context.Context) (int, error) {
		return s.backend.CreateExam(ctx, req)
	})
}

// UpdateExam updates an exam type
func (s *catalogService) UpdateExam(ctx context.Context, id int, req *models.UpdateExamRequest) error {
	op := operation{kind: models.EntityExam, action: "update", entityID: id}
	_, err := s.run(ctx, op, func(ctx context.Context) (int, error) {
		return 0, s.backend.UpdateExam(ctx, id, req)
	})
	return err
}

// Upload stores a file on the backend and returns its URL and size
func (s *catalogService) Upload(ctx context.Context, filename string, file io.Reader) (*models.UploadResult, error) {
	var result *models.UploadResult
	op := operation{
		kind:    models.EntityUpload,
		action:  "upload",
		subject: fmt.Sprintf("file %s", filename),
		success: fmt.Sprintf("File %s uploaded", filename),
	}
	_, err := s.run(ctx, op, func(ctx context.Context) (int, error) {
		var err error
		result, err = s.backend.Upload(ctx, filename, file)
		return 0, err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// errorMessage returns the message of err suited for a notification
func errorMessage(err error) string {
	if reqErr, ok := apiclient.AsRequestError(err); ok {
		return reqErr.Message
	}
	return err.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func pastTense(action string) string {
	switch action {
	case "create":
		return "created"
	case "update":
		return "updated"
	case "delete":
		return "deleted"
	case "restore":
		return "restored"
	case "publish":
		return "published"
	case "unpublish":
		return "unpublished"
	default:
		return action + " done"
	}
}

// versionHistory returns the version history of a content item of the snapshot
func (s *catalogService) versionHistory(contentID int) ([]models.ContentVersion, error) {
	if _, ok := s.store.Content(contentID); !ok {
		return nil, fmt.Errorf("content not found")
	}
	return s.store.Versions(contentID), nil
}

// ListVersions returns the version history of a content item, newest first
func (s *catalogService) ListVersions(ctx context.Context, contentID int) ([]models.ContentVersion, *models.ContentVersion, error) {
	history, err := s.versionHistory(contentID)
	if err != nil {
		return nil, nil, err
	}
	var current *models.ContentVersion
	if v, ok := versioning.CurrentVersion(history); ok {
		current = &v
	}
	versioning.SortNewestFirst(history)
	return history, current, nil
}
