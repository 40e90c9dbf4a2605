package models

import "time"

// EntityKind names a kind of catalog entity handled by the console
type EntityKind string

const (
	EntityCourse  EntityKind = "course"
	EntityModule  EntityKind = "module"
	EntityContent EntityKind = "content"
	EntityVersion EntityKind = "version"
	EntityExam    EntityKind = "exam"
	EntityUpload  EntityKind = "upload"
)

// ActivityOutcome is the result of an administrator action
type ActivityOutcome string

const (
	ActivityOutcomeSucceeded ActivityOutcome = "succeeded"
	ActivityOutcomeFailed    ActivityOutcome = "failed"
)

// ActivityEntry records one mutation performed through the console
type ActivityEntry struct {
	ID         int             `json:"id"`
	Kind       EntityKind      `json:"kind"`
	Action     string          `json:"action"`
	EntityID   int             `json:"entity_id"`
	Outcome    ActivityOutcome `json:"outcome"`
	HTTPStatus int             `json:"http_status,omitempty"`
	Error      string          `json:"error,omitempty"`
	RequestID  string          `json:"request_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
