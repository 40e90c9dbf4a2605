package models

// CourseStatus represents the publication status of a course
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusPublished CourseStatus = "published"
	CourseStatusArchived  CourseStatus = "archived"
)

// CourseStatuses lists the valid course statuses
var CourseStatuses = []CourseStatus{CourseStatusDraft, CourseStatusPublished, CourseStatusArchived}

// Course represents a course of the catalog
type Course struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ExamType    string       `json:"exam_type"`
	Instructor  string       `json:"instructor"`
	Duration    string       `json:"duration"`
	Status      CourseStatus `json:"status"`
}

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ExamType    string       `json:"exam_type"`
	Instructor  string       `json:"instructor"`
	Duration    string       `json:"duration"`
	Status      CourseStatus `json:"status"`
}

// UpdateCourseRequest represents a request to update a course.
// Optional text fields are always sent so an emptied field clears the stored value.
type UpdateCourseRequest struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description"`
	ExamType    string       `json:"exam_type"`
	Instructor  string       `json:"instructor"`
	Duration    string       `json:"duration"`
	Status      CourseStatus `json:"status,omitempty"`
}
