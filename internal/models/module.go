package models

// Module represents a section of a course
type Module struct {
	ID          int    `json:"id"`
	CourseID    int    `json:"course_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
	Duration    string `json:"duration"`
}

// CreateModuleRequest represents a request to create a module
type CreateModuleRequest struct {
	CourseID    int    `json:"course_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
	Duration    string `json:"duration"`
}

// UpdateModuleRequest represents a request to update a module.
// Description and duration are always sent so they can be cleared.
type UpdateModuleRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
	OrderIndex  *int   `json:"order_index,omitempty"`
	Duration    string `json:"duration"`
}
