package models

// Exam is an entry of the exam-type taxonomy (JEE, NEET, UPSC...) used to tag courses
type Exam struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateExamRequest represents a request to create an exam type
type CreateExamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateExamRequest represents a request to update an exam type.
// An empty name is left unchanged, an empty description clears it.
type UpdateExamRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description"`
}
