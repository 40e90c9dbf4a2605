package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/examdesk/admin-console/internal/models"
)

// ListExams handles GET /exams
func (c *Client) ListExams(ctx context.Context) ([]models.Exam, error) {
	var exams []models.Exam
	if err := c.do(ctx, http.MethodGet, "/exams", nil, nil, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

// CreateExam handles POST /exams
func (c *Client) CreateExam(ctx context.Context, req *models.CreateExamRequest) (int, error) {
	return c.create(ctx, "/exams", req)
}

// UpdateExam handles PUT /exams/{id}
func (c *Client) UpdateExam(ctx context.Context, id int, req *models.UpdateExamRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/exams/%d", id), nil, req, nil)
}

// DeleteExam handles DELETE /exams/{id}
func (c *Client) DeleteExam(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/exams/%d", id), nil, nil, nil)
}
