package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/examdesk/admin-console/internal/models"
)

// ListCourses handles GET /courses
func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(ctx, http.MethodGet, "/courses", nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateCourse handles POST /courses
func (c *Client) CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (int, error) {
	return c.create(ctx, "/courses", req)
}

// UpdateCourse handles PUT /courses/{id}
func (c *Client) UpdateCourse(ctx context.Context, id int, req *models.UpdateCourseRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/courses/%d", id), nil, req, nil)
}

// DeleteCourse handles DELETE /courses/{id}
func (c *Client) DeleteCourse(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/courses/%d", id), nil, nil, nil)
}
