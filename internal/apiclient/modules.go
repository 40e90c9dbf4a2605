package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/examdesk/admin-console/internal/models"
)

// ListModules handles GET /modules?course_id=
func (c *Client) ListModules(ctx context.Context, courseID int) ([]models.Module, error) {
	var modules []models.Module
	query := map[string]string{"course_id": strconv.Itoa(courseID)}
	if err := c.do(ctx, http.MethodGet, "/modules", query, nil, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

// CreateModule handles POST /modules
func (c *Client) CreateModule(ctx context.Context, req *models.CreateModuleRequest) (int, error) {
	return c.create(ctx, "/modules", req)
}

// UpdateModule handles PUT /modules/{id}
func (c *Client) UpdateModule(ctx context.Context, id int, req *models.UpdateModuleRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/modules/%d", id), nil, req, nil)
}

// DeleteModule handles DELETE /modules/{id}
func (c *Client) DeleteModule(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/modules/%d", id), nil, nil, nil)
}
