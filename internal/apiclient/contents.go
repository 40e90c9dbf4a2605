package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/examdesk/admin-console/internal/models"
)

// ListContents handles GET /contents?module_id=
func (c *Client) ListContents(ctx context.Context, moduleID int) ([]models.Content, error) {
	var contents []models.Content
	query := map[string]string{"module_id": strconv.Itoa(moduleID)}
	if err := c.do(ctx, http.MethodGet, "/contents", query, nil, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

// CreateContent handles POST /contents
func (c *Client) CreateContent(ctx context.Context, req *models.CreateContentRequest) (int, error) {
	return c.create(ctx, "/contents", req)
}

// UpdateContent handles PUT /contents/{id}
func (c *Client) UpdateContent(ctx context.Context, id int, req *models.UpdateContentRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/contents/%d", id), nil, req, nil)
}

// DeleteContent handles DELETE /contents/{id}
func (c *Client) DeleteContent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/contents/%d", id), nil, nil, nil)
}

// ListVersions handles GET /contents/{id}/versions
func (c *Client) ListVersions(ctx context.Context, contentID int) ([]models.ContentVersion, error) {
	var versions []models.ContentVersion
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/contents/%d/versions", contentID), nil, nil, &versions); err != nil {
		return nil, err
	}
	for i := range versions {
		if versions[i].ContentID == 0 {
			versions[i].ContentID = contentID
		}
	}
	return versions, nil
}

// CreateVersion handles POST /contents/{id}/versions
func (c *Client) CreateVersion(ctx context.Context, contentID int, req *models.CreateVersionRequest) (int, error) {
	return c.create(ctx, fmt.Sprintf("/contents/%d/versions", contentID), req)
}

// UpdateVersionStatus handles PUT /contents/{id}/versions/{versionId}
func (c *Client) UpdateVersionStatus(ctx context.Context, contentID, versionID int, status models.VersionStatus) error {
	path := fmt.Sprintf("/contents/%d/versions/%d", contentID, versionID)
	return c.do(ctx, http.MethodPut, path, nil, &models.UpdateVersionStatusRequest{Status: status}, nil)
}
