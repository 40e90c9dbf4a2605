package apiclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/examdesk/admin-console/internal/models"
)

const uploadPath = "/uploads"

// Upload sends a file as multipart form data and returns the stored file URL and size
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (*models.UploadResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, file).
		Post(uploadPath)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", http.MethodPost, uploadPath, err)
	}

	var result models.UploadResult
	if err := c.handle(resp, http.MethodPost, uploadPath, &result); err != nil {
		return nil, err
	}
	if result.URL == "" {
		return nil, errors.New("upload response did not contain a file url")
	}
	return &result, nil
}
