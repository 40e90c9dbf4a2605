package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/examdesk/admin-console/internal/models"
)

// Login handles POST /auth/login and returns the issued bearer token
func (c *Client) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("login response did not contain a token")
	}
	return resp.Token, nil
}
