package models

import "time"

// LoginRequest holds administrator credentials forwarded to the backend
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend answer to a login
type LoginResponse struct {
	Token string `json:"token"`
}

// SetTokenRequest stores an externally obtained bearer token
type SetTokenRequest struct {
	Token string `json:"token"`
}

// SessionInfo describes the currently stored session
type SessionInfo struct {
	Authenticated bool       `json:"authenticated"`
	UserID        string     `json:"user_id,omitempty"`
	Role          string     `json:"role,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}
