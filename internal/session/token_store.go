// Package session persists the administrator's bearer token between restarts
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/examdesk/admin-console/internal/models"
)

// TokenStore keeps the bearer token in memory and mirrors it to a local file
type TokenStore struct {
	mu    sync.RWMutex
	path  string
	token string
	now   func() time.Time
}

// NewTokenStore opens the store backed by path, loading a previously saved token if any
func NewTokenStore(path string) (*TokenStore, error) {
	s := &TokenStore{path: path, now: time.Now}
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read session token: %w", err)
	}
	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Token returns the stored token, or "" when there is none or it has expired
func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return ""
	}
	claims, err := InspectToken(s.token)
	if err == nil && claims.Expired(s.now()) {
		return ""
	}
	return s.token
}

// Set stores token and persists it
func (s *TokenStore) Set(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}
	s.token = token
	return nil
}

// Clear removes the token from memory and storage
func (s *TokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session token: %w", err)
	}
	return nil
}

// Info describes the stored session
func (s *TokenStore) Info() models.SessionInfo {
	token := s.Token()
	if token == "" {
		return models.SessionInfo{}
	}
	info := models.SessionInfo{Authenticated: true}
	claims, err := InspectToken(token)
	if err != nil {
		// opaque tokens carry no claims
		return info
	}
	info.UserID = claims.UserID
	info.Role = claims.Role
	info.ExpiresAt = claims.ExpiresAt
	return info
}
