package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/examdesk/admin-console/internal/catalog"
	"github.com/examdesk/admin-console/internal/models"
	"go.uber.org/zap"
)

// SessionBackend defines the backend authentication endpoint
type SessionBackend interface {
	// Login exchanges administrator credentials for a bearer token
	//
	// "ctx" is the context for the request.
	// "req" holds the email and password.
	//
	// Returns the bearer token and an error if any.
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
}

// TokenStore defines the persisted bearer token storage
type TokenStore interface {
	// Set stores and persists a token
	Set(token string) error
	// Clear removes the token from memory and storage
	Clear() error
	// Info describes the stored session; expired tokens count as absent
	Info() models.SessionInfo
}

// CatalogReloader reloads the catalog snapshot
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

type sessionService struct {
	backend  SessionBackend
	tokens   TokenStore
	catalog  CatalogReloader
	notifier Notifier
	logger   *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(backend SessionBackend, tokens TokenStore, reloader CatalogReloader, notifier Notifier, logger *zap.Logger) *sessionService {
	return &sessionService{
		backend:  backend,
		tokens:   tokens,
		catalog:  reloader,
		notifier: notifier,
		logger:   logger,
	}
}

// Login signs in on the backend, stores the issued token and loads the catalog
func (s *sessionService) Login(ctx context.Context, req *models.LoginRequest) (*models.SessionInfo, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	token, err := s.backend.Login(ctx, req)
	if err != nil {
		s.notifier.Push(models.NotificationError, fmt.Sprintf("Sign in failed: %s", errorMessage(err)))
		return nil, err
	}
	return s.start(ctx, token)
}

// SetToken stores an externally obtained bearer token and loads the catalog
func (s *sessionService) SetToken(ctx context.Context, token string) (*models.SessionInfo, error) {
	return s.start(ctx, token)
}

func (s *sessionService) start(ctx context.Context, token string) (*models.SessionInfo, error) {
	if err := s.tokens.Set(token); err != nil {
		return nil, err
	}
	info := s.tokens.Info()
	if !info.Authenticated {
		if err := s.tokens.Clear(); err != nil {
			s.logger.Warn("failed to clear expired token", zap.Error(err))
		}
		return nil, fmt.Errorf("token is expired")
	}

	s.notifier.Push(models.NotificationSuccess, "Signed in")
	if err := s.catalog.Reload(ctx); err != nil && !errors.Is(err, catalog.ErrReloadSuperseded) {
		s.logger.Error("failed to load catalog after sign in", zap.Error(err))
		s.notifier.Push(models.NotificationError, fmt.Sprintf("Failed to load catalog: %s", errorMessage(err)))
	}
	return &info, nil
}

// Logout forgets the stored token
func (s *sessionService) Logout() error {
	if err := s.tokens.Clear(); err != nil {
		return err
	}
	s.notifier.Push(models.NotificationInfo, "Signed out")
	return nil
}

// Info describes the current session
func (s *sessionService) Info() models.SessionInfo {
	return s.tokens.Info()
}
