package services

import (
	"context"

	"github.com/examdesk/admin-console/internal/models"
)

// ActivityReader defines read access to the activity log
type ActivityReader interface {
	// GetAll retrieves a page of activity entries, newest first
	//
	// "ctx" is the context for the request.
	// "page" is the page number to retrieve.
	// "count" is the number of items per page.
	// "kind" filters by entity kind; empty for every kind.
	//
	// Returns a list of entries and an error if any.
	GetAll(ctx context.Context, page, count int, kind models.EntityKind) ([]models.ActivityEntry, error)
}

type activityService struct {
	repo ActivityReader
}

// NewActivityService creates a new activity service
func NewActivityService(repo ActivityReader) *activityService {
	return &activityService{repo: repo}
}

// GetActivity retrieves a page of the activity log
func (s *activityService) GetActivity(ctx context.Context, page, count int, kind models.EntityKind) ([]models.ActivityEntry, error) {
	if page < 1 {
		page = 1
	}
	if count < 1 {
		count = 20
	}
	if count > 100 {
		count = 100
	}

	entries, err := s.repo.GetAll(ctx, page, count, kind)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.ActivityEntry{}
	}
	return entries, nil
}
