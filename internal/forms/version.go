package forms

import (
	"context"
	"fmt"
	"strings"

	"github.com/examdesk/admin-console/internal/models"
	"github.com/examdesk/admin-console/internal/versioning"
)

// VersionMutator defines the mutation a version form submits to
type VersionMutator interface {
	CreateVersion(ctx context.Context, contentID int, req *models.CreateVersionRequest) (int, error)
}

// VersionDraft is the form creating a new version of a content item.
// Versions are immutable, so there is no edit variant.
type VersionDraft struct {
	ContentID int                  `json:"content_id" validate:"gt=0"`
	Version   string               `json:"version" validate:"required,version_label"`
	Changelog string               `json:"changelog" validate:"notblank"`
	FileURL   string               `json:"file_url" validate:"notblank"`
	FileSize  string               `json:"file_size"`
	Author    string               `json:"author"`
	Status    models.VersionStatus `json:"status" validate:"oneof=draft published"`
}

// NewVersionDraft initializes the form with the label following the whole history of the content
func NewVersionDraft(contentID int, history []models.ContentVersion) (*VersionDraft, error) {
	next, err := versioning.NextVersionOf(history)
	if err != nil {
		return nil, fmt.Errorf("failed to derive next version: %w", err)
	}
	return &VersionDraft{
		ContentID: contentID,
		Version:   next,
		Status:    models.VersionStatusDraft,
	}, nil
}

// Kind implements Draft
func (d *VersionDraft) Kind() Kind { return KindVersion }

// IsEdit implements Draft
func (d *VersionDraft) IsEdit() bool { return false }

// ToCreate converts the draft into a create request
func (d *VersionDraft) ToCreate() *models.CreateVersionRequest {
	return &models.CreateVersionRequest{
		Version:   strings.TrimSpace(d.Version),
		Changelog: strings.TrimSpace(d.Changelog),
		FileURL:   strings.TrimSpace(d.FileURL),
		FileSize:  d.FileSize,
		Author:    strings.TrimSpace(d.Author),
		Status:    d.Status,
	}
}

// Submit validates the draft and creates the version
func (d *VersionDraft) Submit(ctx context.Context, m VersionMutator) (int, error) {
	if errs := Validate(d); errs != nil {
		return 0, errs
	}
	return m.CreateVersion(ctx, d.ContentID, d.ToCreate())
}
