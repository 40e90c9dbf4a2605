package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/examdesk/admin-console/internal/models"
	"github.com/examdesk/admin-console/internal/versioning"
)

// NextVersion returns the label the next version of a content item will get
func (s *catalogService) NextVersion(ctx context.Context, contentID int) (string, error) {
	history, err := s.versionHistory(contentID)
	if err != nil {
		return "", err
	}
	return versioning.NextVersionOf(history)
}

// CreateVersion creates a version of a content item. The label must be valid
// and not yet used by the content item.
func (s *catalogService) CreateVersion(ctx context.Context, contentID int, req *models.CreateVersionRequest) (int, error) {
	history, err := s.versionHistory(contentID)
	if err != nil {
		return 0, err
	}
	if _, err := versioning.ParseLabel(req.Version); err != nil {
		return 0, err
	}
	if slices.Contains(versioning.Labels(history), req.Version) {
		return 0, fmt.Errorf("version %s already exists", req.Version)
	}

	op := operation{kind: models.EntityVersion, action: "create", reload: true}
	return s.run(ctx, op, func(ctx context.Context) (int, error) {
		return s.backend.CreateVersion(ctx, contentID, req)
	})
}

// SetVersionStatus publishes or unpublishes a version
func (s *catalogService) SetVersionStatus(ctx context.Context, contentID, versionID int, status models.VersionStatus) error {
	if status != models.VersionStatusDraft && status != models.VersionStatusPublished {
		return fmt.Errorf("invalid version status '%s'", status)
	}
	history, err := s.versionHistory(contentID)
	if err != nil {
		return err
	}
	if _, ok := findVersion(history, versionID); !ok {
		return fmt.Errorf("version not found")
	}

	action := "publish"
	if status == models.VersionStatusDraft {
		action = "unpublish"
	}
	op := operation{kind: models.EntityVersion, action: action, entityID: versionID, reload: true}
	_, err = s.run(ctx, op, func(ctx context.Context) (int, error) {
		return 0, s.backend.UpdateVersionStatus(ctx, contentID, versionID, status)
	})
	return err
}

// RestoreVersion creates a new published version copying the file of versionID.
// The new label follows the whole history, so no label is ever reused.
func (s *catalogService) RestoreVersion(ctx context.Context, contentID, versionID int, author string) (int, error) {
	history, err := s.versionHistory(contentID)
	if err != nil {
		return 0, err
	}
	target, ok := findVersion(history, versionID)
	if !ok {
		return 0, fmt.Errorf("version not found")
	}
	req, err := versioning.RestoreRequest(history, target, author)
	if err != nil {
		return 0, err
	}

	op := operation{
		kind:     models.EntityVersion,
		action:   "restore",
		entityID: versionID,
		reload:   true,
		success:  fmt.Sprintf("Version %s restored as %s", target.Version, req.Version),
	}
	return s.run(ctx, op, func(ctx context.Context) (int, error) {
		return s.backend.CreateVersion(ctx, contentID, req)
	})
}

func findVersion(history []models.ContentVersion, versionID int) (models.ContentVersion, bool) {
	for _, v := range history {
		if v.ID == versionID {
			return v, true
		}
	}
	return models.ContentVersion{}, false
}
