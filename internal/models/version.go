package models

import "time"

// VersionStatus represents the status of a content version
type VersionStatus string

const (
	VersionStatusDraft     VersionStatus = "draft"
	VersionStatusPublished VersionStatus = "published"
)

// ContentVersion is an immutable snapshot of a content file.
// Only Status may change after creation.
type ContentVersion struct {
	ID        int           `json:"id"`
	ContentID int           `json:"content_id"`
	Version   string        `json:"version"`
	Changelog string        `json:"changelog"`
	FileURL   string        `json:"file_url"`
	FileSize  string        `json:"file_size"`
	Author    string        `json:"author"`
	Status    VersionStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// CreateVersionRequest represents a request to create a content version
type CreateVersionRequest struct {
	Version   string        `json:"version"`
	Changelog string        `json:"changelog"`
	FileURL   string        `json:"file_url"`
	FileSize  string        `json:"file_size"`
	Author    string        `json:"author,omitempty"`
	Status    VersionStatus `json:"status"`
}

// UpdateVersionStatusRequest represents a status transition of a content version
type UpdateVersionStatusRequest struct {
	Status VersionStatus `json:"status"`
}
