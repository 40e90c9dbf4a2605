package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// ContentType represents the type of a content item
type ContentType string

const (
	ContentTypeDocument ContentType = "document"
	ContentTypeVideo    ContentType = "video"
	ContentTypeImage    ContentType = "image"
	ContentTypeQuiz     ContentType = "quiz"
)

// ContentTypes lists the valid content types
var ContentTypes = []ContentType{ContentTypeDocument, ContentTypeVideo, ContentTypeImage, ContentTypeQuiz}

// IsValid reports whether t is a known content type
func (t ContentType) IsValid() bool {
	return slices.Contains(ContentTypes, t)
}

// ContentStatus represents the publication status of a content item
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

// Content represents a content item within a module.
// Body holds the fields specific to ContentType and may be nil.
type Content struct {
	ID          int           `json:"id"`
	ModuleID    int           `json:"module_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ContentType ContentType   `json:"content_type"`
	Status      ContentStatus `json:"status"`
	Body        ContentBody   `json:"-"`
}

type contentJSON struct {
	ID          int             `json:"id"`
	ModuleID    int             `json:"module_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ContentType ContentType     `json:"content_type"`
	Status      ContentStatus   `json:"status"`
	Body        json.RawMessage `json:"body,omitempty"`
}

// MarshalJSON encodes the body under "body" next to its content type
func (c Content) MarshalJSON() ([]byte, error) {
	raw, err := marshalBody(c.Body)
	if err != nil {
		return nil, err
	}
	return json.Marshal(contentJSON{
		ID:          c.ID,
		ModuleID:    c.ModuleID,
		Title:       c.Title,
		Description: c.Description,
		ContentType: c.ContentType,
		Status:      c.Status,
		Body:        raw,
	})
}

// UnmarshalJSON decodes the body variant selected by content_type.
// Content of a type the console does not know keeps its fields and gets a nil body.
func (c *Content) UnmarshalJSON(data []byte) error {
	var aux contentJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var body ContentBody
	if aux.ContentType.IsValid() {
		decoded, err := DecodeContentBody(aux.ContentType, aux.Body)
		if err != nil {
			return err
		}
		body = decoded
	}
	*c = Content{
		ID:          aux.ID,
		ModuleID:    aux.ModuleID,
		Title:       aux.Title,
		Description: aux.Description,
		ContentType: aux.ContentType,
		Status:      aux.Status,
		Body:        body,
	}
	return nil
}

// CreateContentRequest represents a request to create a content item
type CreateContentRequest struct {
	ModuleID    int           `json:"module_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ContentType ContentType   `json:"content_type"`
	Status      ContentStatus `json:"status"`
	Body        ContentBody   `json:"-"`
}

type createContentJSON struct {
	ModuleID    int             `json:"module_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ContentType ContentType     `json:"content_type"`
	Status      ContentStatus   `json:"status"`
	Body        json.RawMessage `json:"body,omitempty"`
}

// MarshalJSON encodes the body under "body"
func (r CreateContentRequest) MarshalJSON() ([]byte, error) {
	raw, err := marshalBody(r.Body)
	if err != nil {
		return nil, err
	}
	return json.Marshal(createContentJSON{
		ModuleID:    r.ModuleID,
		Title:       r.Title,
		Description: r.Description,
		ContentType: r.ContentType,
		Status:      r.Status,
		Body:        raw,
	})
}

// UnmarshalJSON decodes the body variant selected by content_type
func (r *CreateContentRequest) UnmarshalJSON(data []byte) error {
	var aux createContentJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	body, err := DecodeContentBody(aux.ContentType, aux.Body)
	if err != nil {
		return err
	}
	*r = CreateContentRequest{
		ModuleID:    aux.ModuleID,
		Title:       aux.Title,
		Description: aux.Description,
		ContentType: aux.ContentType,
		Status:      aux.Status,
		Body:        body,
	}
	return nil
}

// UpdateContentRequest represents a request to update a content item.
// Description is always sent so it can be cleared.
// The content type of an existing item never changes; Body must match it.
type UpdateContentRequest struct {
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description"`
	Status      ContentStatus `json:"status,omitempty"`
	Body        ContentBody   `json:"-"`
}

type updateContentJSON struct {
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description"`
	Status      ContentStatus   `json:"status,omitempty"`
	Body        json.RawMessage `json:"body,omitempty"`
}

// MarshalJSON encodes the body under "body"
func (r UpdateContentRequest) MarshalJSON() ([]byte, error) {
	raw, err := marshalBody(r.Body)
	if err != nil {
		return nil, err
	}
	return json.Marshal(updateContentJSON{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Body:        raw,
	})
}

func marshalBody(body ContentBody) (json.RawMessage, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s body: %w", body.Type(), err)
	}
	return raw, nil
}
