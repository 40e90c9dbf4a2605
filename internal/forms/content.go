package forms

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/examdesk/admin-console/internal/models"
)

// ContentMutator defines the mutations a content form submits to
type ContentMutator interface {
	CreateContent(ctx context.Context, req *models.CreateContentRequest) (int, error)
	UpdateContent(ctx context.Context, id int, req *models.UpdateContentRequest) error
}

// ContentDraft is the content create/edit form.
// Body holds the fields of the selected content type.
type ContentDraft struct {
	ID          int                  `json:"id,omitempty" validate:"-"`
	ModuleID    int                  `json:"module_id" validate:"gt=0"`
	Title       string               `json:"title" validate:"notblank"`
	Description string               `json:"description"`
	ContentType models.ContentType   `json:"content_type" validate:"oneof=document video image quiz"`
	Status      models.ContentStatus `json:"status" validate:"oneof=draft published"`
	Body        models.ContentBody   `json:"-" validate:"-"`
}

type contentDraftJSON struct {
	ID          int                  `json:"id,omitempty"`
	ModuleID    int                  `json:"module_id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	ContentType models.ContentType   `json:"content_type"`
	Status      models.ContentStatus `json:"status"`
	Body        json.RawMessage      `json:"body,omitempty"`
}

// NewContentDraft initializes the form from content, or as a draft document of moduleID
func NewContentDraft(moduleID int, content *models.Content) *ContentDraft {
	if content == nil {
		return &ContentDraft{
			ModuleID:    moduleID,
			ContentType: models.ContentTypeDocument,
			Status:      models.ContentStatusDraft,
		}
	}
	return &ContentDraft{
		ID:          content.ID,
		ModuleID:    content.ModuleID,
		Title:       content.Title,
		Description: content.Description,
		ContentType: content.ContentType,
		Status:      content.Status,
		Body:        content.Body,
	}
}

// MarshalJSON encodes the body under "body"
func (d ContentDraft) MarshalJSON() ([]byte, error) {
	var raw json.RawMessage
	if d.Body != nil {
		b, err := json.Marshal(d.Body)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return json.Marshal(contentDraftJSON{
		ID:          d.ID,
		ModuleID:    d.ModuleID,
		Title:       d.Title,
		Description: d.Description,
		ContentType: d.ContentType,
		Status:      d.Status,
		Body:        raw,
	})
}

// UnmarshalJSON decodes the body variant selected by content_type
func (d *ContentDraft) UnmarshalJSON(data []byte) error {
	var aux contentDraftJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var body models.ContentBody
	if aux.ContentType.IsValid() {
		decoded, err := models.DecodeContentBody(aux.ContentType, aux.Body)
		if err != nil {
			return err
		}
		body = decoded
	}
	*d = ContentDraft{
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

// Kind implements Draft
func (d *ContentDraft) Kind() Kind { return KindContent }

// IsEdit implements Draft
func (d *ContentDraft) IsEdit() bool { return d.ID != 0 }

// validateBody checks the content-type-specific fields. A quiz needs its questions;
// other types may leave the body empty and attach files through versions.
func (d *ContentDraft) validateBody(errs FieldErrors) {
	if !d.ContentType.IsValid() {
		return
	}
	if d.Body == nil {
		if d.ContentType == models.ContentTypeQuiz {
			errs["body"] = "quiz questions are required"
		}
		return
	}
	if d.Body.Type() != d.ContentType {
		errs["body"] = "body does not match content type"
		return
	}
	if err := d.Body.Validate(); err != nil {
		errs["body"] = err.Error()
	}
}

// ToCreate converts the draft into a create request
func (d *ContentDraft) ToCreate() *models.CreateContentRequest {
	return &models.CreateContentRequest{
		ModuleID:    d.ModuleID,
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		ContentType: d.ContentType,
		Status:      d.Status,
		Body:        d.Body,
	}
}

// ToUpdate converts the draft into an update request
func (d *ContentDraft) ToUpdate() *models.UpdateContentRequest {
	return &models.UpdateContentRequest{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Status:      d.Status,
		Body:        d.Body,
	}
}

// Submit validates the draft and calls the matching mutation once
func (d *ContentDraft) Submit(ctx context.Context, m ContentMutator) (int, error) {
	if errs := Validate(d); errs != nil {
		return 0, errs
	}
	if d.IsEdit() {
		return d.ID, m.UpdateContent(ctx, d.ID, d.ToUpdate())
	}
	return m.CreateContent(ctx, d.ToCreate())
}
