package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ContentBody holds the fields specific to one content type
type ContentBody interface {
	// Type returns the content type the body belongs to
	Type() ContentType
	// Validate checks the body is complete enough to be submitted
	Validate() error
}

// FileBody is the body of document and image content: a file attachment
type FileBody struct {
	Kind     ContentType `json:"-"`
	FileURL  string      `json:"file_url"`
	FileSize string      `json:"file_size,omitempty"`
}

// Type implements ContentBody
func (b *FileBody) Type() ContentType { return b.Kind }

// Validate implements ContentBody
func (b *FileBody) Validate() error {
	if b.FileURL == "" {
		return errors.New("file is required")
	}
	return nil
}

// VideoBody is the body of video content
type VideoBody struct {
	FileURL         string `json:"file_url"`
	FileSize        string `json:"file_size,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

// Type implements ContentBody
func (b *VideoBody) Type() ContentType { return ContentTypeVideo }

// Validate implements ContentBody
func (b *VideoBody) Validate() error {
	if b.FileURL == "" {
		return errors.New("video file is required")
	}
	if b.DurationSeconds < 0 {
		return errors.New("video duration must not be negative")
	}
	return nil
}

// QuizOption is one answer option of a quiz question
type QuizOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuizQuestion is a multiple choice question
type QuizQuestion struct {
	Question    string       `json:"question"`
	Options     []QuizOption `json:"options"`
	Explanation string       `json:"explanation,omitempty"`
}

// QuizBody is the body of quiz content
type QuizBody struct {
	Questions      []QuizQuestion `json:"questions"`
	PassPercentage int            `json:"pass_percentage,omitempty"`
}

// Type implements ContentBody
func (b *QuizBody) Type() ContentType { return ContentTypeQuiz }

// Validate implements ContentBody
func (b *QuizBody) Validate() error {
	if len(b.Questions) == 0 {
		return errors.New("quiz must have at least one question")
	}
	if b.PassPercentage < 0 || b.PassPercentage > 100 {
		return errors.New("pass percentage must be between 0 and 100")
	}
	for i, q := range b.Questions {
		if q.Question == "" {
			return fmt.Errorf("question %d: text is required", i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d: at least two options are required", i+1)
		}
		correct := 0
		for j, o := range q.Options {
			if o.Text == "" {
				return fmt.Errorf("question %d: option %d text is required", i+1, j+1)
			}
			if o.IsCorrect {
				correct++
			}
		}
		if correct == 0 {
			return fmt.Errorf("question %d: at least one option must be correct", i+1)
		}
	}
	return nil
}

// NewContentBody returns an empty body for the given content type
func NewContentBody(contentType ContentType) (ContentBody, error) {
	switch contentType {
	case ContentTypeDocument, ContentTypeImage:
		return &FileBody{Kind: contentType}, nil
	case ContentTypeVideo:
		return &VideoBody{}, nil
	case ContentTypeQuiz:
		return &QuizBody{}, nil
	default:
		return nil, fmt.Errorf("invalid content type '%s'", contentType)
	}
}

// DecodeContentBody decodes raw JSON into the body variant of contentType.
// Empty or null input yields a nil body.
func DecodeContentBody(contentType ContentType, raw json.RawMessage) (ContentBody, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	body, err := NewContentBody(contentType)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, body); err != nil {
		return nil, fmt.Errorf("failed to decode %s body: %w", contentType, err)
	}
	return body, nil
}
