package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		expectedBody  ContentBody
		expectedError bool
	}{
		{
			name:    "quiz body",
			payload: `{"id":3,"module_id":2,"title":"Kinematics quiz","content_type":"quiz","status":"draft","body":{"questions":[{"question":"2+2?","options":[{"text":"4","is_correct":true},{"text":"5"}]}],"pass_percentage":60}}`,
			expectedBody: &QuizBody{
				Questions: []QuizQuestion{{
					Question: "2+2?",
					Options:  []QuizOption{{Text: "4", IsCorrect: true}, {Text: "5"}},
				}},
				PassPercentage: 60,
			},
		},
		{
			name:         "document body keeps its kind",
			payload:      `{"id":4,"content_type":"document","body":{"file_url":"https://cdn/notes.pdf","file_size":"1.2 MB"}}`,
			expectedBody: &FileBody{Kind: ContentTypeDocument, FileURL: "https://cdn/notes.pdf", FileSize: "1.2 MB"},
		},
		{
			name:         "missing body",
			payload:      `{"id":5,"content_type":"video"}`,
			expectedBody: nil,
		},
		{
			name:         "body of unknown type is dropped",
			payload:      `{"id":6,"content_type":"pdf","body":{"x":1}}`,
			expectedBody: nil,
		},
		{
			name:          "malformed quiz body",
			payload:       `{"id":7,"content_type":"quiz","body":[1,2]}`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var content Content
			err := json.Unmarshal([]byte(tt.payload), &content)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedBody, content.Body)
		})
	}
}

func TestContent_UnmarshalJSONUnknownTypeKeepsFields(t *testing.T) {
	var contents []Content
	payload := `[{"id":8,"module_id":2,"title":"Syllabus","content_type":"pdf","status":"published","body":{"url":"https://cdn/s.pdf"}},{"id":9,"module_id":2,"title":"Intro","content_type":"video","body":{"file_url":"https://cdn/intro.mp4"}}]`

	err := json.Unmarshal([]byte(payload), &contents)

	require.NoError(t, err)
	require.Len(t, contents, 2)
	assert.Equal(t, 8, contents[0].ID)
	assert.Equal(t, "Syllabus", contents[0].Title)
	assert.Equal(t, ContentType("pdf"), contents[0].ContentType)
	assert.False(t, contents[0].ContentType.IsValid())
	assert.Nil(t, contents[0].Body)
	assert.NotNil(t, contents[1].Body)
}

func TestContent_MarshalJSONRoundTripsBodyType(t *testing.T) {
	content := Content{
		ID:          1,
		ModuleID:    2,
		Title:       "Lecture",
		ContentType: ContentTypeVideo,
		Status:      ContentStatusPublished,
		Body:        &VideoBody{FileURL: "https://cdn/v.mp4", DurationSeconds: 90},
	}

	data, err := json.Marshal(content)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"body":{"file_url":"https://cdn/v.mp4","duration_seconds":90}`)

	var decoded Content
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, content, decoded)
}

func TestQuizBody_Validate(t *testing.T) {
	valid := QuizQuestion{Question: "Q", Options: []QuizOption{{Text: "a", IsCorrect: true}, {Text: "b"}}}

	tests := []struct {
		name          string
		body          QuizBody
		errorContains string
	}{
		{name: "valid", body: QuizBody{Questions: []QuizQuestion{valid}, PassPercentage: 50}},
		{name: "no questions", body: QuizBody{}, errorContains: "at least one question"},
		{
			name:          "no correct option",
			body:          QuizBody{Questions: []QuizQuestion{{Question: "Q", Options: []QuizOption{{Text: "a"}, {Text: "b"}}}}},
			errorContains: "question 1: at least one option must be correct",
		},
		{
			name:          "single option",
			body:          QuizBody{Questions: []QuizQuestion{valid, {Question: "Q2", Options: []QuizOption{{Text: "a", IsCorrect: true}}}}},
			errorContains: "question 2: at least two options",
		},
		{
			name:          "pass percentage out of range",
			body:          QuizBody{Questions: []QuizQuestion{valid}, PassPercentage: 101},
			errorContains: "pass percentage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.body.Validate()
			if tt.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errorContains)
		})
	}
}
