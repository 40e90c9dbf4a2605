package versioning

import (
	"testing"
	"time"

	"github.com/examdesk/admin-console/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextVersion(t *testing.T) {
	tests := []struct {
		name          string
		labels        []string
		expected      string
		expectedError bool
	}{
		{name: "empty history", labels: nil, expected: "1.0"},
		{name: "single label", labels: []string{"1.0"}, expected: "1.1"},
		{name: "single later label", labels: []string{"2.3"}, expected: "2.4"},
		{name: "major bump wins", labels: []string{"1.0", "1.1", "2.0"}, expected: "2.1"},
		{name: "non contiguous minors", labels: []string{"1.0", "1.5", "1.2"}, expected: "1.6"},
		{name: "greatest first in list", labels: []string{"3.1", "1.9", "2.7"}, expected: "3.2"},
		{name: "numeric not lexicographic", labels: []string{"1.9", "1.10"}, expected: "1.11"},
		{name: "invalid label", labels: []string{"1.0", "v2"}, expectedError: true},
		{name: "three components", labels: []string{"1.0.1"}, expectedError: true},
		{name: "negative component", labels: []string{"1.-1"}, expectedError: true},
		{name: "minor at int limit", labels: []string{"1.0", "1.9223372036854775807"}, expectedError: true},
		{name: "major past minor limit", labels: []string{"1.9223372036854775807", "2.4"}, expected: "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NextVersion(tt.labels)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid version label")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNextVersion_Idempotent(t *testing.T) {
	labels := []string{"1.0", "1.5", "1.2"}

	first, err := NextVersion(labels)
	require.NoError(t, err)
	second, err := NextVersion(labels)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"1.0", "1.5", "1.2"}, labels)
}

func TestCurrentVersion(t *testing.T) {
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		versions []models.ContentVersion
		expected string
		found    bool
	}{
		{name: "no versions", versions: nil, found: false},
		{
			name: "published beats numerically greater draft",
			versions: []models.ContentVersion{
				{Version: "2.0", Status: models.VersionStatusDraft, CreatedAt: base.Add(time.Hour)},
				{Version: "1.0", Status: models.VersionStatusPublished, CreatedAt: base},
			},
			expected: "1.0",
			found:    true,
		},
		{
			name: "most recent published",
			versions: []models.ContentVersion{
				{Version: "1.0", Status: models.VersionStatusPublished, CreatedAt: base},
				{Version: "1.1", Status: models.VersionStatusPublished, CreatedAt: base.Add(2 * time.Hour)},
				{Version: "1.2", Status: models.VersionStatusDraft, CreatedAt: base.Add(3 * time.Hour)},
			},
			expected: "1.1",
			found:    true,
		},
		{
			name: "same timestamp breaks tie by label",
			versions: []models.ContentVersion{
				{Version: "1.3", Status: models.VersionStatusPublished, CreatedAt: base},
				{Version: "1.4", Status: models.VersionStatusPublished, CreatedAt: base},
			},
			expected: "1.4",
			found:    true,
		},
		{
			name: "falls back to first in list",
			versions: []models.ContentVersion{
				{Version: "1.1", Status: models.VersionStatusDraft},
				{Version: "1.0", Status: models.VersionStatusDraft},
			},
			expected: "1.1",
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, ok := CurrentVersion(tt.versions)

			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, current.Version)
		})
	}
}

func TestRestoreRequest(t *testing.T) {
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	history := []models.ContentVersion{
		{ID: 1, Version: "1.0", FileURL: "https://cdn/a.pdf", FileSize: "1 MB", Status: models.VersionStatusPublished, CreatedAt: base},
		{ID: 2, Version: "1.1", FileURL: "https://cdn/b.pdf", FileSize: "2 MB", Status: models.VersionStatusPublished, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Version: "1.2", FileURL: "https://cdn/c.pdf", FileSize: "3 MB", Status: models.VersionStatusPublished, CreatedAt: base.Add(2 * time.Hour)},
	}

	t.Run("restoring the latest version", func(t *testing.T) {
		req, err := RestoreRequest(history, history[2], "admin")
		require.NoError(t, err)

		assert.Equal(t, "1.3", req.Version)
		assert.Equal(t, models.VersionStatusPublished, req.Status)
		assert.Equal(t, "https://cdn/c.pdf", req.FileURL)
		assert.Equal(t, "3 MB", req.FileSize)
		assert.Equal(t, "Restored from version 1.2", req.Changelog)

		restored := append(append([]models.ContentVersion{}, history...), models.ContentVersion{
			ID: 4, Version: req.Version, Status: req.Status, CreatedAt: base.Add(3 * time.Hour),
		})
		current, ok := CurrentVersion(restored)
		require.True(t, ok)
		assert.Equal(t, "1.3", current.Version)
	})

	t.Run("restoring an old version never reuses a label", func(t *testing.T) {
		req, err := RestoreRequest(history, history[0], "admin")
		require.NoError(t, err)

		assert.Equal(t, "1.3", req.Version)
		assert.Equal(t, "https://cdn/a.pdf", req.FileURL)
	})
}

func TestSortNewestFirst(t *testing.T) {
	versions := []models.ContentVersion{
		{Version: "1.2"}, {Version: "broken"}, {Version: "2.0"}, {Version: "1.10"},
	}

	SortNewestFirst(versions)

	assert.Equal(t, []string{"2.0", "1.10", "1.2", "broken"}, Labels(versions))
}
