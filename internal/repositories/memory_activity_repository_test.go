package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/examdesk/admin-console/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryActivityRepository(t *testing.T) {
	assert.Equal(t, 50, NewMemoryActivityRepository(50).limit)
	assert.Equal(t, 1000, NewMemoryActivityRepository(0).limit)
}

func TestMemoryActivityRepository_CreateAndGetAll(t *testing.T) {
	repo := NewMemoryActivityRepository(10)
	now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	kinds := []models.EntityKind{models.EntityCourse, models.EntityModule, models.EntityModule, models.EntityExam}
	for _, kind := range kinds {
		entry := &models.ActivityEntry{Kind: kind, Action: "create", Outcome: models.ActivityOutcomeSucceeded}
		require.NoError(t, repo.Create(ctx, entry))
		assert.NotZero(t, entry.ID)
		assert.Equal(t, now, entry.CreatedAt)
	}

	tests := []struct {
		name        string
		page        int
		count       int
		kind        models.EntityKind
		expectedIDs []int
	}{
		{name: "newest first", page: 1, count: 10, expectedIDs: []int{4, 3, 2, 1}},
		{name: "second page", page: 2, count: 3, expectedIDs: []int{1}},
		{name: "filtered", page: 1, count: 10, kind: models.EntityModule, expectedIDs: []int{3, 2}},
		{name: "filtered second page", page: 2, count: 1, kind: models.EntityModule, expectedIDs: []int{2}},
		{name: "past the end", page: 3, count: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.GetAll(ctx, tt.page, tt.count, tt.kind)

			require.NoError(t, err)
			var ids []int
			for _, e := range result {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestMemoryActivityRepository_DropsOldestPastLimit(t *testing.T) {
	repo := NewMemoryActivityRepository(2)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.ActivityEntry{Kind: models.EntityCourse, Action: "update"}))
	}

	result, err := repo.GetAll(ctx, 1, 10, "")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 3, result[0].ID)
	assert.Equal(t, 2, result[1].ID)
}
