package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/examdesk/admin-console/internal/models"
)

// memoryActivityRepository keeps the most recent activity entries in process memory.
// It is used when no database is configured.
type memoryActivityRepository struct {
	mu      sync.RWMutex
	entries []models.ActivityEntry
	limit   int
	nextID  int
	now     func() time.Time
}

// NewMemoryActivityRepository creates an in-memory activity repository keeping at most limit entries
func NewMemoryActivityRepository(limit int) *memoryActivityRepository {
	if limit < 1 {
		limit = 1000
	}
	return &memoryActivityRepository{
		limit:  limit,
		nextID: 1,
		now:    time.Now,
	}
}

// Create appends an activity entry, dropping the oldest one past the limit
func (r *memoryActivityRepository) Create(ctx context.Context, entry *models.ActivityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}
	r.entries = append(r.entries, *entry)
	if len(r.entries) > r.limit {
		r.entries = r.entries[len(r.entries)-r.limit:]
	}
	return nil
}

// GetAll retrieves a page of activity entries, newest first
func (r *memoryActivityRepository) GetAll(ctx context.Context, page, count int, kind models.EntityKind) ([]models.ActivityEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offset := (page - 1) * count
	var result []models.ActivityEntry
	skipped := 0
	for i := len(r.entries) - 1; i >= 0 && len(result) < count; i-- {
		entry := r.entries[i]
		if kind != "" && entry.Kind != kind {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}
