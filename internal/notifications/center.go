// Package notifications keeps the transient messages shown to the administrator
package notifications

import (
	"sync"
	"time"

	"github.com/examdesk/admin-console/internal/models"
	"github.com/google/uuid"
)

// Center stores notifications until they are drained or expire
type Center struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items []models.Notification
}

// NewCenter creates a notification center; notifications live for ttl
func NewCenter(ttl time.Duration) *Center {
	return &Center{ttl: ttl, now: time.Now}
}

// Push adds a notification and returns it
func (c *Center) Push(level models.NotificationLevel, message string) models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := models.Notification{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	c.items = append(c.items, n)
	return n
}

// Drain returns the live notifications, oldest first, and removes them
func (c *Center) Drain() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expire()
	items := c.items
	c.items = nil
	if items == nil {
		return []models.Notification{}
	}
	return items
}

// Expire removes expired notifications and returns how many were removed
func (c *Center) Expire() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expire()
}

func (c *Center) expire() int {
	now := c.now()
	kept := c.items[:0]
	for _, n := range c.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	removed := len(c.items) - len(kept)
	c.items = kept
	return removed
}
