package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/examdesk/admin-console/internal/models"
	"github.com/google/uuid"
)

// confirmations keeps the deletions waiting for the administrator's confirmation
type confirmations struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	pending map[string]models.PendingDeletion
}

func newConfirmations(ttl time.Duration) *confirmations {
	return &confirmations{
		ttl:     ttl,
		now:     time.Now,
		pending: make(map[string]models.PendingDeletion),
	}
}

// add registers a pending deletion under a fresh token
func (c *confirmations) add(kind models.EntityKind, id int, title, warning string) models.PendingDeletion {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := models.PendingDeletion{
		Token:     uuid.New().String(),
		Kind:      kind,
		EntityID:  id,
		Title:     title,
		Warning:   warning,
		ExpiresAt: c.now().Add(c.ttl),
	}
	c.pending[p.Token] = p
	return p
}

// take removes and returns the pending deletion of token. A token can be taken once.
func (c *confirmations) take(token string) (models.PendingDeletion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.pending[token]
	if !ok {
		return models.PendingDeletion{}, fmt.Errorf("confirmation not found")
	}
	delete(c.pending, token)
	if !c.now().Before(p.ExpiresAt) {
		return models.PendingDeletion{}, fmt.Errorf("confirmation expired")
	}
	return p, nil
}

// cancel drops a pending deletion
func (c *confirmations) cancel(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.pending[token]; !ok {
		return fmt.Errorf("confirmation not found")
	}
	delete(c.pending, token)
	return nil
}

// expire drops every expired pending deletion and returns how many were dropped
func (c *confirmations) expire() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for token, p := range c.pending {
		if !now.Before(p.ExpiresAt) {
			delete(c.pending, token)
			removed++
		}
	}
	return removed
}
