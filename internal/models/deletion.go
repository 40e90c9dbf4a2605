package models

import "time"

// DeletionRequest asks for the confirmation of a destructive action
type DeletionRequest struct {
	Kind EntityKind `json:"kind"`
	ID   int        `json:"id"`
}

// PendingDeletion is a delete waiting for the administrator's confirmation.
// Token is single use and expires at ExpiresAt.
type PendingDeletion struct {
	Token     string     `json:"token"`
	Kind      EntityKind `json:"kind"`
	EntityID  int        `json:"entity_id"`
	Title     string     `json:"title"`
	Warning   string     `json:"warning,omitempty"`
	ExpiresAt time.Time  `json:"expires_at"`
}
