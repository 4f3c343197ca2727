package repository

import (
	"time"

	"omnicassion/models"
)

// EventRepository mirrors the invoice store contract for events,
// keyed by event ID.
type EventRepository interface {
	Upsert(rec *models.EventRecord) (*models.EventRecord, error)
	List() ([]*models.EventRecord, error)
	GetByKey(key string) (*models.EventRecord, error)
	Delete(key string) error
}

func prepareEvent(existing, incoming *models.EventRecord) *models.EventRecord {
	out := incoming
	if existing != nil {
		out = models.MergeEvent(existing, incoming)
	}
	now := time.Now().UTC()
	if out.CreatedAt.IsZero() {
		out.CreatedAt = now
	}
	out.LastUpdated = now
	return out
}
