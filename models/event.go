package models

import "time"

// EventRecord is keyed by EventID (EVT/YY-MM/NNNN).
type EventRecord struct {
	EventID      string    `json:"event_id" bson:"_id" db:"event_id"`
	Name         string    `json:"event_name,omitempty" bson:"event_name,omitempty" db:"name"`
	Type         string    `json:"event_type,omitempty" bson:"event_type,omitempty" db:"type"`
	Date         string    `json:"event_date,omitempty" bson:"event_date,omitempty" db:"date"`
	ContactEmail string    `json:"client_email,omitempty" bson:"client_email,omitempty" db:"contact_email"`
	ContactPhone string    `json:"client_phone,omitempty" bson:"client_phone,omitempty" db:"contact_phone"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at" db:"created_at"`
	LastUpdated  time.Time `json:"last_updated" bson:"last_updated" db:"last_updated"`
}

// MergeEvent follows the same rules as MergeInvoice.
func MergeEvent(existing, incoming *EventRecord) *EventRecord {
	merged := *incoming
	merged.EventID = existing.EventID
	merged.CreatedAt = existing.CreatedAt

	if merged.Name == "" {
		merged.Name = existing.Name
	}
	if merged.Type == "" {
		merged.Type = existing.Type
	}
	if merged.Date == "" {
		merged.Date = existing.Date
	}
	if merged.ContactEmail == "" {
		merged.ContactEmail = existing.ContactEmail
	}
	if merged.ContactPhone == "" {
		merged.ContactPhone = existing.ContactPhone
	}
	return &merged
}
