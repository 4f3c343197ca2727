package repository

import (
	"testing"

	"omnicassion/models"
)

func TestEventRoundTrip(t *testing.T) {
	repo := NewFileEventRepo(t.TempDir())

	stored, err := repo.Upsert(&models.EventRecord{
		EventID:      "EVT/25-01/0042",
		Name:         "Sharma Wedding",
		Type:         "Wedding",
		ContactEmail: "sharma@example.com",
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByKey(stored.EventID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Name != "Sharma Wedding" || got.ContactEmail != "sharma@example.com" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestEventMergeByID(t *testing.T) {
	repo := NewFileEventRepo(t.TempDir())

	if _, err := repo.Upsert(&models.EventRecord{EventID: "EVT/25-01/0001", Name: "Mehta Reception", ContactPhone: "9876500000"}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Upsert(&models.EventRecord{EventID: "EVT/25-01/0001", Date: "2025-02-14"}); err != nil {
		t.Fatal(err)
	}

	list, _ := repo.List()
	if len(list) != 1 {
		t.Fatalf("count = %d, want 1", len(list))
	}
	got := list[0]
	if got.Name != "Mehta Reception" || got.ContactPhone != "9876500000" || got.Date != "2025-02-14" {
		t.Fatalf("merge mismatch: %+v", got)
	}
}

func TestEventDeleteMissingKey(t *testing.T) {
	repo := NewFileEventRepo(t.TempDir())
	if err := repo.Delete("EVT/25-01/9999"); err != nil {
		t.Fatalf("missing-key delete errored: %v", err)
	}
}
