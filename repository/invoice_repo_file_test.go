package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"omnicassion/models"
)

func newInvoice(number string) *models.InvoiceRecord {
	return &models.InvoiceRecord{
		InvoiceNumber: number,
		Kind:          models.KindQuotation,
		IssuedTo:      "Asha Mehta",
		EventVenue:    "Lakeside Lawn",
		Items: []models.LineItem{
			{ID: 1, Service: "Decoration", Quantity: 2, Price: 500},
			{ID: 2, Service: "Catering", Quantity: 1, Price: 1500},
		},
		SiteCharges: 200,
		Discount:    100,
	}
}

func TestUpsertNewThenExisting(t *testing.T) {
	repo := NewFileInvoiceRepo(t.TempDir())

	stored, err := repo.Upsert(newInvoice("OMNI/25-01/001"))
	if err != nil {
		t.Fatal(err)
	}
	if stored.GrandTotal != 2600 {
		t.Fatalf("grand total cached as %v, want 2600", stored.GrandTotal)
	}
	if stored.Items[0].Total != 1000 || stored.Items[1].Total != 1500 {
		t.Fatalf("line totals not recomputed: %+v", stored.Items)
	}

	list, _ := repo.List()
	if len(list) != 1 {
		t.Fatalf("count after first upsert = %d, want 1", len(list))
	}
	firstUpdate := stored.LastUpdated

	// Second save with the same key replaces, never duplicates.
	time.Sleep(5 * time.Millisecond)
	second := newInvoice("OMNI/25-01/001")
	second.EventVenue = "Grand Ballroom"
	stored, err = repo.Upsert(second)
	if err != nil {
		t.Fatal(err)
	}

	list, _ = repo.List()
	if len(list) != 1 {
		t.Fatalf("count after second upsert = %d, want 1", len(list))
	}
	if stored.EventVenue != "Grand Ballroom" {
		t.Fatalf("second save's venue should win, got %q", stored.EventVenue)
	}
	if !stored.LastUpdated.After(firstUpdate) {
		t.Fatal("last_updated not refreshed on merge")
	}
}

func TestUpsertMergeRetainsUntouchedFields(t *testing.T) {
	repo := NewFileInvoiceRepo(t.TempDir())

	first := newInvoice("OMNI/25-01/002")
	first.EventName = "Sharma Wedding"
	if _, err := repo.Upsert(first); err != nil {
		t.Fatal(err)
	}

	// A later save that leaves optional fields empty keeps the
	// stored values.
	update := &models.InvoiceRecord{
		InvoiceNumber: "OMNI/25-01/002",
		Discount:      50,
		Items:         []models.LineItem{{ID: 1, Service: "Decoration", Quantity: 1, Price: 800}},
	}
	if _, err := repo.Upsert(update); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByKey("OMNI/25-01/002")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("record vanished")
	}
	if got.EventName != "Sharma Wedding" {
		t.Fatalf("event name lost in merge: %q", got.EventName)
	}
	if got.IssuedTo != "Asha Mehta" {
		t.Fatalf("recipient lost in merge: %q", got.IssuedTo)
	}
	if got.Kind != models.KindQuotation {
		t.Fatalf("kind lost in merge: %q", got.Kind)
	}
	if got.GrandTotal != 750 {
		t.Fatalf("grand total after merge = %v, want 750", got.GrandTotal)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("created_at must survive the merge")
	}
}

func TestGetByKeyMissing(t *testing.T) {
	repo := NewFileInvoiceRepo(t.TempDir())
	got, err := repo.GetByKey("OMNI/25-01/404")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("want nil for missing key, got %+v", got)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := NewFileInvoiceRepo(t.TempDir())
	if _, err := repo.Upsert(newInvoice("OMNI/25-01/003")); err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete("OMNI/25-01/003"); err != nil {
		t.Fatal(err)
	}
	list, _ := repo.List()
	if len(list) != 0 {
		t.Fatalf("count after delete = %d, want 0", len(list))
	}

	// Deleting again, or deleting a key that never existed, is fine.
	if err := repo.Delete("OMNI/25-01/003"); err != nil {
		t.Fatalf("repeat delete errored: %v", err)
	}
	if err := repo.Delete("OMNI/25-01/404"); err != nil {
		t.Fatalf("missing-key delete errored: %v", err)
	}
}

func TestCorruptCollectionSelfHeals(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "invoices.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	repo := NewFileInvoiceRepo(dir)
	list, err := repo.List()
	if err != nil {
		t.Fatalf("corrupt store should list as empty, got error %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("corrupt store should list as empty, got %d records", len(list))
	}

	// And a save on top of the corruption works.
	if _, err := repo.Upsert(newInvoice("OMNI/25-01/004")); err != nil {
		t.Fatal(err)
	}
	list, _ = repo.List()
	if len(list) != 1 {
		t.Fatalf("count after healing upsert = %d, want 1", len(list))
	}
}
