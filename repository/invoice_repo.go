package repository

import (
	"time"

	"omnicassion/billing"
	"omnicassion/models"
)

// InvoiceRepository is the invoice record store. Upsert merges by
// invoice number; GetByKey returns nil when nothing matches; Delete
// of a missing key is a no-op.
type InvoiceRepository interface {
	Upsert(rec *models.InvoiceRecord) (*models.InvoiceRecord, error)
	List() ([]*models.InvoiceRecord, error)
	GetByKey(key string) (*models.InvoiceRecord, error)
	Delete(key string) error
}

// prepareInvoice applies the save-time derivations shared by every
// backend: line totals are recomputed, the grand total is cached,
// the stored record (if any) is merged in, and timestamps refresh.
func prepareInvoice(existing, incoming *models.InvoiceRecord) *models.InvoiceRecord {
	for i := range incoming.Items {
		incoming.Items[i].Total = float64(incoming.Items[i].Quantity) * incoming.Items[i].Price
	}

	out := incoming
	if existing != nil {
		out = models.MergeInvoice(existing, incoming)
	}
	out.GrandTotal = billing.GrandTotal(out.Items, out.SiteCharges, out.Discount)

	now := time.Now().UTC()
	if out.CreatedAt.IsZero() {
		out.CreatedAt = now
	}
	out.LastUpdated = now
	return out
}
