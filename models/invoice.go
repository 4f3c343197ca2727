package models

import "time"

// Document kinds printed on the title band.
const (
	KindQuotation       = "QUOTATION"
	KindFinalQuotation  = "FINAL QUOTATION"
	KindInvoice         = "INVOICE"
	KindProformaInvoice = "PROFORMA INVOICE"
)

// LineItem is one billable service row. Total is always derived as
// Quantity x Price; the store recomputes it on every save.
type LineItem struct {
	ID       int64   `json:"id" bson:"id" db:"id"`
	Service  string  `json:"service" bson:"service" db:"service"`
	Quantity int     `json:"quantity" bson:"quantity" db:"quantity"`
	Price    float64 `json:"price" bson:"price" db:"price"`
	Total    float64 `json:"total" bson:"total" db:"total"`
}

// InvoiceRecord is keyed by InvoiceNumber (OMNI/YY-MM/NNN), generated
// once at creation and used as the merge key on every later save.
type InvoiceRecord struct {
	InvoiceNumber     string     `json:"invoice_number" bson:"_id" db:"invoice_number"`
	Kind              string     `json:"invoice_type" bson:"invoice_type" db:"kind"`
	DateIssued        string     `json:"date_issued,omitempty" bson:"date_issued,omitempty" db:"date_issued"`
	IssuedTo          string     `json:"issued_to,omitempty" bson:"issued_to,omitempty" db:"issued_to"`
	EventName         string     `json:"event_name,omitempty" bson:"event_name,omitempty" db:"event_name"`
	EventType         string     `json:"event_type,omitempty" bson:"event_type,omitempty" db:"event_type"`
	EventDate         string     `json:"event_date,omitempty" bson:"event_date,omitempty" db:"event_date"`
	EventVenue        string     `json:"event_venue,omitempty" bson:"event_venue,omitempty" db:"event_venue"`
	EventGuestCount   string     `json:"event_guest_count,omitempty" bson:"event_guest_count,omitempty" db:"event_guest_count"`
	Items             []LineItem `json:"items" bson:"items" db:"items"`
	SiteCharges       float64    `json:"site_charges" bson:"site_charges" db:"site_charges"`
	Discount          float64    `json:"discount" bson:"discount" db:"discount"`
	TokenPaid         float64    `json:"token_paid" bson:"token_paid" db:"token_paid"`
	SecondInstallment float64    `json:"second_installment" bson:"second_installment" db:"second_installment"`
	ActualCost        float64    `json:"actual_cost" bson:"actual_cost" db:"actual_cost"`

	// GrandTotal is cached at save time, never entered directly.
	GrandTotal float64 `json:"grand_total" bson:"grand_total" db:"grand_total"`

	// Details keeps the full form payload for later edit/view.
	Details map[string]interface{} `json:"details,omitempty" bson:"details,omitempty"`

	CreatedAt   time.Time `json:"created_at" bson:"created_at" db:"created_at"`
	LastUpdated time.Time `json:"last_updated" bson:"last_updated" db:"last_updated"`
}

// MergeInvoice overlays an incoming save onto the stored record with
// the same invoice number. Incoming values win; optional text fields
// left empty by the incoming write keep their stored values. CreatedAt
// always survives from the stored record.
func MergeInvoice(existing, incoming *InvoiceRecord) *InvoiceRecord {
	merged := *incoming
	merged.InvoiceNumber = existing.InvoiceNumber
	merged.CreatedAt = existing.CreatedAt

	if merged.Kind == "" {
		merged.Kind = existing.Kind
	}
	if merged.DateIssued == "" {
		merged.DateIssued = existing.DateIssued
	}
	if merged.IssuedTo == "" {
		merged.IssuedTo = existing.IssuedTo
	}
	if merged.EventName == "" {
		merged.EventName = existing.EventName
	}
	if merged.EventType == "" {
		merged.EventType = existing.EventType
	}
	if merged.EventDate == "" {
		merged.EventDate = existing.EventDate
	}
	if merged.EventVenue == "" {
		merged.EventVenue = existing.EventVenue
	}
	if merged.EventGuestCount == "" {
		merged.EventGuestCount = existing.EventGuestCount
	}
	if merged.Items == nil {
		merged.Items = existing.Items
	}
	if merged.Details == nil {
		merged.Details = existing.Details
	}
	return &merged
}
