package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	"omnicassion/models"
)

// PostgresInvoiceRepo keeps each record as a jsonb payload keyed by
// the invoice number, with a few columns lifted out for listing.
type PostgresInvoiceRepo struct {
	DB *sql.DB
}

func NewPostgresInvoiceRepo(db *sql.DB) *PostgresInvoiceRepo {
	return &PostgresInvoiceRepo{DB: db}
}

func (r *PostgresInvoiceRepo) Upsert(rec *models.InvoiceRecord) (*models.InvoiceRecord, error) {
	existing, err := r.GetByKey(rec.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	out := prepareInvoice(existing, rec)

	payload, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}

	_, err = r.DB.Exec(`
		INSERT INTO invoices (invoice_number, kind, issued_to, event_name, grand_total, data, created_at, last_updated)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (invoice_number) DO UPDATE
		SET kind=EXCLUDED.kind, issued_to=EXCLUDED.issued_to, event_name=EXCLUDED.event_name,
			grand_total=EXCLUDED.grand_total, data=EXCLUDED.data, last_updated=EXCLUDED.last_updated
	`, out.InvoiceNumber, out.Kind, out.IssuedTo, out.EventName, out.GrandTotal, payload, out.CreatedAt, out.LastUpdated)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresInvoiceRepo) List() ([]*models.InvoiceRecord, error) {
	rows, err := r.DB.Query(`SELECT data FROM invoices`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.InvoiceRecord{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var inv models.InvoiceRecord
		if err := json.Unmarshal(payload, &inv); err != nil {
			// One bad payload should not hide the rest of the list.
			log.Printf("invoice store: skipping unreadable row: %v", err)
			continue
		}
		out = append(out, &inv)
	}
	return out, rows.Err()
}

func (r *PostgresInvoiceRepo) GetByKey(key string) (*models.InvoiceRecord, error) {
	var payload []byte
	err := r.DB.QueryRow(`SELECT data FROM invoices WHERE invoice_number=$1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	var inv models.InvoiceRecord
	if err := json.Unmarshal(payload, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *PostgresInvoiceRepo) Delete(key string) error {
	_, err := r.DB.Exec(`DELETE FROM invoices WHERE invoice_number=$1`, key)
	return err
}
