package repository

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"omnicassion/models"
)

// FileInvoiceRepo keeps the whole invoice collection in one JSON
// file: every operation reads the collection, mutates it, and writes
// it back whole. A corrupt file decodes to an empty collection so the
// store self-heals instead of crashing the application.
type FileInvoiceRepo struct {
	Path string
}

func NewFileInvoiceRepo(dir string) *FileInvoiceRepo {
	return &FileInvoiceRepo{Path: filepath.Join(dir, "invoices.json")}
}

func (r *FileInvoiceRepo) load() []*models.InvoiceRecord {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("invoice store: read %s failed: %v", r.Path, err)
		}
		return []*models.InvoiceRecord{}
	}

	var list []*models.InvoiceRecord
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("invoice store: %s is unreadable, starting empty: %v", r.Path, err)
		return []*models.InvoiceRecord{}
	}
	return list
}

func (r *FileInvoiceRepo) store(list []*models.InvoiceRecord) error {
	if err := os.MkdirAll(filepath.Dir(r.Path), os.ModePerm); err != nil {
		return err
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.Path, data, 0644)
}

func (r *FileInvoiceRepo) Upsert(rec *models.InvoiceRecord) (*models.InvoiceRecord, error) {
	list := r.load()

	idx := -1
	for i, inv := range list {
		if inv.InvoiceNumber == rec.InvoiceNumber {
			idx = i
			break
		}
	}

	var existing *models.InvoiceRecord
	if idx >= 0 {
		existing = list[idx]
	}
	out := prepareInvoice(existing, rec)

	if idx >= 0 {
		list[idx] = out
	} else {
		list = append(list, out)
	}

	if err := r.store(list); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FileInvoiceRepo) List() ([]*models.InvoiceRecord, error) {
	return r.load(), nil
}

func (r *FileInvoiceRepo) GetByKey(key string) (*models.InvoiceRecord, error) {
	for _, inv := range r.load() {
		if inv.InvoiceNumber == key {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *FileInvoiceRepo) Delete(key string) error {
	list := r.load()
	filtered := list[:0]
	for _, inv := range list {
		if inv.InvoiceNumber != key {
			filtered = append(filtered, inv)
		}
	}
	if len(filtered) == len(list) {
		return nil // nothing to delete, not an error
	}
	return r.store(filtered)
}
