package repository

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"omnicassion/models"
)

// FileEventRepo is the event-side twin of FileInvoiceRepo: one JSON
// file, whole-collection reads and writes, corrupt data self-heals
// to empty.
type FileEventRepo struct {
	Path string
}

func NewFileEventRepo(dir string) *FileEventRepo {
	return &FileEventRepo{Path: filepath.Join(dir, "events.json")}
}

func (r *FileEventRepo) load() []*models.EventRecord {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("event store: read %s failed: %v", r.Path, err)
		}
		return []*models.EventRecord{}
	}

	var list []*models.EventRecord
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("event store: %s is unreadable, starting empty: %v", r.Path, err)
		return []*models.EventRecord{}
	}
	return list
}

func (r *FileEventRepo) store(list []*models.EventRecord) error {
	if err := os.MkdirAll(filepath.Dir(r.Path), os.ModePerm); err != nil {
		return err
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.Path, data, 0644)
}

func (r *FileEventRepo) Upsert(rec *models.EventRecord) (*models.EventRecord, error) {
	list := r.load()

	idx := -1
	for i, evt := range list {
		if evt.EventID == rec.EventID {
			idx = i
			break
		}
	}

	var existing *models.EventRecord
	if idx >= 0 {
		existing = list[idx]
	}
	out := prepareEvent(existing, rec)

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

func (r *FileEventRepo) List() ([]*models.EventRecord, error) {
	return r.load(), nil
}

func (r *FileEventRepo) GetByKey(key string) (*models.EventRecord, error) {
	for _, evt := range r.load() {
		if evt.EventID == key {
			return evt, nil
		}
	}
	return nil, nil
}

func (r *FileEventRepo) Delete(key string) error {
	list := r.load()
	filtered := list[:0]
	for _, evt := range list {
		if evt.EventID != key {
			filtered = append(filtered, evt)
		}
	}
	if len(filtered) == len(list) {
		return nil
	}
	return r.store(filtered)
}
