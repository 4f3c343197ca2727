package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	"omnicassion/models"
)

type PostgresEventRepo struct {
	DB *sql.DB
}

func NewPostgresEventRepo(db *sql.DB) *PostgresEventRepo {
	return &PostgresEventRepo{DB: db}
}

func (r *PostgresEventRepo) Upsert(rec *models.EventRecord) (*models.EventRecord, error) {
	existing, err := r.GetByKey(rec.EventID)
	if err != nil {
		return nil, err
	}
	out := prepareEvent(existing, rec)

	payload, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}

	_, err = r.DB.Exec(`
		INSERT INTO events (event_id, name, type, data, created_at, last_updated)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (event_id) DO UPDATE
		SET name=EXCLUDED.name, type=EXCLUDED.type, data=EXCLUDED.data, last_updated=EXCLUDED.last_updated
	`, out.EventID, out.Name, out.Type, payload, out.CreatedAt, out.LastUpdated)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEventRepo) List() ([]*models.EventRecord, error) {
	rows, err := r.DB.Query(`SELECT data FROM events`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.EventRecord{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var evt models.EventRecord
		if err := json.Unmarshal(payload, &evt); err != nil {
			log.Printf("event store: skipping unreadable row: %v", err)
			continue
		}
		out = append(out, &evt)
	}
	return out, rows.Err()
}

func (r *PostgresEventRepo) GetByKey(key string) (*models.EventRecord, error) {
	var payload []byte
	err := r.DB.QueryRow(`SELECT data FROM events WHERE event_id=$1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	var evt models.EventRecord
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil, err
	}
	return &evt, nil
}

func (r *PostgresEventRepo) Delete(key string) error {
	_, err := r.DB.Exec(`DELETE FROM events WHERE event_id=$1`, key)
	return err
}
