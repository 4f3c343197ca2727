package repository

import (
	"database/sql"
	"errors"
	"time"

	"omnicassion/models"
)

type PostgresProfileRepo struct {
	DB *sql.DB
}

func NewPostgresProfileRepo(db *sql.DB) *PostgresProfileRepo {
	return &PostgresProfileRepo{DB: db}
}

// SaveProfile keeps a single row under id 1.
func (r *PostgresProfileRepo) SaveProfile(profile *models.CompanyProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	profile.ID = 1

	_, err := r.DB.Exec(`
		INSERT INTO company_profile
			(id, vendor_name, tagline, contact_email, contact_phone1, contact_phone2,
			 website, bank_name, account_no, account_name, footnote, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE
		SET vendor_name=EXCLUDED.vendor_name, tagline=EXCLUDED.tagline,
			contact_email=EXCLUDED.contact_email, contact_phone1=EXCLUDED.contact_phone1,
			contact_phone2=EXCLUDED.contact_phone2, website=EXCLUDED.website,
			bank_name=EXCLUDED.bank_name, account_no=EXCLUDED.account_no,
			account_name=EXCLUDED.account_name, footnote=EXCLUDED.footnote
	`, profile.ID, profile.VendorName, profile.Tagline, profile.ContactEmail,
		profile.ContactPhone1, profile.ContactPhone2, profile.Website,
		profile.BankName, profile.AccountNo, profile.AccountName,
		profile.Footnote, profile.CreatedAt)
	return err
}

func (r *PostgresProfileRepo) GetProfile() (*models.CompanyProfile, error) {
	profile := &models.CompanyProfile{}
	err := r.DB.QueryRow(`
		SELECT id, vendor_name, tagline, contact_email, contact_phone1, contact_phone2,
			website, bank_name, account_no, account_name, footnote, created_at
		FROM company_profile WHERE id=1
	`).Scan(&profile.ID, &profile.VendorName, &profile.Tagline, &profile.ContactEmail,
		&profile.ContactPhone1, &profile.ContactPhone2, &profile.Website,
		&profile.BankName, &profile.AccountNo, &profile.AccountName,
		&profile.Footnote, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}
