package models

import "time"

// CompanyProfile holds the vendor details painted on every document:
// the info band, the bank-details band and the footer.
type CompanyProfile struct {
	ID            int64     `json:"id" bson:"_id,omitempty" db:"id"`
	VendorName    string    `json:"vendor_name" bson:"vendor_name" db:"vendor_name"`
	Tagline       string    `json:"tagline" bson:"tagline" db:"tagline"`
	ContactEmail  string    `json:"contact_email" bson:"contact_email" db:"contact_email"`
	ContactPhone1 string    `json:"contact_phone1" bson:"contact_phone1" db:"contact_phone1"`
	ContactPhone2 string    `json:"contact_phone2" bson:"contact_phone2" db:"contact_phone2"`
	Website       string    `json:"website" bson:"website" db:"website"`
	BankName      string    `json:"bank_name" bson:"bank_name" db:"bank_name"`
	AccountNo     string    `json:"account_no" bson:"account_no" db:"account_no"`
	AccountName   string    `json:"account_name" bson:"account_name" db:"account_name"`
	Footnote      string    `json:"footnote" bson:"footnote" db:"footnote"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
