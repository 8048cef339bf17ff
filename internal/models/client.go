package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientRecord is the client profile captured by a release form. Rows are
// written once per submission and never updated.
type ClientRecord struct {
	ClientID           uuid.UUID `db:"client_id" json:"client_id"`
	FirstName          string    `db:"first_name" json:"first_name"`
	LastName           string    `db:"last_name" json:"last_name"`
	Email              string    `db:"email" json:"email"`
	Phone              string    `db:"phone" json:"phone"`
	DateOfBirth        string    `db:"date_of_birth" json:"date_of_birth"`
	PiercingType       string    `db:"piercing_type" json:"piercing_type"`
	JewelryChoice      string    `db:"jewelry_choice" json:"jewelry_choice"`
	IsMinor            bool      `db:"is_minor" json:"is_minor"`
	ParentFirstName    *string   `db:"parent_first_name" json:"parent_first_name,omitempty"`
	ParentLastName     *string   `db:"parent_last_name" json:"parent_last_name,omitempty"`
	ParentEmail        *string   `db:"parent_email" json:"parent_email,omitempty"`
	ParentPhone        *string   `db:"parent_phone" json:"parent_phone,omitempty"`
	SignatureURL       string    `db:"signature_url" json:"signature_url"`
	IDPhotoURL         string    `db:"id_photo_url" json:"id_photo_url"`
	ParentSignatureURL *string   `db:"parent_signature_url" json:"parent_signature_url,omitempty"`
	ParentIDPhotoURL   *string   `db:"parent_id_photo_url" json:"parent_id_photo_url,omitempty"`
	AgreedTerms        bool      `db:"agreed_terms" json:"agreed_terms"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// PiercingRecord is one procedure performed for a client.
type PiercingRecord struct {
	RecordID        uuid.UUID       `db:"record_id" json:"record_id"`
	ClientID        uuid.UUID       `db:"client_id" json:"client_id"`
	PiercingType    string          `db:"piercing_type" json:"piercing_type"`
	Category        string          `db:"category" json:"category"`
	Price           decimal.Decimal `db:"price" json:"price"`
	DatePierced     time.Time       `db:"date_pierced" json:"date_pierced"`
	DownsizeDueDate *time.Time      `db:"downsize_due_date" json:"downsize_due_date"`
}
