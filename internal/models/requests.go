package models

import "time"

type ReleaseFormRequest struct {
	FirstName       string  `json:"first_name" binding:"required"`
	LastName        string  `json:"last_name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone" binding:"required"`
	DateOfBirth     string  `json:"date_of_birth" binding:"required"`
	PiercingType    string  `json:"piercing_type" binding:"required"`
	JewelryChoice   string  `json:"jewelry_choice" binding:"required"`
	IsMinor         bool    `json:"is_minor"`
	ParentFirstName *string `json:"parent_first_name"`
	ParentLastName  *string `json:"parent_last_name"`
	ParentEmail     *string `json:"parent_email" binding:"omitempty,email"`
	ParentPhone     *string `json:"parent_phone"`
	Signature       string  `json:"signature" binding:"required"`
	ParentSignature *string `json:"parent_signature"`
	IDPhoto         string  `json:"id_photo" binding:"required"`
	ParentIDPhoto   *string `json:"parent_id_photo"`
	AgreedTerms     bool    `json:"agreed_terms"`
}

type ReleaseFormResponse struct {
	ClientID        string     `json:"client_id"`
	RecordID        string     `json:"record_id"`
	Pricing         string     `json:"pricing"`
	DownsizeDueDate *time.Time `json:"downsize_due_date"`
	Message         string     `json:"message"`
}

type SMSRequest struct {
	PhoneNumber  string `json:"phone_number" binding:"required"`
	ClientName   string `json:"client_name" binding:"required"`
	PiercingType string `json:"piercing_type" binding:"required"`
}

type ReminderRequest struct {
	PhoneNumber     string `json:"phone_number" binding:"required"`
	ClientName      string `json:"client_name" binding:"required"`
	PiercingType    string `json:"piercing_type" binding:"required"`
	DownsizeDueDate string `json:"downsize_due_date" binding:"required"`
}

type SMSResponse struct {
	SMSSent bool   `json:"sms_sent"`
	Message string `json:"message"`
}

type ClientLookupRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}
