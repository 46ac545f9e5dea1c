package models

import "time"

type PhysicianProfile struct {
	ID                     string         `json:"id" db:"id"`
	UserID                 string         `json:"user_id" db:"user_id"`
	LegalName              string         `json:"legal_name" db:"legal_name"`
	Email                  string         `json:"email" db:"email"`
	Phone                  string         `json:"phone" db:"phone"`
	Specialty              string         `json:"specialty" db:"specialty"`
	Subspecialty           *string        `json:"subspecialty,omitempty" db:"subspecialty"`
	BoardCertification     string         `json:"board_certification" db:"board_certification"`
	YearsOfExperience      *int           `json:"years_of_experience,omitempty" db:"years_of_experience"`
	Licenses               []StateLicense `json:"licenses" db:"licenses"`
	CVDocumentURL          string         `json:"cv_document_url" db:"cv_document_url"`
	NPDBReportURL          string         `json:"npdb_report_url" db:"npdb_report_url"`
	FacilityQuestionnaire  bool           `json:"facility_questionnaire_completed" db:"facility_questionnaire_completed"`
	InsuranceQuestionnaire bool           `json:"insurance_questionnaire_completed" db:"insurance_questionnaire_completed"`
	AttestationSignature   string         `json:"attestation_signature" db:"attestation_signature"`
	VerificationStatus     string         `json:"verification_status" db:"verification_status"`
	CreatedAt              time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at" db:"updated_at"`
}

type StateLicense struct {
	State          string `json:"state"`
	LicenseNumber  string `json:"license_number"`
	ExpirationDate string `json:"expiration_date"`
}

// PhysicianProfileSnapshot is the frozen copy of a profile embedded in an
// Application at submit time. Facilities review the snapshot, not the live
// profile, so later edits never change what was evaluated.
type PhysicianProfileSnapshot struct {
	LegalName              string         `json:"legal_name"`
	Email                  string         `json:"email"`
	Phone                  string         `json:"phone"`
	Specialty              string         `json:"specialty"`
	Subspecialty           *string        `json:"subspecialty,omitempty"`
	BoardCertification     string         `json:"board_certification"`
	YearsOfExperience      *int           `json:"years_of_experience,omitempty"`
	Licenses               []StateLicense `json:"licenses"`
	CVDocumentURL          string         `json:"cv_document_url"`
	NPDBReportURL          string         `json:"npdb_report_url"`
	FacilityQuestionnaire  bool           `json:"facility_questionnaire_completed"`
	InsuranceQuestionnaire bool           `json:"insurance_questionnaire_completed"`
	AttestationSignature   string         `json:"attestation_signature"`
	VerificationStatus     string         `json:"verification_status"`
	CapturedAt             time.Time      `json:"captured_at"`
	ClientIP               string         `json:"client_ip"`
	DeviceSignature        string         `json:"device_signature"`
}
