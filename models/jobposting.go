package models

import "time"

const (
	PostingStatusDraft     = "draft"
	PostingStatusOpen      = "open"
	PostingStatusFilled    = "filled"
	PostingStatusCancelled = "cancelled"
)

const (
	AssignmentTypeFixedBlock   = "fixed_block"
	AssignmentTypeRollingAvail = "rolling_availability"
)

type JobPosting struct {
	ID                  string    `json:"id" db:"id"`
	FacilityID          string    `json:"facility_id" db:"facility_id"`
	FacilityName        string    `json:"facility_name" db:"facility_name"`
	Specialty           string    `json:"specialty" db:"specialty"`
	Subspecialty        *string   `json:"subspecialty,omitempty" db:"subspecialty"`
	RequiredLicenses    []string  `json:"required_licenses" db:"required_licenses"`
	StartDate           string    `json:"start_date" db:"start_date"`
	EndDate             string    `json:"end_date" db:"end_date"`
	AssignmentType      string    `json:"assignment_type" db:"assignment_type"`
	BlockDuration       *int      `json:"block_duration,omitempty" db:"block_duration"`
	PayAmount           float64   `json:"pay_amount" db:"pay_amount"`
	Requirements        *string   `json:"requirements,omitempty" db:"requirements"`
	MalpracticeIncluded bool      `json:"malpractice_included" db:"malpractice_included"`
	TravelIncluded      bool      `json:"travel_included" db:"travel_included"`
	LodgingIncluded     bool      `json:"lodging_included" db:"lodging_included"`
	TravelBudgetCap     *float64  `json:"travel_budget_cap,omitempty" db:"travel_budget_cap"`
	LodgingBudgetCap    *float64  `json:"lodging_budget_cap,omitempty" db:"lodging_budget_cap"`
	Status              string    `json:"status" db:"status"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

type CreateJobPostingRequest struct {
	Specialty           string   `json:"specialty" binding:"required"`
	Subspecialty        *string  `json:"subspecialty,omitempty"`
	RequiredLicenses    []string `json:"required_licenses" binding:"required,min=1"`
	StartDate           string   `json:"start_date" binding:"required"`
	EndDate             string   `json:"end_date" binding:"required"`
	AssignmentType      string   `json:"assignment_type" binding:"required"`
	BlockDuration       *int     `json:"block_duration,omitempty"`
	PayAmount           float64  `json:"pay_amount" binding:"required"`
	Requirements        *string  `json:"requirements,omitempty"`
	MalpracticeIncluded bool     `json:"malpractice_included"`
	TravelIncluded      bool     `json:"travel_included"`
	LodgingIncluded     bool     `json:"lodging_included"`
	TravelBudgetCap     *float64 `json:"travel_budget_cap,omitempty"`
	LodgingBudgetCap    *float64 `json:"lodging_budget_cap,omitempty"`
}

type UpdatePostingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
