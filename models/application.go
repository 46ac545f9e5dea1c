package models

import "time"

const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusUnderReview = "under_review"
	ApplicationStatusApproved    = "approved"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusExpired     = "expired"
	ApplicationStatusWithdrawn   = "withdrawn"
)

type Application struct {
	ID                 string                   `json:"id" db:"id"`
	JobPostingID       string                   `json:"job_posting_id" db:"job_posting_id"`
	PhysicianID        string                   `json:"physician_id" db:"physician_id"`
	PhysicianName      string                   `json:"physician_name" db:"physician_name"`
	PhysicianSpecialty string                   `json:"physician_specialty" db:"physician_specialty"`
	Status             string                   `json:"status" db:"status"`
	AppliedAt          time.Time                `json:"applied_at" db:"applied_at"`
	ReviewDeadline     time.Time                `json:"review_deadline" db:"review_deadline"`
	FacilityDecisionAt *time.Time               `json:"facility_decision_at,omitempty" db:"facility_decision_at"`
	DecisionReason     *string                  `json:"decision_reason,omitempty" db:"decision_reason"`
	CalendarBlocked    bool                     `json:"calendar_blocked" db:"calendar_blocked"`
	BlockedDates       DateRange                `json:"blocked_dates" db:"blocked_dates"`
	ProfileSnapshot    PhysicianProfileSnapshot `json:"profile_snapshot" db:"profile_snapshot"`
	CreatedAt          time.Time                `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at" db:"updated_at"`
}

// DateRange is a pair of inclusive ISO dates (YYYY-MM-DD). A locum
// assignment occupies full calendar days, so both endpoints count.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// IsTerminal reports whether the application can never change state again.
func (a *Application) IsTerminal() bool {
	switch a.Status {
	case ApplicationStatusApproved, ApplicationStatusRejected,
		ApplicationStatusExpired, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

type SubmitApplicationRequest struct {
	JobPostingID string `json:"job_posting_id" binding:"required"`
}

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
	Reason   string `json:"reason"`
}
