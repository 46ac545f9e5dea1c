package models

import "time"

const (
	BlockStatusActive   = "active"
	BlockStatusExpired  = "expired"
	BlockStatusReleased = "released"
)

const (
	BlockReasonPendingApplication  = "pending_application"
	BlockReasonApprovedAssignment  = "approved_assignment"
	BlockReasonScheduledAssignment = "scheduled_assignment"
)

type CalendarBlock struct {
	ID            string     `json:"id" db:"id"`
	PhysicianID   string     `json:"physician_id" db:"physician_id"`
	ApplicationID string     `json:"application_id" db:"application_id"`
	JobPostingID  string     `json:"job_posting_id" db:"job_posting_id"`
	StartDate     string     `json:"start_date" db:"start_date"`
	EndDate       string     `json:"end_date" db:"end_date"`
	Status        string     `json:"status" db:"status"`
	Reason        string     `json:"reason" db:"reason"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	ReleasedAt    *time.Time `json:"released_at,omitempty" db:"released_at"`
}
