package services

import "time"

const (
	EventApplicationSubmitted = "application.submitted"
	EventApplicationWithdrawn = "application.withdrawn"
	EventFacilityDecision     = "application.decision"
	EventApplicationExpired   = "application.expired"
)

type Notification struct {
	Event         string    `json:"event"`
	ApplicationID string    `json:"application_id"`
	JobPostingID  string    `json:"job_posting_id,omitempty"`
	PhysicianID   string    `json:"physician_id,omitempty"`
	FacilityID    string    `json:"facility_id,omitempty"`
	Detail        string    `json:"detail,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Notifier dispatches workflow events to physicians and facilities.
// Delivery is fire-and-forget; the workflow never waits on it.
type Notifier interface {
	Notify(n Notification)
}
