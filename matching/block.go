package matching

import (
	"time"

	"github.com/google/uuid"
	"github.com/Shubh17ss/locumbnb-sub000/models"
)

// NewCalendarBlock builds the reservation paired with a fresh application.
// It does not check for conflicts; the caller must have already run
// CheckDateOverlap.
func NewCalendarBlock(physicianID, applicationID, jobPostingID, startDate, endDate string, reviewDeadline time.Time) models.CalendarBlock {
	expiresAt := reviewDeadline
	return models.CalendarBlock{
		ID:            uuid.New().String(),
		PhysicianID:   physicianID,
		ApplicationID: applicationID,
		JobPostingID:  jobPostingID,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        models.BlockStatusActive,
		Reason:        models.BlockReasonPendingApplication,
		CreatedAt:     time.Now().UTC(),
		ExpiresAt:     &expiresAt,
	}
}

// ReleaseCalendarBlock returns a copy freed by withdrawal or rejection.
func ReleaseCalendarBlock(block models.CalendarBlock, now time.Time) models.CalendarBlock {
	released := block
	released.Status = models.BlockStatusReleased
	released.ReleasedAt = &now
	return released
}

// ExpireCalendarBlock returns a copy closed because the review deadline
// passed. Kept distinct from released so the record shows why the
// reservation ended.
func ExpireCalendarBlock(block models.CalendarBlock) models.CalendarBlock {
	expired := block
	expired.Status = models.BlockStatusExpired
	return expired
}
