package matching

import (
	"errors"
	"time"

	"github.com/Shubh17ss/locumbnb-sub000/models"
)

// State machine failures. These are actor mistakes, not faults; handlers
// translate them into user-facing messages.
var (
	ErrAlreadyDecided  = errors.New("application is already in a terminal state")
	ErrDeadlinePassed  = errors.New("the review deadline for this application has passed")
	ErrReasonRequired  = errors.New("a rejection reason is required")
	ErrInvalidDecision = errors.New("decision must be approve or reject")
	ErrNotPending      = errors.New("application is no longer pending")
)

// StartReview moves a pending application to under_review when the facility
// opens it. Idempotent for an application already under review.
func StartReview(app models.Application, now time.Time) (models.Application, error) {
	if app.Status == models.ApplicationStatusUnderReview {
		return app, nil
	}
	if app.IsTerminal() {
		return app, ErrAlreadyDecided
	}
	if IsApplicationExpired(now, app.ReviewDeadline) {
		return app, ErrDeadlinePassed
	}
	app.Status = models.ApplicationStatusUnderReview
	return app, nil
}

// ApplyFacilityDecision records an approve or reject on a live application.
// Approval keeps the calendar hold; rejection clears it and requires a
// reason. Decisions against terminal or past-deadline applications are
// rejected so a stale review screen can never overwrite reality.
func ApplyFacilityDecision(app models.Application, decision, reason string, now time.Time) (models.Application, error) {
	if app.IsTerminal() {
		return app, ErrAlreadyDecided
	}
	if IsApplicationExpired(now, app.ReviewDeadline) {
		return app, ErrDeadlinePassed
	}

	switch decision {
	case models.DecisionApprove:
		app.Status = models.ApplicationStatusApproved
		app.FacilityDecisionAt = &now
		if reason != "" {
			app.DecisionReason = &reason
		}
	case models.DecisionReject:
		if reason == "" {
			return app, ErrReasonRequired
		}
		app.Status = models.ApplicationStatusRejected
		app.FacilityDecisionAt = &now
		app.DecisionReason = &reason
		app.CalendarBlocked = false
	default:
		return app, ErrInvalidDecision
	}

	return app, nil
}

// WithdrawApplication is the physician-initiated exit. Only a still-pending
// application can be withdrawn; the calendar hold is cleared.
func WithdrawApplication(app models.Application, now time.Time) (models.Application, error) {
	if app.Status != models.ApplicationStatusPending {
		if app.IsTerminal() {
			return app, ErrAlreadyDecided
		}
		return app, ErrNotPending
	}
	if IsApplicationExpired(now, app.ReviewDeadline) {
		return app, ErrDeadlinePassed
	}
	app.Status = models.ApplicationStatusWithdrawn
	app.CalendarBlocked = false
	return app, nil
}
