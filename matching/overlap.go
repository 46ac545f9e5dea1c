package matching

import (
	"github.com/Shubh17ss/locumbnb-sub000/models"
)

type OverlapCheck struct {
	HasOverlap              bool                   `json:"has_overlap"`
	OverlappingApplications []models.Application   `json:"overlapping_applications"`
	OverlappingAssignments  []models.CalendarBlock `json:"overlapping_assignments"`
	BlockedDates            []models.DateRange     `json:"blocked_dates"`
}

// rangesOverlap reports whether two inclusive date ranges share at least one
// calendar day. Dates are ISO YYYY-MM-DD strings, so lexicographic order is
// date order. Touching endpoints count: an assignment occupies full days.
func rangesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart <= bEnd && aEnd >= bStart
}

// applicationBlocks reports whether an application still reserves its dates.
// Rejected, expired and withdrawn applications no longer hold the calendar.
func applicationBlocks(status string) bool {
	switch status {
	case models.ApplicationStatusRejected,
		models.ApplicationStatusExpired,
		models.ApplicationStatusWithdrawn:
		return false
	}
	return true
}

// CheckDateOverlap finds conflicts between a candidate date range and the
// physician's existing applications and calendar blocks. It is the sole guard
// against double-booking; callers must abort submission when HasOverlap is
// true. A physician's own unresolved application for the same posting counts
// as a conflict too.
func CheckDateOverlap(physicianID, startDate, endDate string, apps []models.Application, blocks []models.CalendarBlock) OverlapCheck {
	result := OverlapCheck{}

	for _, app := range apps {
		if app.PhysicianID != physicianID {
			continue
		}
		if !applicationBlocks(app.Status) {
			continue
		}
		if rangesOverlap(startDate, endDate, app.BlockedDates.StartDate, app.BlockedDates.EndDate) {
			result.OverlappingApplications = append(result.OverlappingApplications, app)
			result.BlockedDates = append(result.BlockedDates, app.BlockedDates)
		}
	}

	for _, block := range blocks {
		if block.PhysicianID != physicianID {
			continue
		}
		if block.Status != models.BlockStatusActive {
			continue
		}
		if rangesOverlap(startDate, endDate, block.StartDate, block.EndDate) {
			result.OverlappingAssignments = append(result.OverlappingAssignments, block)
			result.BlockedDates = append(result.BlockedDates, models.DateRange{
				StartDate: block.StartDate,
				EndDate:   block.EndDate,
			})
		}
	}

	result.HasOverlap = len(result.OverlappingApplications) > 0 || len(result.OverlappingAssignments) > 0
	return result
}
