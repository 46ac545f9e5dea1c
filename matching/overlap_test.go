package matching

import (
	"testing"
	"time"

	"github.com/Shubh17ss/locumbnb-sub000/models"
)

func testApp(physicianID, status, start, end string) models.Application {
	return models.Application{
		ID:           "app-" + start,
		JobPostingID: "posting-" + start,
		PhysicianID:  physicianID,
		Status:       status,
		BlockedDates: models.DateRange{StartDate: start, EndDate: end},
	}
}

func testBlock(physicianID, status, start, end string) models.CalendarBlock {
	return models.CalendarBlock{
		ID:          "block-" + start,
		PhysicianID: physicianID,
		Status:      status,
		StartDate:   start,
		EndDate:     end,
	}
}

func TestOverlapBoundaryInclusive(t *testing.T) {
	apps := []models.Application{
		testApp("phys-1", models.ApplicationStatusPending, "2025-01-01", "2025-01-05"),
	}

	result := CheckDateOverlap("phys-1", "2025-01-05", "2025-01-10", apps, nil)
	if !result.HasOverlap {
		t.Fatal("expected touching endpoints to count as an overlap")
	}
	if len(result.OverlappingApplications) != 1 {
		t.Fatalf("expected 1 overlapping application, got %d", len(result.OverlappingApplications))
	}
}

func TestNoOverlapForAdjacentRanges(t *testing.T) {
	apps := []models.Application{
		testApp("phys-1", models.ApplicationStatusPending, "2025-01-01", "2025-01-05"),
	}

	result := CheckDateOverlap("phys-1", "2025-01-06", "2025-01-10", apps, nil)
	if result.HasOverlap {
		t.Fatal("expected no overlap for ranges separated by a day")
	}
}

func TestOverlapSymmetry(t *testing.T) {
	pairs := [][4]string{
		{"2025-01-01", "2025-01-05", "2025-01-05", "2025-01-10"},
		{"2025-01-01", "2025-01-05", "2025-01-06", "2025-01-10"},
		{"2025-03-01", "2025-03-07", "2025-03-05", "2025-03-10"},
		{"2025-02-10", "2025-02-20", "2025-02-12", "2025-02-14"},
	}

	for _, p := range pairs {
		apps := []models.Application{testApp("phys-1", models.ApplicationStatusPending, p[0], p[1])}
		forward := CheckDateOverlap("phys-1", p[2], p[3], apps, nil).HasOverlap

		swapped := []models.Application{testApp("phys-1", models.ApplicationStatusPending, p[2], p[3])}
		backward := CheckDateOverlap("phys-1", p[0], p[1], swapped, nil).HasOverlap

		if forward != backward {
			t.Errorf("overlap verdict not symmetric for %v: forward=%v backward=%v", p, forward, backward)
		}
	}
}

func TestOverlapStatusFiltering(t *testing.T) {
	blocking := []string{
		models.ApplicationStatusPending,
		models.ApplicationStatusUnderReview,
		models.ApplicationStatusApproved,
	}
	for _, status := range blocking {
		apps := []models.Application{testApp("phys-1", status, "2025-01-01", "2025-01-05")}
		if !CheckDateOverlap("phys-1", "2025-01-03", "2025-01-08", apps, nil).HasOverlap {
			t.Errorf("status %s should count as a conflict", status)
		}
	}

	cleared := []string{
		models.ApplicationStatusRejected,
		models.ApplicationStatusExpired,
		models.ApplicationStatusWithdrawn,
	}
	for _, status := range cleared {
		apps := []models.Application{testApp("phys-1", status, "2025-01-01", "2025-01-05")}
		if CheckDateOverlap("phys-1", "2025-01-03", "2025-01-08", apps, nil).HasOverlap {
			t.Errorf("status %s should not count as a conflict", status)
		}
	}
}

func TestOverlapBlockStatusFiltering(t *testing.T) {
	active := []models.CalendarBlock{testBlock("phys-1", models.BlockStatusActive, "2025-01-01", "2025-01-05")}
	if !CheckDateOverlap("phys-1", "2025-01-04", "2025-01-09", nil, active).HasOverlap {
		t.Error("active block should conflict")
	}

	for _, status := range []string{models.BlockStatusReleased, models.BlockStatusExpired} {
		blocks := []models.CalendarBlock{testBlock("phys-1", status, "2025-01-01", "2025-01-05")}
		if CheckDateOverlap("phys-1", "2025-01-04", "2025-01-09", nil, blocks).HasOverlap {
			t.Errorf("%s block should not conflict", status)
		}
	}
}

func TestOverlapIgnoresOtherPhysicians(t *testing.T) {
	apps := []models.Application{testApp("phys-2", models.ApplicationStatusPending, "2025-01-01", "2025-01-05")}
	blocks := []models.CalendarBlock{testBlock("phys-2", models.BlockStatusActive, "2025-01-01", "2025-01-05")}

	result := CheckDateOverlap("phys-1", "2025-01-01", "2025-01-05", apps, blocks)
	if result.HasOverlap {
		t.Fatal("another physician's calendar must not conflict")
	}
}

func TestReapplyToUnresolvedApplicationConflicts(t *testing.T) {
	// Re-applying to the same posting while the first application is still
	// pending is treated like any other conflict.
	app := testApp("phys-1", models.ApplicationStatusPending, "2025-03-01", "2025-03-07")

	result := CheckDateOverlap("phys-1", "2025-03-01", "2025-03-07", []models.Application{app}, nil)
	if !result.HasOverlap {
		t.Fatal("expected re-application against an unresolved application to conflict")
	}
}

func TestOverlapReportsBlockedDates(t *testing.T) {
	apps := []models.Application{testApp("phys-1", models.ApplicationStatusPending, "2025-01-01", "2025-01-05")}
	blocks := []models.CalendarBlock{testBlock("phys-1", models.BlockStatusActive, "2025-01-08", "2025-01-12")}

	result := CheckDateOverlap("phys-1", "2025-01-04", "2025-01-09", apps, blocks)
	if len(result.BlockedDates) != 2 {
		t.Fatalf("expected 2 blocked ranges, got %d", len(result.BlockedDates))
	}
}

func TestReleaseCalendarBlock(t *testing.T) {
	now := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	block := testBlock("phys-1", models.BlockStatusActive, "2025-03-01", "2025-03-07")

	released := ReleaseCalendarBlock(block, now)
	if released.Status != models.BlockStatusReleased {
		t.Fatalf("expected released status, got %s", released.Status)
	}
	if released.ReleasedAt == nil || !released.ReleasedAt.Equal(now) {
		t.Fatal("expected released_at set to now")
	}
	if block.Status != models.BlockStatusActive {
		t.Fatal("release must not mutate the original block")
	}
}
