package matching

import (
	"testing"
	"time"

	"github.com/Shubh17ss/locumbnb-sub000/models"
)

func openPosting(id, start, end string) *models.JobPosting {
	return &models.JobPosting{
		ID:               id,
		FacilityID:       "fac-1",
		FacilityName:     "St. Aurelia Regional",
		Specialty:        "Emergency Medicine",
		RequiredLicenses: []string{"NY"},
		StartDate:        start,
		EndDate:          end,
		AssignmentType:   models.AssignmentTypeFixedBlock,
		Status:           models.PostingStatusOpen,
	}
}

func TestSubmissionCreatesApplicationWithPairedBlock(t *testing.T) {
	now := time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)
	posting := openPosting("posting-1", "2025-03-01", "2025-03-07")
	profile := completeProfile()

	app, block, rejection := PrepareSubmission(posting, profile, nil, nil,
		SubmissionEnv{ClientIP: "203.0.113.7", DeviceSignature: "test-agent"}, now, 72)

	if rejection != nil {
		t.Fatalf("expected clean submission, got rejection %+v", rejection)
	}
	if app.Status != models.ApplicationStatusPending {
		t.Fatalf("expected pending, got %s", app.Status)
	}
	if want := now.Add(72 * time.Hour); !app.ReviewDeadline.Equal(want) {
		t.Fatalf("expected deadline %v, got %v", want, app.ReviewDeadline)
	}
	if !app.CalendarBlocked {
		t.Fatal("new application must hold the calendar")
	}
	if app.BlockedDates.StartDate != posting.StartDate || app.BlockedDates.EndDate != posting.EndDate {
		t.Fatal("blocked dates must equal the posting's range at apply time")
	}
	if app.ProfileSnapshot.ClientIP != "203.0.113.7" {
		t.Fatalf("snapshot must carry the client IP, got %q", app.ProfileSnapshot.ClientIP)
	}

	if block.Status != models.BlockStatusActive {
		t.Fatalf("expected active block, got %s", block.Status)
	}
	if block.Reason != models.BlockReasonPendingApplication {
		t.Fatalf("expected pending_application reason, got %s", block.Reason)
	}
	if block.ApplicationID != app.ID || block.JobPostingID != posting.ID {
		t.Fatal("block must reference its application and posting")
	}
	if block.ExpiresAt == nil || !block.ExpiresAt.Equal(app.ReviewDeadline) {
		t.Fatal("block expiry must mirror the review deadline")
	}
	if block.StartDate != posting.StartDate || block.EndDate != posting.EndDate {
		t.Fatal("block range must equal the posting's range")
	}
}

func TestSubmissionRejectsOverlappingSecondApplication(t *testing.T) {
	now := time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)
	profile := completeProfile()

	first, firstBlock, rejection := PrepareSubmission(
		openPosting("posting-1", "2025-03-01", "2025-03-07"), profile, nil, nil,
		SubmissionEnv{}, now, 72)
	if rejection != nil {
		t.Fatalf("first submission should succeed, got %+v", rejection)
	}

	app, block, rejection := PrepareSubmission(
		openPosting("posting-2", "2025-03-05", "2025-03-10"), profile,
		[]models.Application{*first}, []models.CalendarBlock{*firstBlock},
		SubmissionEnv{}, now.Add(time.Minute), 72)

	if app != nil || block != nil {
		t.Fatal("no application or block may be created on conflict")
	}
	if rejection == nil || rejection.Reason != RejectDateConflict {
		t.Fatalf("expected date_conflict rejection, got %+v", rejection)
	}
	if rejection.Overlap == nil || !rejection.Overlap.HasOverlap {
		t.Fatal("rejection must carry the overlap detail")
	}
}

func TestSubmissionRejectsIncompleteProfile(t *testing.T) {
	now := time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)
	profile := completeProfile()
	profile.NPDBReportURL = ""

	app, block, rejection := PrepareSubmission(
		openPosting("posting-1", "2025-03-01", "2025-03-07"), profile, nil, nil,
		SubmissionEnv{}, now, 72)

	if app != nil || block != nil {
		t.Fatal("incomplete profile must not create state")
	}
	if rejection == nil || rejection.Reason != RejectProfileIncomplete {
		t.Fatalf("expected profile_incomplete, got %+v", rejection)
	}
	if rejection.Eligibility == nil || len(rejection.Eligibility.MissingFields) == 0 {
		t.Fatal("rejection must say which fields are missing")
	}
}

func TestSubmissionRejectsClosedPosting(t *testing.T) {
	now := time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)
	posting := openPosting("posting-1", "2025-03-01", "2025-03-07")
	posting.Status = models.PostingStatusFilled

	_, _, rejection := PrepareSubmission(posting, completeProfile(), nil, nil, SubmissionEnv{}, now, 72)
	if rejection == nil || rejection.Reason != RejectPostingUnavailable {
		t.Fatalf("expected posting_unavailable, got %+v", rejection)
	}
}

func TestSubmissionRejectsUnmetRequirements(t *testing.T) {
	now := time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)
	posting := openPosting("posting-1", "2025-03-01", "2025-03-07")
	posting.RequiredLicenses = []string{"NY", "CA"}

	_, _, rejection := PrepareSubmission(posting, completeProfile(), nil, nil, SubmissionEnv{}, now, 72)
	if rejection == nil || rejection.Reason != RejectRequirementsUnmet {
		t.Fatalf("expected requirements_unmet, got %+v", rejection)
	}
}

func TestSnapshotDefaultsUnknownIP(t *testing.T) {
	now := time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)
	snapshot := SnapshotProfile(completeProfile(), SubmissionEnv{}, now)
	if snapshot.ClientIP != "unknown" {
		t.Fatalf("IP lookup failure must record unknown, got %q", snapshot.ClientIP)
	}
}

func TestSnapshotIsIndependentOfLaterProfileEdits(t *testing.T) {
	now := time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)
	profile := completeProfile()
	snapshot := SnapshotProfile(profile, SubmissionEnv{}, now)

	profile.LegalName = "Someone Else"
	profile.Licenses[0].State = "ZZ"

	if snapshot.LegalName != "Dana Whitfield" {
		t.Fatal("snapshot must freeze scalar fields")
	}
	if snapshot.Licenses[0].State != "NY" {
		t.Fatal("snapshot must deep-copy the licensure list")
	}
}
