package matching

import (
	"time"

	"github.com/google/uuid"
	"github.com/Shubh17ss/locumbnb-sub000/models"
)

// Rejection reason codes returned by PrepareSubmission.
const (
	RejectPostingUnavailable = "posting_unavailable"
	RejectProfileIncomplete  = "profile_incomplete"
	RejectRequirementsUnmet  = "requirements_unmet"
	RejectDateConflict       = "date_conflict"
)

// SubmissionRejection explains to the physician why their application was
// not created. Exactly one of the detail fields is set, matching Reason.
type SubmissionRejection struct {
	Reason       string             `json:"reason"`
	Message      string             `json:"message"`
	Eligibility  *EligibilityResult `json:"eligibility,omitempty"`
	Requirements *RequirementCheck  `json:"requirements,omitempty"`
	Overlap      *OverlapCheck      `json:"overlap,omitempty"`
}

// SubmissionEnv is best-effort audit context captured at submit time.
type SubmissionEnv struct {
	ClientIP        string
	DeviceSignature string
}

// SnapshotProfile freezes the profile as the facility will evaluate it.
// The copy is owned by its application and never mutated afterwards.
func SnapshotProfile(profile *models.PhysicianProfile, env SubmissionEnv, now time.Time) models.PhysicianProfileSnapshot {
	licenses := make([]models.StateLicense, len(profile.Licenses))
	copy(licenses, profile.Licenses)

	clientIP := env.ClientIP
	if clientIP == "" {
		clientIP = "unknown"
	}

	return models.PhysicianProfileSnapshot{
		LegalName:              profile.LegalName,
		Email:                  profile.Email,
		Phone:                  profile.Phone,
		Specialty:              profile.Specialty,
		Subspecialty:           profile.Subspecialty,
		BoardCertification:     profile.BoardCertification,
		YearsOfExperience:      profile.YearsOfExperience,
		Licenses:               licenses,
		CVDocumentURL:          profile.CVDocumentURL,
		NPDBReportURL:          profile.NPDBReportURL,
		FacilityQuestionnaire:  profile.FacilityQuestionnaire,
		InsuranceQuestionnaire: profile.InsuranceQuestionnaire,
		AttestationSignature:   profile.AttestationSignature,
		VerificationStatus:     profile.VerificationStatus,
		CapturedAt:             now,
		ClientIP:               clientIP,
		DeviceSignature:        env.DeviceSignature,
	}
}

// PrepareSubmission runs the full pre-flight for one application: posting
// must be open, the profile complete, the posting's hard requirements met,
// and the dates free. On success it returns the Application and its paired
// CalendarBlock; the caller must persist both together or neither.
func PrepareSubmission(
	posting *models.JobPosting,
	profile *models.PhysicianProfile,
	apps []models.Application,
	blocks []models.CalendarBlock,
	env SubmissionEnv,
	now time.Time,
	windowHours int,
) (*models.Application, *models.CalendarBlock, *SubmissionRejection) {
	if posting.Status != models.PostingStatusOpen {
		return nil, nil, &SubmissionRejection{
			Reason:  RejectPostingUnavailable,
			Message: "This posting is no longer accepting applications",
		}
	}

	eligibility := CheckProfileEligibility(profile)
	if !eligibility.Eligible {
		return nil, nil, &SubmissionRejection{
			Reason:      RejectProfileIncomplete,
			Message:     "Your profile is missing required information",
			Eligibility: &eligibility,
		}
	}

	snapshot := SnapshotProfile(profile, env, now)

	requirements := ValidateJobRequirements(posting, &snapshot, now)
	if !requirements.Meets {
		return nil, nil, &SubmissionRejection{
			Reason:       RejectRequirementsUnmet,
			Message:      "You do not meet this posting's requirements",
			Requirements: &requirements,
		}
	}

	overlap := CheckDateOverlap(profile.UserID, posting.StartDate, posting.EndDate, apps, blocks)
	if overlap.HasOverlap {
		return nil, nil, &SubmissionRejection{
			Reason:  RejectDateConflict,
			Message: "These dates conflict with an existing application or assignment",
			Overlap: &overlap,
		}
	}

	deadline := CalculateReviewDeadline(now, windowHours)
	app := models.Application{
		ID:                 uuid.New().String(),
		JobPostingID:       posting.ID,
		PhysicianID:        profile.UserID,
		PhysicianName:      profile.LegalName,
		PhysicianSpecialty: profile.Specialty,
		Status:             models.ApplicationStatusPending,
		AppliedAt:          now,
		ReviewDeadline:     deadline,
		CalendarBlocked:    true,
		BlockedDates: models.DateRange{
			StartDate: posting.StartDate,
			EndDate:   posting.EndDate,
		},
		ProfileSnapshot: snapshot,
	}

	block := NewCalendarBlock(profile.UserID, app.ID, posting.ID, posting.StartDate, posting.EndDate, deadline)
	return &app, &block, nil
}
