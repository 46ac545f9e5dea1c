package matching

import (
	"github.com/Shubh17ss/locumbnb-sub000/models"
)

type EligibilityResult struct {
	Eligible      bool     `json:"eligible"`
	MissingFields []string `json:"missing_fields"`
}

// CheckProfileEligibility is the authoritative gate before a physician may
// submit an application. Every check runs so the caller can report all gaps
// at once; nothing short-circuits.
func CheckProfileEligibility(profile *models.PhysicianProfile) EligibilityResult {
	var missing []string

	if profile.LegalName == "" {
		missing = append(missing, "Legal Name")
	}
	if profile.Email == "" {
		missing = append(missing, "Email")
	}
	if profile.Phone == "" {
		missing = append(missing, "Phone")
	}
	if profile.Specialty == "" {
		missing = append(missing, "Specialty")
	}
	if profile.BoardCertification == "" {
		missing = append(missing, "Board Certification Status")
	}
	if profile.YearsOfExperience == nil {
		missing = append(missing, "Years of Experience")
	}
	if len(profile.Licenses) == 0 {
		missing = append(missing, "State License")
	}
	if profile.CVDocumentURL == "" {
		missing = append(missing, "CV/Resume")
	}
	if profile.NPDBReportURL == "" {
		missing = append(missing, "NPDB Report")
	}
	if !profile.FacilityQuestionnaire {
		missing = append(missing, "Facility Questionnaire")
	}
	if !profile.InsuranceQuestionnaire {
		missing = append(missing, "Insurance Questionnaire")
	}
	if profile.AttestationSignature == "" {
		missing = append(missing, "Digital Attestation")
	}

	return EligibilityResult{
		Eligible:      len(missing) == 0,
		MissingFields: missing,
	}
}
