package matching

import (
	"fmt"
	"time"

	"github.com/Shubh17ss/locumbnb-sub000/models"
)

type RequirementCheck struct {
	Meets               bool     `json:"meets"`
	MissingRequirements []string `json:"missing_requirements"`
}

// ValidateJobRequirements checks a posting's hard requirements against the
// profile snapshot under review. All failures accumulate. Specialty is
// re-checked even though browse already filters by it, and any expired
// license flags the physician regardless of whether that state is required.
func ValidateJobRequirements(posting *models.JobPosting, snapshot *models.PhysicianProfileSnapshot, now time.Time) RequirementCheck {
	var missing []string

	if snapshot.Specialty != posting.Specialty {
		missing = append(missing, fmt.Sprintf("Specialty mismatch: posting requires %s", posting.Specialty))
	}

	held := make(map[string]bool, len(snapshot.Licenses))
	for _, lic := range snapshot.Licenses {
		held[lic.State] = true
	}
	for _, state := range posting.RequiredLicenses {
		if !held[state] {
			missing = append(missing, fmt.Sprintf("Missing required license: %s", state))
		}
	}

	today := now.Format("2006-01-02")
	for _, lic := range snapshot.Licenses {
		if lic.ExpirationDate != "" && lic.ExpirationDate < today {
			missing = append(missing, fmt.Sprintf("Expired license: %s (expired %s)", lic.State, lic.ExpirationDate))
		}
	}

	return RequirementCheck{
		Meets:               len(missing) == 0,
		MissingRequirements: missing,
	}
}
