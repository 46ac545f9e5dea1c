package matching

import (
	"time"

	"github.com/Shubh17ss/locumbnb-sub000/models"
)

// AutoExpireApplications flips every pending application whose review
// deadline has passed to expired and clears its calendar hold. All other
// applications pass through untouched. The transform is pure, idempotent
// and order-independent, so it is safe to re-run on every read.
func AutoExpireApplications(apps []models.Application, now time.Time) ([]models.Application, []string) {
	result := make([]models.Application, len(apps))
	var expiredIDs []string

	for i, app := range apps {
		if app.Status == models.ApplicationStatusPending && IsApplicationExpired(now, app.ReviewDeadline) {
			app.Status = models.ApplicationStatusExpired
			app.CalendarBlocked = false
			expiredIDs = append(expiredIDs, app.ID)
		}
		result[i] = app
	}

	return result, expiredIDs
}
