package handlers

import (
	"fmt"
	"time"

	"github.com/Shubh17ss/locumbnb-sub000/matching"
	"github.com/Shubh17ss/locumbnb-sub000/models"
	"github.com/Shubh17ss/locumbnb-sub000/services"
	supa "github.com/supabase-community/supabase-go"
)

// expireStale applies the lazy expiry transform to freshly-read application
// rows and persists any flips, so no caller ever sees a pending application
// past its review deadline. The status guard on the update keeps concurrent
// sweeps harmless.
func expireStale(supabase *supa.Client, notifier services.Notifier, apps []models.Application, now time.Time) []models.Application {
	result, expiredIDs := matching.AutoExpireApplications(apps, now)
	if len(expiredIDs) == 0 {
		return result
	}

	for _, app := range result {
		if app.Status != models.ApplicationStatusExpired || !contains(expiredIDs, app.ID) {
			continue
		}

		if _, _, err := supabase.From("applications").
			Update(map[string]interface{}{
				"status":           models.ApplicationStatusExpired,
				"calendar_blocked": false,
			}, "", "").
			Eq("id", app.ID).
			Eq("status", models.ApplicationStatusPending).
			Execute(); err != nil {
			fmt.Printf("[expireStale] Failed to persist expiry for %s: %v\n", app.ID, err)
			continue
		}

		if _, _, err := supabase.From("calendar_blocks").
			Update(map[string]interface{}{"status": models.BlockStatusExpired}, "", "").
			Eq("application_id", app.ID).
			Eq("status", models.BlockStatusActive).
			Execute(); err != nil {
			fmt.Printf("[expireStale] Failed to expire block for %s: %v\n", app.ID, err)
		}

		go notifier.Notify(services.Notification{
			Event:         services.EventApplicationExpired,
			ApplicationID: app.ID,
			JobPostingID:  app.JobPostingID,
			PhysicianID:   app.PhysicianID,
			Detail:        "Review deadline passed without a facility decision",
			OccurredAt:    now,
		})
	}

	return result
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
