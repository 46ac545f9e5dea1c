package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Shubh17ss/locumbnb-sub000/matching"
	"github.com/Shubh17ss/locumbnb-sub000/models"
	supa "github.com/supabase-community/supabase-go"
)

// ExpirySweeper periodically applies the same idempotent expiry transform
// the read path runs lazily, so a pending application that nobody re-reads
// still flips to expired on time.
type ExpirySweeper struct {
	supabase *supa.Client
	interval time.Duration
	notifier Notifier
}

func NewExpirySweeper(supabase *supa.Client, interval time.Duration, notifier Notifier) *ExpirySweeper {
	return &ExpirySweeper{
		supabase: supabase,
		interval: interval,
		notifier: notifier,
	}
}

func (s *ExpirySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("Expiry sweeper running every %s", s.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Expiry sweeper stopped")
			return
		case <-ticker.C:
			expired, err := s.SweepOnce(time.Now().UTC())
			if err != nil {
				log.Printf("Expiry sweep failed: %v", err)
				continue
			}
			if expired > 0 {
				log.Printf("Expiry sweep closed %d application(s)", expired)
			}
		}
	}
}

// SweepOnce expires every pending application whose review deadline has
// passed, flips the paired calendar blocks, and notifies both parties.
func (s *ExpirySweeper) SweepOnce(now time.Time) (int, error) {
	var pending []models.Application
	data, _, err := s.supabase.From("applications").
		Select("*", "", false).
		Eq("status", models.ApplicationStatusPending).
		Lt("review_deadline", now.Format(time.RFC3339)).
		Execute()
	if err != nil {
		return 0, err
	}
	if err := json.Unmarshal(data, &pending); err != nil {
		return 0, err
	}

	expired, expiredIDs := matching.AutoExpireApplications(pending, now)
	if len(expiredIDs) == 0 {
		return 0, nil
	}

	for _, app := range expired {
		if app.Status != models.ApplicationStatusExpired {
			continue
		}

		if _, _, err := s.supabase.From("applications").
			Update(map[string]interface{}{
				"status":           models.ApplicationStatusExpired,
				"calendar_blocked": false,
			}, "", "").
			Eq("id", app.ID).
			Eq("status", models.ApplicationStatusPending).
			Execute(); err != nil {
			log.Printf("Expiry sweep: failed to expire application %s: %v", app.ID, err)
			continue
		}

		if _, _, err := s.supabase.From("calendar_blocks").
			Update(map[string]interface{}{"status": models.BlockStatusExpired}, "", "").
			Eq("application_id", app.ID).
			Eq("status", models.BlockStatusActive).
			Execute(); err != nil {
			log.Printf("Expiry sweep: failed to expire block for application %s: %v", app.ID, err)
		}

		go s.notifier.Notify(Notification{
			Event:         EventApplicationExpired,
			ApplicationID: app.ID,
			JobPostingID:  app.JobPostingID,
			PhysicianID:   app.PhysicianID,
			Detail:        "Review deadline passed without a facility decision",
			OccurredAt:    now,
		})
	}

	return len(expiredIDs), nil
}
