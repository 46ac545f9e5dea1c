package matching

import (
	"reflect"
	"testing"
	"time"

	"github.com/Shubh17ss/locumbnb-sub000/models"
)

func TestAutoExpirePendingPastDeadline(t *testing.T) {
	now := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	apps := []models.Application{
		{
			ID:              "app-1",
			Status:          models.ApplicationStatusPending,
			ReviewDeadline:  now.Add(-time.Hour),
			CalendarBlocked: true,
		},
		{
			ID:              "app-2",
			Status:          models.ApplicationStatusPending,
			ReviewDeadline:  now.Add(time.Hour),
			CalendarBlocked: true,
		},
		{
			ID:              "app-3",
			Status:          models.ApplicationStatusApproved,
			ReviewDeadline:  now.Add(-48 * time.Hour),
			CalendarBlocked: true,
		},
	}

	result, expiredIDs := AutoExpireApplications(apps, now)

	if result[0].Status != models.ApplicationStatusExpired {
		t.Fatalf("app-1 should expire, got %s", result[0].Status)
	}
	if result[0].CalendarBlocked {
		t.Fatal("expired application must release its calendar hold")
	}
	if result[1].Status != models.ApplicationStatusPending {
		t.Fatalf("app-2 is inside its window, got %s", result[1].Status)
	}
	if result[2].Status != models.ApplicationStatusApproved || !result[2].CalendarBlocked {
		t.Fatal("approved application must pass through untouched")
	}
	if len(expiredIDs) != 1 || expiredIDs[0] != "app-1" {
		t.Fatalf("expected expired IDs [app-1], got %v", expiredIDs)
	}
}

func TestAutoExpireIsIdempotent(t *testing.T) {
	now := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	apps := []models.Application{
		{ID: "app-1", Status: models.ApplicationStatusPending, ReviewDeadline: now.Add(-time.Minute), CalendarBlocked: true},
		{ID: "app-2", Status: models.ApplicationStatusUnderReview, ReviewDeadline: now.Add(-time.Minute), CalendarBlocked: true},
	}

	once, _ := AutoExpireApplications(apps, now)
	twice, secondIDs := AutoExpireApplications(once, now)

	if !reflect.DeepEqual(once, twice) {
		t.Fatal("running the expiry transform twice must equal running it once")
	}
	if len(secondIDs) != 0 {
		t.Fatalf("second run must find nothing new to expire, got %v", secondIDs)
	}
}

func TestAutoExpireDoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	apps := []models.Application{
		{ID: "app-1", Status: models.ApplicationStatusPending, ReviewDeadline: now.Add(-time.Minute), CalendarBlocked: true},
	}

	AutoExpireApplications(apps, now)

	if apps[0].Status != models.ApplicationStatusPending || !apps[0].CalendarBlocked {
		t.Fatal("input slice must not be mutated")
	}
}

func TestExpireCalendarBlock(t *testing.T) {
	block := models.CalendarBlock{ID: "block-1", Status: models.BlockStatusActive}

	expired := ExpireCalendarBlock(block)
	if expired.Status != models.BlockStatusExpired {
		t.Fatalf("expected expired, got %s", expired.Status)
	}
	if block.Status != models.BlockStatusActive {
		t.Fatal("original must be unchanged")
	}
}
