package matching

import (
	"testing"
	"time"
)

func TestCalculateReviewDeadline(t *testing.T) {
	appliedAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	deadline := CalculateReviewDeadline(appliedAt, 72)
	if want := appliedAt.Add(72 * time.Hour); !deadline.Equal(want) {
		t.Fatalf("expected %v, got %v", want, deadline)
	}
}

func TestCalculateReviewDeadlineDefaultsWindow(t *testing.T) {
	appliedAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	deadline := CalculateReviewDeadline(appliedAt, 0)
	if want := appliedAt.Add(DefaultReviewWindowHours * time.Hour); !deadline.Equal(want) {
		t.Fatalf("expected default window, got %v", deadline)
	}
}

func TestReviewDeadlineAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// US spring-forward: 2025-03-09 02:00 local jumps to 03:00. The window
	// must still be exactly 72 absolute hours.
	appliedAt := time.Date(2025, 3, 8, 12, 0, 0, 0, loc)
	deadline := CalculateReviewDeadline(appliedAt, 72)

	if elapsed := deadline.Sub(appliedAt); elapsed != 72*time.Hour {
		t.Fatalf("expected exactly 72h, got %v", elapsed)
	}
	// Wall clock lands an hour later than naive day math because one hour
	// of local time does not exist in the window.
	if deadline.In(loc).Hour() != 13 {
		t.Fatalf("expected wall clock 13:00 after DST skip, got %02d:00", deadline.In(loc).Hour())
	}
}

func TestIsApplicationExpired(t *testing.T) {
	deadline := time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)

	if IsApplicationExpired(deadline, deadline) {
		t.Fatal("deadline instant itself is not yet expired")
	}
	if !IsApplicationExpired(deadline.Add(time.Second), deadline) {
		t.Fatal("any instant past the deadline is expired")
	}
	if IsApplicationExpired(deadline.Add(-time.Second), deadline) {
		t.Fatal("instants before the deadline are not expired")
	}
}
