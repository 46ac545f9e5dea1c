package matching

import "time"

// DefaultReviewWindowHours is how long a facility has to decide on a pending
// application before it auto-expires. Policy allows 48-72h; 72 is the default.
const DefaultReviewWindowHours = 72

// CalculateReviewDeadline uses absolute time arithmetic, not calendar days,
// so a DST transition inside the window never skews the hour count.
func CalculateReviewDeadline(appliedAt time.Time, windowHours int) time.Time {
	if windowHours <= 0 {
		windowHours = DefaultReviewWindowHours
	}
	return appliedAt.Add(time.Duration(windowHours) * time.Hour)
}

func IsApplicationExpired(now, reviewDeadline time.Time) bool {
	return now.After(reviewDeadline)
}
