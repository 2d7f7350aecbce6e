package domain

import "time"

// Referral records a signup attributed to a referrer. The bonus starts
// at zero and is credited by an external settlement process.
type Referral struct {
	ID             int64
	ReferrerID     int64
	ReferredUserID int64
	Bonus          float64
	CreatedAt      time.Time
}

// ReferralStats aggregates a referrer's earnings and referral counts.
// Active counts only referrals that earned a bonus.
type ReferralStats struct {
	Balance float64
	Total   int
	Active  int
}
