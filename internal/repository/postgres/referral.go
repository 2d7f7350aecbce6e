package postgres

import (
	"context"
	"database/sql"
)

// ReferralRepo implements repository.ReferralRepository
type ReferralRepo struct {
	db *sql.DB
}

// NewReferralRepo creates a new referral repository
func NewReferralRepo(db *sql.DB) *ReferralRepo {
	return &ReferralRepo{db: db}
}

// Create records a referral with a zero starting bonus
func (r *ReferralRepo) Create(ctx context.Context, referrerID, referredID int64) error {
	query := `
		INSERT INTO referrals (referrer_id, referred_user_id, bonus)
		VALUES ($1, $2, 0)
	`
	_, err := r.db.ExecContext(ctx, query, referrerID, referredID)
	return err
}

// SumBonusForReferrer returns the referrer's accumulated bonus
func (r *ReferralRepo) SumBonusForReferrer(ctx context.Context, referrerID int64) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(bonus), 0) FROM referrals WHERE referrer_id = $1`
	err := r.db.QueryRowContext(ctx, query, referrerID).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// CountReferrals counts the referrer's referrals, optionally only the
// ones that have earned a bonus
func (r *ReferralRepo) CountReferrals(ctx context.Context, referrerID int64, onlyPaid bool) (int, error) {
	query := `SELECT COUNT(*) FROM referrals WHERE referrer_id = $1`
	if onlyPaid {
		query += ` AND bonus > 0`
	}

	var count int
	err := r.db.QueryRowContext(ctx, query, referrerID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
