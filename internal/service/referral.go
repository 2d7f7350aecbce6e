package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"signalbot/internal/domain"
	"signalbot/internal/repository"
)

// ReferralService aggregates referral earnings and attributes new
// signups to referrers
type ReferralService struct {
	referrals repository.ReferralRepository
	logger    *zap.Logger
}

// NewReferralService creates a new referral service
func NewReferralService(referrals repository.ReferralRepository, logger *zap.Logger) *ReferralService {
	return &ReferralService{
		referrals: referrals,
		logger:    logger,
	}
}

// Balance returns the referrer's accumulated bonus
func (s *ReferralService) Balance(ctx context.Context, referrerID int64) (float64, error) {
	balance, err := s.referrals.SumBonusForReferrer(ctx, referrerID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum referral bonus: %w", err)
	}
	return balance, nil
}

// Stats returns the referrer's balance together with total and active
// referral counts. Active means the referral has earned a bonus.
func (s *ReferralService) Stats(ctx context.Context, referrerID int64) (domain.ReferralStats, error) {
	balance, err := s.referrals.SumBonusForReferrer(ctx, referrerID)
	if err != nil {
		return domain.ReferralStats{}, fmt.Errorf("failed to sum referral bonus: %w", err)
	}

	total, err := s.referrals.CountReferrals(ctx, referrerID, false)
	if err != nil {
		return domain.ReferralStats{}, fmt.Errorf("failed to count referrals: %w", err)
	}

	active, err := s.referrals.CountReferrals(ctx, referrerID, true)
	if err != nil {
		return domain.ReferralStats{}, fmt.Errorf("failed to count active referrals: %w", err)
	}

	return domain.ReferralStats{
		Balance: balance,
		Total:   total,
		Active:  active,
	}, nil
}

// Attribute records that referredID signed up through referrerID's
// link. Self-referrals and non-positive referrer ids are ignored.
func (s *ReferralService) Attribute(ctx context.Context, referrerID, referredID int64) error {
	if referrerID <= 0 || referrerID == referredID {
		return nil
	}

	if err := s.referrals.Create(ctx, referrerID, referredID); err != nil {
		return fmt.Errorf("failed to create referral: %w", err)
	}

	s.logger.Info("Referral attributed",
		zap.Int64("referrer_id", referrerID),
		zap.Int64("referred_id", referredID),
	)
	return nil
}
