package repository

import (
	"context"

	"signalbot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	// FindByTelegramID returns nil without error when the user is unknown
	FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	UpdateLanguage(ctx context.Context, telegramID int64, lang string) error
}

// ReferralRepository defines referral data operations
type ReferralRepository interface {
	Create(ctx context.Context, referrerID, referredID int64) error
	SumBonusForReferrer(ctx context.Context, referrerID int64) (float64, error)
	// CountReferrals counts all referrals, or only those with a bonus
	// already credited when onlyPaid is set
	CountReferrals(ctx context.Context, referrerID int64, onlyPaid bool) (int, error)
}
