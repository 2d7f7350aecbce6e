package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"signalbot/internal/domain"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLanguage(ctx context.Context, telegramID int64, lang string) error {
	args := m.Called(ctx, telegramID, lang)
	return args.Error(0)
}

// MockReferralRepository is a mock for ReferralRepository
type MockReferralRepository struct {
	mock.Mock
}

func (m *MockReferralRepository) Create(ctx context.Context, referrerID, referredID int64) error {
	args := m.Called(ctx, referrerID, referredID)
	return args.Error(0)
}

func (m *MockReferralRepository) SumBonusForReferrer(ctx context.Context, referrerID int64) (float64, error) {
	args := m.Called(ctx, referrerID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReferralRepository) CountReferrals(ctx context.Context, referrerID int64, onlyPaid bool) (int, error) {
	args := m.Called(ctx, referrerID, onlyPaid)
	return args.Int(0), args.Error(1)
}

// MockTranslator is a mock for translate.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	args := m.Called(ctx, text, target)
	return args.String(0), args.Error(1)
}
